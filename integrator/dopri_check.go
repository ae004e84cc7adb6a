package integrator

import (
	"github.com/ready-steady/ode/dopri"
)

// CrossCheck integrates sys from y0 across tGrid using an independent
// Dormand-Prince RK45 solver and returns the state at each grid point.
// It exists purely as a test oracle for AdaptiveRK4's own output: the
// two solvers share no code, so close agreement between them is
// meaningful evidence that neither has a sign error or unit mistake in
// its force model wiring.
func CrossCheck(sys System, y0 []float64, tGrid []float64) ([][]float64, error) {
	deriv := func(t float64, y, f []float64) {
		d := sys.Derivative(t, y)
		copy(f, d)
	}

	integrator, err := dopri.New(dopri.DefaultConfig())
	if err != nil {
		return nil, err
	}

	y0copy := append([]float64(nil), y0...)
	result, _, err := integrator.Compute(deriv, y0copy, tGrid)
	if err != nil {
		return nil, err
	}

	n := len(tGrid)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = result[i*StateLen : (i+1)*StateLen]
	}
	return out, nil
}
