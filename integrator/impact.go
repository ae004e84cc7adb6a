package integrator

import (
	"fmt"
	"math"
)

// StepAt advances y0 by exactly dt with a single RK4 step, independent
// of the step-doubling machinery in Run. FindImpact uses it to probe
// arbitrary sub-steps inside a bracket without disturbing r's adaptive
// step state.
func (r *AdaptiveRK4) StepAt(sys System, t0 float64, y0 []float64, dt float64) []float64 {
	out := make([]float64, StateLen)
	r.rk4Step(sys, t0, y0, dt, out)
	return out
}

// FindImpact narrows a bracket [before, after] -- the last sample with
// positive height and the first with non-positive height -- down to
// the point where height crosses zero, by bisecting on the fraction of
// the interval rather than linearly interpolating the state (which
// would not respect the nonlinear dynamics between the two samples).
// It is grounded on cprevallet/baseballgui/trajectory/trajectory.go's
// correctFinalPosition, generalized from that function's one-shot
// linear interpolation to an iterative bisection for better accuracy
// against stiff descents.
//
// The returned Sample always has its height component snapped to
// exactly 0, even when the bisection only came within epsilon of the
// ground rather than landing on it exactly. converged reports whether
// |height| <= epsilon was reached within maxIter iterations; when it
// is false the caller still gets the best estimate found (the
// midpoint of the final bracket) but should treat the impact as a
// ImpactNotFound warning rather than a precise crossing.
func (r *AdaptiveRK4) FindImpact(sys System, before, after Sample, maxIter int, epsilon float64) (result Sample, converged bool, err error) {
	if sys.Height(before.Y) <= 0 {
		return before, false, fmt.Errorf("integrator: bracket start is already at or below ground")
	}
	if sys.Height(after.Y) > 0 {
		return after, false, fmt.Errorf("integrator: bracket end is still above ground")
	}

	span := after.T - before.T
	lo, hi := 0.0, span

	var mid float64
	var y []float64
	for i := 0; i < maxIter; i++ {
		mid = (lo + hi) / 2
		y = r.StepAt(sys, before.T, before.Y, mid)
		h := sys.Height(y)
		if math.Abs(h) <= epsilon {
			y[idxPY] = 0
			return Sample{T: before.T + mid, Y: y}, true, nil
		}
		if h > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	mid = (lo + hi) / 2
	y = r.StepAt(sys, before.T, before.Y, mid)
	y[idxPY] = 0
	return Sample{T: before.T + mid, Y: y}, false, nil
}
