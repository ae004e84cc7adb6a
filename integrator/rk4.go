package integrator

import (
	"fmt"
	"math"
)

// AdaptiveRK4 performs classical 4th-order Runge-Kutta integration with
// step-doubling error control: each proposed step of size dt is
// compared against two steps of dt/2, and dt is halved or doubled
// depending on how the position error compares to PositionTolerance.
// It keeps every scratch buffer as a struct field, allocated once in
// New and reused for the life of the integrator rather than allocating
// fresh slices every step.
type AdaptiveRK4 struct {
	DtMin             float64 // seconds, smallest step allowed before giving up
	DtMax             float64 // seconds, largest step allowed
	PositionTolerance float64 // meters, step-doubling error budget (tau)
	TMax              float64 // seconds, hard ceiling on total integration time

	k1, k2, k3, k4 []float64
	tmp            []float64
	full           []float64
	half1          []float64
	half2          []float64
}

// New returns an AdaptiveRK4 with its scratch buffers allocated.
func New(dtMin, dtMax, positionTolerance, tMax float64) *AdaptiveRK4 {
	mk := func() []float64 { return make([]float64, StateLen) }
	return &AdaptiveRK4{
		DtMin:             dtMin,
		DtMax:             dtMax,
		PositionTolerance: positionTolerance,
		TMax:              tMax,
		k1:                mk(), k2: mk(), k3: mk(), k4: mk(),
		tmp:   mk(),
		full:  mk(),
		half1: mk(),
		half2: mk(),
	}
}

// Sample is one accepted point of the integration.
type Sample struct {
	T float64
	Y []float64 // length StateLen, owned by the caller (a fresh copy)
}

// Run integrates sys from y0 at t=0 until an accepted step ends with
// Height(y) <= 0 or t reaches TMax, returning every accepted sample.
// A start exactly at ground level (a launch from the tee) is integrated
// normally; a start below ground returns the initial sample alone. Run
// does not itself search for the impact: when it stops on reaching the
// ground, the last sample is the first at or below ground and the one
// before it is the sample the caller brackets the impact from. When it
// stops at TMax, no such pair exists.
func (r *AdaptiveRK4) Run(sys System, y0 []float64) ([]Sample, error) {
	if r.DtMin <= 0 || r.DtMax < r.DtMin {
		return nil, fmt.Errorf("integrator: invalid step bounds [%g, %g]", r.DtMin, r.DtMax)
	}
	y := append([]float64(nil), y0...)
	t := 0.0
	dt := r.DtMax

	samples := []Sample{{T: t, Y: append([]float64(nil), y...)}}

	if sys.Height(y) < 0 {
		return samples, nil
	}

	for t < r.TMax {
		if t+dt > r.TMax {
			dt = r.TMax - t
		}

		errEst, accepted := r.tryStep(sys, t, y, dt)
		if !accepted {
			dt /= 2
			if dt < r.DtMin {
				return nil, fmt.Errorf("integrator: step size collapsed below DtMin=%g at t=%g (error=%g)", r.DtMin, t, errEst)
			}
			continue
		}

		t += dt
		copy(y, r.half2)

		if !isFiniteVec(y) {
			return nil, fmt.Errorf("integrator: state diverged (non-finite) at t=%g", t)
		}

		samples = append(samples, Sample{T: t, Y: append([]float64(nil), y...)})

		if sys.Height(y) <= 0 {
			return samples, nil
		}

		// Step-size policy for the next step: grow it when this one
		// came in comfortably under budget, otherwise leave it alone.
		// Going over budget never reaches here -- tryStep already
		// rejected and halved it before the step was accepted.
		if errEst < r.PositionTolerance*0.1 {
			dt = math.Min(dt*2, r.DtMax)
		}
	}

	return samples, nil
}

// tryStep advances y by dt using both one full RK4 step (into r.full)
// and two half-size steps (into r.half1 then r.half2), and reports the
// position-component error between them. accepted is false if the
// error exceeds PositionTolerance, in which case the caller should
// halve dt and retry without any state mutation having taken effect
// (tryStep never writes to y).
func (r *AdaptiveRK4) tryStep(sys System, t float64, y []float64, dt float64) (errEst float64, accepted bool) {
	r.rk4Step(sys, t, y, dt, r.full)
	r.rk4Step(sys, t, y, dt/2, r.half1)
	r.rk4Step(sys, t+dt/2, r.half1, dt/2, r.half2)

	errEst = positionError(r.full, r.half2)
	return errEst, errEst <= r.PositionTolerance
}

// rk4Step performs one classical RK4 step of size dt from (t, y) and
// writes the result into out, which must not alias y.
func (r *AdaptiveRK4) rk4Step(sys System, t float64, y []float64, dt float64, out []float64) {
	k1 := sys.Derivative(t, y)
	copy(r.k1, k1)

	addScaled(r.tmp, y, r.k1, dt/2)
	k2 := sys.Derivative(t+dt/2, r.tmp)
	copy(r.k2, k2)

	addScaled(r.tmp, y, r.k2, dt/2)
	k3 := sys.Derivative(t+dt/2, r.tmp)
	copy(r.k3, k3)

	addScaled(r.tmp, y, r.k3, dt)
	k4 := sys.Derivative(t+dt, r.tmp)
	copy(r.k4, k4)

	for i := range out {
		out[i] = y[i] + (dt/6)*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
}

func addScaled(dst, base, delta []float64, scale float64) {
	for i := range dst {
		dst[i] = base[i] + scale*delta[i]
	}
}

func positionError(a, b []float64) float64 {
	dx := a[idxPX] - b[idxPX]
	dy := a[idxPY] - b[idxPY]
	dz := a[idxPZ] - b[idxPZ]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func isFiniteVec(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
