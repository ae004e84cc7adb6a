package golftraj

import (
	"fmt"
	"math"
)

// SpinState describes a ball's rotation: a non-negative rate in
// revolutions per minute and a unit-length axis. The axis is held
// constant across a flight; only the rate decays.
type SpinState struct {
	Rate float64 // rpm, >= 0
	Axis Vector3 // unit length within 1e-10
}

func (s SpinState) String() string {
	return fmt.Sprintf("%.1f rpm about %s", s.Rate, s.Axis)
}

// RateRadPerSec returns the spin rate in rad/s, the unit physics
// requires internally ( numeric contract).
func (s SpinState) RateRadPerSec() float64 {
	const rpm2radPerSec = 2 * 3.141592653589793 / 60
	return s.Rate * rpm2radPerSec
}

// NewSpinState normalizes axis defensively and rejects a zero-length
// axis.
func NewSpinState(rate float64, axis Vector3) (SpinState, error) {
	if rate < 0 {
		return SpinState{}, newError(CodeInvalidInput, "spin rate must be non-negative", nil)
	}
	n := axis.Norm()
	if n < 1e-12 {
		return SpinState{}, newError(CodeInvalidInput, "spin axis must not be zero-length", nil)
	}
	return SpinState{Rate: rate, Axis: axis.Scale(1 / n)}, nil
}

// Decayed applies the exponential spin-rate decay closed form over dt
// seconds: decayRate is k in 1/s, so rate(t+dt) = rate(t) *
// exp(-k*dt). The axis is unchanged.
func (s SpinState) Decayed(decayRate, dt float64) SpinState {
	return SpinState{Rate: s.Rate * math.Exp(-decayRate*dt), Axis: s.Axis}
}
