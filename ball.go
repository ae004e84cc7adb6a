package golftraj

import "fmt"

// BallProperties are the physical constants of a specific ball, held
// fixed for the duration of one flight.
type BallProperties struct {
	Mass          float64 // kg, ~0.0456-0.0512
	Radius        float64 // m, ~0.0213-0.0214
	DragCoef      float64 // dimensionless base Cd, ~0.15-0.28
	LiftCoef      float64 // dimensionless base Cl, ~0.15-0.25
	MagnusCoef    float64 // dimensionless base Cm, 0-0.5
	SpinDecayRate float64 // 1/s, the k in exp(-k*dt)
}

// Validate reports whether mass, radius and spin decay rate are all
// positive; the aerodynamic coefficients are not checked.
func (p BallProperties) Validate() error {
	if p.Mass <= 0 {
		return newError(CodeInvalidInput, "mass must be positive", nil)
	}
	if p.Radius <= 0 {
		return newError(CodeInvalidInput, "radius must be positive", nil)
	}
	if p.SpinDecayRate <= 0 {
		return newError(CodeInvalidInput, "spin decay rate must be positive", nil)
	}
	return nil
}

func (p BallProperties) String() string {
	return fmt.Sprintf("mass=%.4fkg radius=%.4fm Cd=%.3f Cl=%.3f Cm=%.3f decay=%.4f/s",
		p.Mass, p.Radius, p.DragCoef, p.LiftCoef, p.MagnusCoef, p.SpinDecayRate)
}

// DefaultBallProperties returns a regulation-weight golf ball, used
// wherever a caller needs a reasonable default rather than specifying
// every property explicitly.
func DefaultBallProperties() BallProperties {
	return BallProperties{
		Mass:          0.0459,
		Radius:        0.02135,
		DragCoef:      0.225,
		LiftCoef:      0.20,
		MagnusCoef:    0.25,
		SpinDecayRate: 0.04,
	}
}

// BallState is the full kinematic state of a ball at an instant:
// position, velocity, and spin. Mass is carried separately in
// BallProperties since it is constant across a flight.
type BallState struct {
	Position Vector3
	Velocity Vector3
	Spin     SpinState
}

func (s BallState) String() string {
	return fmt.Sprintf("pos=%s vel=%s spin=%s", s.Position, s.Velocity, s.Spin)
}

// IsFinite reports whether every numeric field of s is finite, used by
// the integrator to detect IntegrationDivergence.
func (s BallState) IsFinite() bool {
	return s.Position.IsFinite() && s.Velocity.IsFinite() &&
		!isNaNOrInf(s.Spin.Rate) && s.Spin.Axis.IsFinite()
}

func isNaNOrInf(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.7976931348623157e+308 // math.MaxFloat64, spelled out to avoid importing math here
