package golftraj

import (
	"math"

	"github.com/rhwilloughby/golftraj/config"
)

// Forces decomposes the instantaneous force on a ball into its drag,
// lift, Magnus, and gravity components, plus their vector sum. Every
// component is in newtons, ground frame.
type Forces struct {
	Drag    Vector3
	Lift    Vector3
	Magnus  Vector3
	Gravity Vector3
	Total   Vector3
}

// ComputeForces evaluates the aerodynamic and gravitational forces
// acting on a ball moving with the given velocity and spin through env,
// given its physical properties. It is a pure function: no hidden
// state, every input explicit.
//
// Drag opposes the velocity relative to the wind, its coefficient
// rising gently with both angle of attack and Reynolds number. Lift
// and Magnus both act along the unit(v_rel × spin.Axis) direction:
// lift's coefficient follows the angle of attack (peaking off-axis,
// falling away to nothing near +/-90 degrees), Magnus's follows spin
// rate and falls off at high speed. Gravity is returned as a force,
// (0, -m*g, 0) exactly: callers that want acceleration divide Total by
// mass themselves.
func ComputeForces(velocity Vector3, spin SpinState, props BallProperties, env Environment) (Forces, error) {
	if err := props.Validate(); err != nil {
		return Forces{}, err
	}
	if err := env.Validate(); err != nil {
		return Forces{}, err
	}

	gravity := Vector3{0, -props.Mass * config.Current().Gravity, 0}

	vRel := velocity.Sub(env.Wind)
	speed := vRel.Norm()
	if speed < 1e-9 {
		return Forces{Gravity: gravity, Total: gravity}, nil
	}

	rho, err := Density(env)
	if err != nil {
		return Forces{}, err
	}
	mu := Viscosity(env)

	area := math.Pi * props.Radius * props.Radius
	q := 0.5 * rho * speed * speed

	reynolds := rho * speed * (2 * props.Radius) / mu
	horizontal := math.Hypot(vRel.X, vRel.Z)
	alpha := math.Atan2(vRel.Y, horizontal)
	alphaDeg := Rad2deg(alpha)

	cd := props.DragCoef * (1 + 0.0015*math.Abs(alphaDeg)) *
		(1 + clamp((reynolds-1.4e5)/4e5, 0, 0.05))
	drag := vRel.Unit().Scale(-q * area * cd)

	dir := vRel.Cross(spin.Axis).Unit()

	cl := props.LiftCoef * (1 + 0.25*math.Sin(2*alpha)) *
		math.Max(0, 1-math.Pow(math.Abs(alphaDeg)/90, 1.5))
	lift := dir.Scale(q * area * cl)

	cm := props.MagnusCoef * math.Pow(spin.Rate/3000, 0.9) *
		math.Pow(math.Min(1, 47.5/speed), 1.1)
	magnus := dir.Scale(q * area * cm)

	total := drag.Add(lift).Add(magnus).Add(gravity)

	return Forces{Drag: drag, Lift: lift, Magnus: magnus, Gravity: gravity, Total: total}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
