package golftraj

import (
	"fmt"

	"github.com/rhwilloughby/golftraj/config"
	"github.com/rhwilloughby/golftraj/integrator"
)

// flightSystem adapts a ball's properties and environment to
// integrator.System, the state-vector interface the adaptive RK4
// solver needs. Everything the solver needs to evaluate the ODE and
// know when to stop lives on this struct, and the struct itself
// carries no history -- Simulate records the trajectory as it steps.
type flightSystem struct {
	props BallProperties
	env   Environment
	axis  Vector3 // spin axis, constant for the flight
}

// Derivative returns dy/dt for y = (x, y, z, vx, vy, vz, spinRateRadPerSec).
// The spin-rate component's derivative, -k*rate, is the exact ODE form
// of the exponential decay rate(t)=rate(0)*exp(-k*t); folding it into
// the same RK4 state vector the position/velocity components use
// (rather than applying exp(-k*dt) as a separate closed-form update
// after each accepted step) advances it with the same accepted steps.
// The step-doubling error estimate looks only at position, so the spin
// rate plays no part in step-size control; for a smooth linear decay
// like this one the RK4 result is indistinguishable from the closed
// form at the step sizes DtMin/DtMax allow.
func (f *flightSystem) Derivative(t float64, y []float64) []float64 {
	velocity := Vector3{y[3], y[4], y[5]}
	spinRateRPM := y[6] * 60 / (2 * 3.141592653589793)
	spin := SpinState{Rate: spinRateRPM, Axis: f.axis}

	forces, err := ComputeForces(velocity, spin, f.props, f.env)
	if err != nil {
		// Derivative has no error return in the integrator.System
		// contract. A force-evaluation error here can only mean
		// props/env became invalid after Simulate's own upfront
		// validation, which cannot happen since both are immutable for
		// the flight.
		panic(fmt.Sprintf("golftraj: force evaluation failed mid-flight: %v", err))
	}

	accel := forces.Total.Scale(1 / f.props.Mass)

	return []float64{
		y[3], y[4], y[5],
		accel.X, accel.Y, accel.Z,
		-f.props.SpinDecayRate * y[6],
	}
}

// Height returns the ball's height above ground, y[1] in the state
// vector.
func (f *flightSystem) Height(y []float64) float64 {
	return y[1]
}

// Simulate flies a ball from initial through env until it strikes the
// ground (height <= 0) or the configured time ceiling elapses,
// returning the full sampled Trajectory. It is the single public
// orchestration entry point, driving the adaptive step-doubling solver
// in package integrator.
func Simulate(initial BallState, props BallProperties, env Environment) (Trajectory, error) {
	if err := props.Validate(); err != nil {
		return Trajectory{}, err
	}
	if err := env.Validate(); err != nil {
		return Trajectory{}, err
	}
	if !initial.IsFinite() {
		return Trajectory{}, newError(CodeInvalidInput, "initial state must be finite", nil)
	}

	cfg := config.Current()
	logger := NewLogger("flight")

	sys := &flightSystem{props: props, env: env, axis: initial.Spin.Axis}

	y0 := []float64{
		initial.Position.X, initial.Position.Y, initial.Position.Z,
		initial.Velocity.X, initial.Velocity.Y, initial.Velocity.Z,
		initial.Spin.RateRadPerSec(),
	}

	rk := integrator.New(
		cfg.DtMin.Seconds(),
		cfg.DtMax.Seconds(),
		cfg.PositionTolerance,
		cfg.TMax.Seconds(),
	)

	samples, err := rk.Run(sys, y0)
	if err != nil {
		logger.Log("level", "error", "event", "integration_failed", "err", err)
		return Trajectory{}, newError(CodeIntegrationDivergence, "flight integration failed", err)
	}

	last := len(samples) - 1
	if last > 0 && sys.Height(samples[last].Y) <= 0 && sys.Height(samples[last-1].Y) > 0 {
		impact, converged, err := rk.FindImpact(sys, samples[last-1], samples[last], cfg.MaxBisectionIterations, cfg.ImpactEpsilon)
		if err != nil {
			return Trajectory{}, newError(CodeImpactNotFound, "ground impact bracketing failed", err)
		}
		if !converged {
			logger.Log("level", "warn", "event", "impact_not_found", "iterations", cfg.MaxBisectionIterations, "epsilon", cfg.ImpactEpsilon, "time", impact.T)
		}
		samples[last] = impact
	}

	points := make([]TrajectoryPoint, len(samples))
	for i, s := range samples {
		points[i] = TrajectoryPoint{
			Time:  s.T,
			State: stateFromVector(s.Y, sys.axis),
		}
	}

	logger.Log("level", "info", "event", "flight_complete", "samples", len(points), "duration", points[len(points)-1].Time)

	return Trajectory{Points: points}, nil
}

func stateFromVector(y []float64, axis Vector3) BallState {
	spinRateRPM := y[6] * 60 / (2 * 3.141592653589793)
	return BallState{
		Position: Vector3{y[0], y[1], y[2]},
		Velocity: Vector3{y[3], y[4], y[5]},
		Spin:     SpinState{Rate: spinRateRPM, Axis: axis},
	}
}
