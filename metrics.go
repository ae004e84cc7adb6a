package golftraj

import (
	"fmt"
	"math"
)

// TrajectoryMetrics are the scalar summary values extracted from a
// complete flight, the quantities a validation comparator checks
// against reference data.
type TrajectoryMetrics struct {
	CarryDistance   float64 // meters, horizontal distance from launch to landing
	TotalDistance   float64 // meters, carry plus roll; equal to CarryDistance (no roll model)
	MaxHeight       float64 // meters, apex height above launch
	FlightTime      float64 // seconds, launch to landing
	LaunchAngle     float64 // degrees above horizontal
	LaunchDirection float64 // degrees, azimuth of initial velocity in the ground plane
	LaunchSpeed     float64 // m/s
	LandingAngle    float64 // degrees below horizontal at impact
	LandingSpeed    float64 // m/s
	SpinRate        float64 // rpm, spin rate at launch
	ApexTime        float64 // seconds, time of maximum height
}

func (m TrajectoryMetrics) String() string {
	return fmt.Sprintf("carry=%.2fm apex=%.2fm@%.2fs time=%.2fs launch=%.1fdeg/%.1fdeg@%.1fm/s spin=%.0frpm land=%.1fdeg@%.1fm/s",
		m.CarryDistance, m.MaxHeight, m.ApexTime, m.FlightTime, m.LaunchAngle, m.LaunchDirection, m.LaunchSpeed, m.SpinRate, m.LandingAngle, m.LandingSpeed)
}

// ExtractMetrics reduces a Trajectory to its TrajectoryMetrics. It
// requires at least two points (a launch and a landing) and assumes
// the trajectory was produced by Simulate, i.e. the final point is the
// ground-impact point.
func ExtractMetrics(traj Trajectory) (TrajectoryMetrics, error) {
	if len(traj.Points) < 2 {
		return TrajectoryMetrics{}, newError(CodeInvalidInput, "trajectory must have at least a launch and a landing point", nil)
	}

	launch := traj.Points[0]
	landing := traj.Points[len(traj.Points)-1]

	apex := launch
	for _, p := range traj.Points {
		if p.State.Position.Y > apex.State.Position.Y {
			apex = p
		}
	}

	horizontalCarry := func(p TrajectoryPoint) float64 {
		dx := p.State.Position.X - launch.State.Position.X
		dz := p.State.Position.Z - launch.State.Position.Z
		return math.Hypot(dx, dz)
	}

	launchAngle, launchSpeed := flightAngleAndSpeed(launch.State.Velocity)
	landingAngle, landingSpeed := flightAngleAndSpeed(landing.State.Velocity)

	launchDirection := 0.0
	if launchSpeed > 1e-9 {
		launchDirection = Rad2deg(math.Atan2(launch.State.Velocity.Z, launch.State.Velocity.X))
	}

	carry := horizontalCarry(landing)

	return TrajectoryMetrics{
		CarryDistance:   carry,
		TotalDistance:   carry,
		MaxHeight:       apex.State.Position.Y - launch.State.Position.Y,
		FlightTime:      landing.Time - launch.Time,
		LaunchAngle:     launchAngle,
		LaunchDirection: launchDirection,
		LaunchSpeed:     launchSpeed,
		LandingAngle:    -landingAngle,
		LandingSpeed:    landingSpeed,
		SpinRate:        launch.State.Spin.Rate,
		ApexTime:        apex.Time - launch.Time,
	}, nil
}

// flightAngleAndSpeed returns the elevation angle (degrees above
// horizontal, positive climbing) and speed (m/s) of v.
func flightAngleAndSpeed(v Vector3) (angleDeg, speed float64) {
	speed = v.Norm()
	if speed < 1e-9 {
		return 0, 0
	}
	horizontal := math.Hypot(v.X, v.Z)
	return Rad2deg(math.Atan2(v.Y, horizontal)), speed
}
