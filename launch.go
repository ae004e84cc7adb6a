package golftraj

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LaunchConditions are the quantities a club-head or launch-monitor
// model naturally produces: a ball speed, two pointing angles for the
// initial velocity, and a spin rate/axis, rather than the raw velocity
// vector BallState needs. Angles are in degrees, speed in m/s, spin
// rate in rpm.
type LaunchConditions struct {
	Speed          float64 // m/s
	LaunchAngleDeg float64 // elevation above the horizontal, positive up
	DirectionDeg   float64 // azimuth in the ground plane, positive toward +Z (atan2(z, x))
	SpinRateRPM    float64
	SpinAxis       Vector3 // need not be unit length; normalized defensively
	Origin         Vector3 // launch position, usually the origin
}

// r3 is the elementary rotation matrix about the 3rd (Z) axis.
func r3(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{c, -s, 0, s, c, 0, 0, 0, 1})
}

// r2 is the elementary rotation matrix about the 2nd (Y) axis.
func r2(theta float64) *mat.Dense {
	s, c := math.Sincos(theta)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// mxv multiplies a 3x3 matrix by a Vector3.
func mxv(m *mat.Dense, v Vector3) Vector3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return Vector3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// ToBallState converts launch-monitor-style conditions into the
// BallState a flight integration needs. The initial velocity is built
// as two elementary rotations of the downrange unit vector (+X) rather
// than hand-rolled trig: R3(launchAngle) tilts it up out of the ground
// plane, then R2(direction) swings it to the commanded azimuth. The
// composition is equivalent to
// (v*cos(theta)*cos(phi), v*sin(theta), v*cos(theta)*sin(phi)).
func (c LaunchConditions) ToBallState() (BallState, error) {
	if c.Speed < 0 {
		return BallState{}, newError(CodeInvalidInput, "launch speed must be non-negative", nil)
	}

	theta := Deg2rad(c.LaunchAngleDeg)
	phi := Deg2rad(c.DirectionDeg)

	downrange := Vector3{1, 0, 0}
	elevated := mxv(r3(theta), downrange)
	velocity := mxv(r2(phi), elevated).Scale(c.Speed)

	spin, err := NewSpinState(c.SpinRateRPM, c.SpinAxis)
	if err != nil {
		return BallState{}, err
	}

	return BallState{Position: c.Origin, Velocity: velocity, Spin: spin}, nil
}

// FromBallState recovers LaunchConditions from a ball's state, the
// exact inverse of ToBallState (up to the spin axis's normalization
// and degree/radian rounding): speed and angles come back from
// decomposing the velocity vector, and the spin axis is carried
// through unchanged rather than split into an ambiguous back/side-spin
// pair.
func FromBallState(s BallState) LaunchConditions {
	speed := s.Velocity.Norm()
	var theta, phi float64
	if speed > 1e-9 {
		horizontal := math.Hypot(s.Velocity.X, s.Velocity.Z)
		theta = math.Atan2(s.Velocity.Y, horizontal)
		phi = math.Atan2(s.Velocity.Z, s.Velocity.X)
	}

	return LaunchConditions{
		Speed:          speed,
		LaunchAngleDeg: Rad2deg(theta),
		DirectionDeg:   Rad2deg(phi),
		SpinRateRPM:    s.Spin.Rate,
		SpinAxis:       s.Spin.Axis,
		Origin:         s.Position,
	}
}

// MPHToMetersPerSecond converts a speed in miles per hour to meters
// per second. It exists because several launch-monitor data feeds
// report ball speed in mph; golftraj's own conversions always treat
// Speed as m/s; callers with imperial input must go through this
// adapter explicitly rather than have it silently assumed.
func MPHToMetersPerSecond(mph float64) float64 {
	const mphToMps = 0.44704
	return mph * mphToMps
}
