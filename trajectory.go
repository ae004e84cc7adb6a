package golftraj

import "fmt"

// TrajectoryPoint is one sample of a flight: time since launch plus the
// full kinematic state at that instant.
type TrajectoryPoint struct {
	Time  float64 // seconds since launch
	State BallState
}

func (p TrajectoryPoint) String() string {
	return fmt.Sprintf("t=%.4fs %s", p.Time, p.State)
}

// Trajectory is the ordered sequence of samples produced by Simulate,
// strictly increasing in Time ('s monotonicity invariant).
type Trajectory struct {
	Points []TrajectoryPoint
}

// Duration returns the flight time, the Time of the last point, or 0
// for an empty trajectory.
func (t Trajectory) Duration() float64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].Time
}

// Final returns the last recorded point and true, or the zero point and
// false if the trajectory has no points.
func (t Trajectory) Final() (TrajectoryPoint, bool) {
	if len(t.Points) == 0 {
		return TrajectoryPoint{}, false
	}
	return t.Points[len(t.Points)-1], true
}
