package golftraj

import (
	"math"
	"testing"
)

func TestExtractMetricsCarryAndHeight(t *testing.T) {
	traj := sampleTrajectory()
	m, err := ExtractMetrics(traj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatsEqual(m.CarryDistance, 60, 1e-9) {
		t.Fatalf("expected carry 60, got %v", m.CarryDistance)
	}
	if !floatsEqual(m.MaxHeight, 15, 1e-9) {
		t.Fatalf("expected max height 15, got %v", m.MaxHeight)
	}
	if !floatsEqual(m.FlightTime, 2, 1e-9) {
		t.Fatalf("expected flight time 2, got %v", m.FlightTime)
	}
	if m.LaunchAngle <= 0 {
		t.Fatalf("expected positive launch angle, got %v", m.LaunchAngle)
	}
	if m.LandingAngle <= 0 {
		t.Fatalf("expected positive landing angle (descending), got %v", m.LandingAngle)
	}
}

func TestExtractMetricsSpinRateAndDirection(t *testing.T) {
	traj := Trajectory{Points: []TrajectoryPoint{
		{Time: 0, State: BallState{Velocity: Vector3{30, 20, 10}, Spin: SpinState{Rate: 2700, Axis: Vector3{0, 1, 0}}}},
		{Time: 1, State: BallState{Position: Vector3{30, 15, 10}, Velocity: Vector3{30, 10, 10}, Spin: SpinState{Rate: 2600, Axis: Vector3{0, 1, 0}}}},
		{Time: 2, State: BallState{Position: Vector3{60, 0, 20}, Velocity: Vector3{30, -10, 10}, Spin: SpinState{Rate: 2500, Axis: Vector3{0, 1, 0}}}},
	}}
	m, err := ExtractMetrics(traj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatsEqual(m.SpinRate, 2700, 1e-9) {
		t.Fatalf("expected spin rate taken from the launch point, got %v", m.SpinRate)
	}
	if !floatsEqual(m.TotalDistance, m.CarryDistance, 1e-9) {
		t.Fatalf("expected total distance to equal carry distance, got %v vs %v", m.TotalDistance, m.CarryDistance)
	}
	wantDirection := Rad2deg(math.Atan2(10, 30))
	if !floatsEqual(m.LaunchDirection, wantDirection, 1e-9) {
		t.Fatalf("expected launch direction %v, got %v", wantDirection, m.LaunchDirection)
	}
}

func TestExtractMetricsRejectsShortTrajectory(t *testing.T) {
	if _, err := ExtractMetrics(Trajectory{}); err == nil {
		t.Fatal("expected error for empty trajectory")
	}
	one := Trajectory{Points: []TrajectoryPoint{{Time: 0}}}
	if _, err := ExtractMetrics(one); err == nil {
		t.Fatal("expected error for single-point trajectory")
	}
}
