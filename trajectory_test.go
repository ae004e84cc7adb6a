package golftraj

import "testing"

func sampleTrajectory() Trajectory {
	return Trajectory{Points: []TrajectoryPoint{
		{Time: 0, State: BallState{Position: Vector3{0, 0, 0}, Velocity: Vector3{30, 20, 0}}},
		{Time: 1, State: BallState{Position: Vector3{30, 15, 0}, Velocity: Vector3{30, 10, 0}}},
		{Time: 2, State: BallState{Position: Vector3{60, 0, 0}, Velocity: Vector3{30, -10, 0}}},
	}}
}

func TestTrajectoryDuration(t *testing.T) {
	traj := sampleTrajectory()
	if got := traj.Duration(); got != 2 {
		t.Fatalf("expected duration 2, got %v", got)
	}
	if got := (Trajectory{}).Duration(); got != 0 {
		t.Fatalf("expected zero duration for empty trajectory, got %v", got)
	}
}

func TestTrajectoryFinal(t *testing.T) {
	traj := sampleTrajectory()
	final, ok := traj.Final()
	if !ok {
		t.Fatal("expected a final point")
	}
	if final.Time != 2 {
		t.Fatalf("expected final time 2, got %v", final.Time)
	}

	if _, ok := (Trajectory{}).Final(); ok {
		t.Fatal("expected no final point for empty trajectory")
	}
}
