package golftraj

import (
	"math"
	"testing"
)

func TestBallPropertiesValidate(t *testing.T) {
	valid := DefaultBallProperties()
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected default properties to validate, got %v", err)
	}

	cases := []BallProperties{
		{Mass: 0, Radius: 0.02, SpinDecayRate: 0.04},
		{Mass: 0.045, Radius: 0, SpinDecayRate: 0.04},
		{Mass: 0.045, Radius: 0.02, SpinDecayRate: 0},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestBallStateIsFinite(t *testing.T) {
	s := BallState{
		Position: Vector3{0, 0, 0},
		Velocity: Vector3{10, 20, 0},
		Spin:     SpinState{Rate: 3000, Axis: Vector3{0, 1, 0}},
	}
	if !s.IsFinite() {
		t.Fatal("expected finite state")
	}

	bad := s
	bad.Velocity.X = math.Inf(1)
	if bad.IsFinite() {
		t.Fatal("expected non-finite state to be detected")
	}
}
