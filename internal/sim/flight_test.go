package sim_test

import (
	"testing"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

func axes(stickX, stickY, throttle, rudder float32) []float32 {
	a := make([]float32, sim.MinAxes)
	a[sim.AxisStickX] = stickX
	a[sim.AxisStickY] = stickY
	a[sim.AxisThrottle] = throttle
	a[sim.AxisRudder] = rudder
	return a
}

func TestIdleCraftStaysParked(t *testing.T) {
	s := sim.NewState()
	for i := 0; i < 1000; i++ {
		if err := s.Step(axes(0, 0, 1, 0)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.Speed() != 0 || s.Altitude() != 0 {
		t.Fatalf("expected parked craft, got speed=%v alt=%v", s.Speed(), s.Altitude())
	}
}

func TestLevelThrustFliesForward(t *testing.T) {
	s := sim.NewState()
	for i := 0; i < 500; i++ {
		if err := s.Step(axes(0, 0, -1, 0)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if s.Position.X() <= 0 {
		t.Fatalf("expected forward travel along +X, got %v", s.Position)
	}
	if s.Position.Y() != 0 || s.Position.Z() != 0 {
		t.Fatalf("level flight drifted off axis: %v", s.Position)
	}
}

func TestHeadingFollowsRudder(t *testing.T) {
	s := sim.NewState()
	for i := 0; i < 100; i++ {
		if err := s.Step(axes(0, 0, 1, 1)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if yaw := s.Yaw(); yaw >= 0 || yaw < -sim.Pi {
		t.Fatalf("expected a negative wrapped heading, got %v", yaw)
	}
}
