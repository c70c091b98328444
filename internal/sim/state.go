package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Joystick axis layout. MinAxes is the smallest axis count Step accepts.
const (
	AxisStickX   = 0
	AxisStickY   = 1
	AxisThrottle = 2
	AxisRudder   = 5
	MinAxes      = 6
)

const (
	// ThrustCeiling caps the thrust accumulator.
	ThrustCeiling float32 = 0.01

	thrustDecay     float32 = 0.9975
	thrustGain      float32 = 0.00001
	thrustBoost     float32 = 1.005
	velocityDamping float32 = 0.75
	gravityScale    float32 = 0.001
)

var (
	controlDecay = mgl32.Vec3{1, 0.999, 0.999}
	controlGain  = mgl32.Vec3{0.01, 0.02, 0.005}
	gravityEdge  = mgl32.Vec3{0.01, 1, 0.01}

	angleMin = mgl32.Vec3{-Pi, -Pi, -Pi}
	angleMax = mgl32.Vec3{Pi, Pi, Pi}
)

// State is the craft's flight state. It is owned by whoever drives the
// frame loop and mutated only through Step.
type State struct {
	Controls    mgl32.Vec3 // yaw (X), pitch (Y), roll (Z) in radians
	Orientation mgl32.Mat3
	Thrust      float32
	Velocity    mgl32.Vec3
	Position    mgl32.Vec3
}

func NewState() *State {
	return &State{Orientation: mgl32.Ident3()}
}

// Step integrates one tick from a raw joystick axis array.
func (s *State) Step(axes []float32) error {
	if len(axes) < MinAxes {
		return fmt.Errorf("%w: got %d, need %d", ErrInsufficientAxes, len(axes), MinAxes)
	}

	raw := mgl32.Vec3{axis(axes, AxisRudder), -axis(axes, AxisStickY), -axis(axes, AxisStickX)}
	s.Controls = mulElem(s.Controls, controlDecay)
	s.Controls = s.Controls.Sub(mulElem(raw.Mul(HalfPi), controlGain))
	s.Controls = WrapVec3(s.Controls, angleMin, angleMax)
	s.Orientation = Orientation(s.Controls)

	s.Thrust = min(s.Thrust*thrustDecay+(1-axis(axes, AxisThrottle))*thrustGain, ThrustCeiling)
	s.Velocity = s.Velocity.Add(RowMul3(mgl32.Vec3{s.Thrust, 0, 0}, s.Orientation).Mul(thrustBoost))

	gravity := SmoothstepVec3(mgl32.Vec3{}, gravityEdge, mgl32.Vec3{0, s.Position.Y(), 0}).Mul(gravityScale)
	s.Velocity = s.Velocity.Sub(gravity).Mul(velocityDamping)
	s.Position = s.Position.Add(s.Velocity)
	return nil
}

// Yaw, Pitch and Roll return the control angles in radians.
func (s *State) Yaw() float32   { return s.Controls.X() }
func (s *State) Pitch() float32 { return s.Controls.Y() }
func (s *State) Roll() float32  { return s.Controls.Z() }

// Altitude is the height above the ground plane.
func (s *State) Altitude() float32 { return s.Position.Y() }

// Speed is the per-tick velocity magnitude.
func (s *State) Speed() float32 { return s.Velocity.Len() }

// Up and Forward are the body axes in world space.
func (s *State) Up() mgl32.Vec3      { return RowMul3(mgl32.Vec3{0, 1, 0}, s.Orientation) }
func (s *State) Forward() mgl32.Vec3 { return RowMul3(mgl32.Vec3{1, 0, 0}, s.Orientation) }

// axis reads one channel, clamped to the [-1, 1] range joysticks report.
// Out-of-range or NaN input would otherwise push thrust below zero or
// poison the whole state.
func axis(axes []float32, i int) float32 {
	v := axes[i]
	if v != v {
		return 0
	}
	return max(-1, min(v, 1))
}
