package sim

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{5, 5, 0},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     110,
		Near:     0.01,
		Far:      1000,
	}
}

// Follow places the camera one unit behind and one unit above the craft,
// rolling with it.
func (c *Camera) Follow(s *State) {
	up := s.Up()
	c.Up = up
	c.Target = s.Position.Add(up)
	c.Position = s.Position.Sub(s.Forward()).Add(up)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	// Ensure minimum dimensions to avoid division by zero
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}
