package sim

import "github.com/go-gl/mathgl/mgl32"

type Color struct{ R, G, B, A float32 }

func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

var (
	RayWhite = RGB(245, 245, 245)
	Gray     = RGB(130, 130, 130)
	Black    = RGB(0, 0, 0)
	Red      = RGB(230, 41, 55)
	Green    = RGB(0, 228, 48)
	Blue     = RGB(0, 121, 241)
	Gold     = RGB(255, 203, 0)
)

// Surface receives one frame of draw calls. 3D primitives are only valid
// between Begin3D and End3D; 2D coordinates are window pixels with the
// origin at the top left.
type Surface interface {
	BeginFrame(clear Color)
	EndFrame()
	Size() (width, height int)

	Begin3D(cam *Camera)
	End3D()
	DrawGrid(slices int, spacing float32)
	DrawRay(origin, dir mgl32.Vec3, c Color)
	DrawLine3D(a, b mgl32.Vec3, c Color)
	DrawTriangle3D(a, b, c mgl32.Vec3, col Color)
	DrawModel(m Model, position mgl32.Vec3)

	DrawCircle(center mgl32.Vec2, radius float32, c Color)
	DrawLine(a, b mgl32.Vec2, c Color)
	DrawText(text string, pos mgl32.Vec2, size float32, c Color)
	// DrawTextPro draws text whose origin point (in text space) sits at pos,
	// rotated by rotation degrees around it.
	DrawTextPro(text string, pos, origin mgl32.Vec2, rotation, size float32, c Color)
}

// Model is a platform-owned renderable, such as an uploaded terrain chunk.
type Model interface {
	Release()
}

// WindowConfig describes the window opened by Simulator.Init.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	FPS        int
	Fullscreen bool
}

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
)

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	return c
}

// Window is the platform window opened by Init and closed by Deinit.
type Window interface {
	Surface() Surface
	ShouldClose() bool
	IsFullscreen() bool
	ToggleFullscreen()
	Close()
}

type Platform interface {
	OpenWindow(cfg WindowConfig) (Window, error)
}

// Joysticks reports raw axis state per joystick index.
type Joysticks interface {
	Axes(idx int) ([]float32, error)
}

// ThrustListener is told the normalized thrust (0..1) after every tick.
type ThrustListener interface {
	SetThrust(norm float64)
}
