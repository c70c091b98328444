package sim

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() (*Simulator, *fakePlatform) {
	p := &fakePlatform{}
	return NewSimulator(p, fakeJoysticks{0: neutralAxes()}), p
}

func TestInitTwiceFails(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{Title: "rayfly test"}))
	err := s.Init(WindowConfig{})
	require.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Len(t, p.opened, 1)
	assert.True(t, s.Running())
}

func TestDeinitAllowsInitAgain(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	first := p.last()
	s.Deinit()
	assert.True(t, first.closed)
	assert.False(t, s.Running())
	assert.True(t, s.ShouldClose())

	require.NoError(t, s.Init(WindowConfig{}))
	assert.Len(t, p.opened, 2)
	s.Deinit()
	s.Deinit() // no-op once uninitialized
}

func TestInitAppliesDefaults(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	assert.Equal(t, WindowConfig{Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS}, p.opened[0])
}

func TestInitTogglesFullscreenOnlyWhenNeeded(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{Fullscreen: true}))
	assert.Equal(t, 1, p.last().toggles)
	assert.True(t, p.last().fullscreen)
	s.Deinit()

	require.NoError(t, s.Init(WindowConfig{Fullscreen: false}))
	assert.Equal(t, 0, p.last().toggles)
}

func TestInitPropagatesPlatformError(t *testing.T) {
	boom := errors.New("no display")
	s := NewSimulator(&fakePlatform{err: boom}, fakeJoysticks{})
	err := s.Init(WindowConfig{})
	require.ErrorIs(t, err, boom)
	assert.False(t, s.Running())
}

func TestTickBeforeInit(t *testing.T) {
	s, _ := newTestSimulator()
	require.ErrorIs(t, s.Tick(0), ErrNotInitialized)
}

func TestTickAbsentJoystick(t *testing.T) {
	s, _ := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	err := s.Tick(3)
	require.ErrorIs(t, err, ErrJoystickNotPresent)
	assert.Contains(t, err.Error(), "joystick 3")
}

func TestTickTooFewAxes(t *testing.T) {
	s := NewSimulator(&fakePlatform{}, fakeJoysticks{0: {0, 0, 1}})
	require.NoError(t, s.Init(WindowConfig{}))
	require.ErrorIs(t, s.Tick(0), ErrInsufficientAxes)
}

func TestTickDrawsSceneAndHUD(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	model := &fakeModel{}
	s.AddModel(model, mgl32.Vec3{4, 0, 4})
	require.NoError(t, s.Tick(0))

	surf := p.last().surface
	assert.Equal(t, "BeginFrame", surf.calls[0])
	assert.Equal(t, "EndFrame", surf.calls[len(surf.calls)-1])
	assert.Equal(t, 3, surf.count("DrawRay"), "axes gizmo")
	assert.Equal(t, 1, surf.count("DrawGrid"))
	assert.Equal(t, 1, surf.count("DrawTriangle3D"), "craft")
	assert.Equal(t, 1, surf.count("DrawLine3D"), "velocity vector")
	assert.Equal(t, 1, surf.count("DrawModel"))
	assert.Equal(t, 2, surf.count("DrawCircle"), "attitude and altimeter")
	assert.Equal(t, 5, surf.count("DrawLine"))
	assert.Contains(t, surf.texts, "Attitude")
	assert.Contains(t, surf.texts, "Alt./Heading")
	assert.Equal(t, 7, surf.count("DrawText"), "captions and telemetry")
	for k, line := range []string{
		"Cmag   0.000000",
		"Cpitch 0.000000degs",
		"Cyaw   0.000000degs",
		"Croll  0.000000degs",
		"Vmag   0.000000",
	} {
		require.Contains(t, surf.textPos, line)
		assert.Equal(t, mgl32.Vec2{50, float32(50 + 25*k)}, surf.textPos[line])
	}
	assert.Equal(t, []Color{Black, Black}, surf.circles)
	for _, c := range surf.calls {
		assert.NotContains(t, c, "outside 3D")
	}

	s.Deinit()
	assert.True(t, model.released)
}

func TestVelocityVectorFollowsCraft(t *testing.T) {
	p := &fakePlatform{}
	s := NewSimulator(p, fakeJoysticks{0: {0, 0, -1, 0, 0, 0}})
	require.NoError(t, s.Init(WindowConfig{}))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Tick(0))
	}

	surf := p.last().surface
	require.Len(t, surf.lines3D, 5)
	last := surf.lines3D[4]
	st := s.State()
	assert.Equal(t, st.Position, last[0])
	assert.Equal(t, st.Position.Add(st.Velocity), last[1])
	assert.Greater(t, st.Speed(), float32(0))
	assert.Contains(t, surf.texts, "Vmag   "+ftoa(st.Speed()))
}

func TestAttitudeDialTurnsRedPastBankLimit(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	s.State().Controls = mgl32.Vec3{0, 0, 1.5}
	require.NoError(t, s.Tick(0))
	assert.Equal(t, Red, p.last().surface.circles[0])
	assert.Equal(t, Black, p.last().surface.circles[1])
}

func TestTickNotifiesThrustListener(t *testing.T) {
	p := &fakePlatform{}
	s := NewSimulator(p, fakeJoysticks{0: {0, 0, -1, 0, 0, 0}})
	rec := &thrustRecorder{}
	s.SetThrustListener(rec)
	require.NoError(t, s.Init(WindowConfig{}))
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Tick(0))
	}
	require.Len(t, rec.values, 10)
	for i := 1; i < len(rec.values); i++ {
		assert.Greater(t, rec.values[i], rec.values[i-1])
		assert.LessOrEqual(t, rec.values[i], 1.0)
	}
}

func TestRunStopsOnCloseRequest(t *testing.T) {
	s, p := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	p.last().closeAfter = 5
	require.NoError(t, s.Run(0))
	assert.Equal(t, 5, p.last().surface.frames)
}

func TestRunStopsOnTickError(t *testing.T) {
	s, _ := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	require.ErrorIs(t, s.Run(7), ErrJoystickNotPresent)
}

func TestCameraFollowsCraft(t *testing.T) {
	s, _ := newTestSimulator()
	require.NoError(t, s.Init(WindowConfig{}))
	require.NoError(t, s.Tick(0))
	cam := s.Camera()
	// Level craft at the origin: camera one unit behind along -X and one unit up.
	assert.InDeltaSlice(t, []float32{-1, 1, 0}, cam.Position[:], 1e-6)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, cam.Target[:], 1e-6)
}
