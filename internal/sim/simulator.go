package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// Simulator owns the window, the flight state and the chase camera. It is
// either uninitialized or running; Init and Deinit move between the two.
type Simulator struct {
	platform  Platform
	joysticks Joysticks
	thrust    ThrustListener

	window  Window
	cfg     WindowConfig
	running bool

	state  *State
	camera *Camera
	models []placedModel

	axisCount int
}

func NewSimulator(platform Platform, joysticks Joysticks) *Simulator {
	return &Simulator{
		platform:  platform,
		joysticks: joysticks,
		state:     NewState(),
		camera:    NewCamera(),
	}
}

// State exposes the flight state for telemetry.
func (s *Simulator) State() *State { return s.state }

func (s *Simulator) Camera() *Camera { return s.camera }

func (s *Simulator) Running() bool { return s.running }

// SetThrustListener registers l to follow the thrust accumulator.
func (s *Simulator) SetThrustListener(l ThrustListener) { s.thrust = l }

// AddModel draws m at position in every subsequent frame.
func (s *Simulator) AddModel(m Model, position mgl32.Vec3) {
	s.models = append(s.models, placedModel{model: m, position: position})
}

// Init opens the window. It fails if the simulator is already running.
func (s *Simulator) Init(cfg WindowConfig) error {
	if s.running {
		return ErrAlreadyInitialized
	}
	cfg = cfg.withDefaults()

	window, err := s.platform.OpenWindow(cfg)
	if err != nil {
		return fmt.Errorf("sim init: %w", err)
	}
	if cfg.Fullscreen != window.IsFullscreen() {
		window.ToggleFullscreen()
	}

	s.window = window
	s.cfg = cfg
	s.running = true
	log.Info().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("fps", cfg.FPS).
		Bool("fullscreen", cfg.Fullscreen).
		Msg("window open")
	return nil
}

// Deinit closes the window and returns to the uninitialized state.
func (s *Simulator) Deinit() {
	if !s.running {
		return
	}
	for _, m := range s.models {
		m.model.Release()
	}
	s.models = nil
	s.window.Close()
	s.window = nil
	s.running = false
	s.axisCount = 0
	log.Info().Msg("window closed")
}

// ShouldClose reports a pending window-close request.
func (s *Simulator) ShouldClose() bool {
	return !s.running || s.window.ShouldClose()
}

// Tick reads the joystick once, steps the flight model and draws the frame.
func (s *Simulator) Tick(joystick int) error {
	if !s.running {
		return ErrNotInitialized
	}

	axes, err := s.joysticks.Axes(joystick)
	if err != nil {
		return fmt.Errorf("sim tick: %w", err)
	}
	if len(axes) != s.axisCount {
		s.axisCount = len(axes)
		log.Info().Int("joystick", joystick).Int("axes", len(axes)).Msg("detected joystick axes")
	}
	log.Debug().Floats32("axes", axes).Msg("joystick")

	if err := s.state.Step(axes); err != nil {
		return fmt.Errorf("sim tick: %w", err)
	}
	s.camera.Follow(s.state)
	if s.thrust != nil {
		s.thrust.SetThrust(float64(s.state.Thrust / ThrustCeiling))
	}

	surf := s.window.Surface()
	surf.BeginFrame(RayWhite)
	drawScene(surf, s.state, s.camera, s.models)
	drawHUD(surf, s.state)
	surf.EndFrame()
	return nil
}

// Run ticks until the window is asked to close.
func (s *Simulator) Run(joystick int) error {
	for !s.ShouldClose() {
		if err := s.Tick(joystick); err != nil {
			return err
		}
	}
	return nil
}
