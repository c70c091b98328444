//go:build !test
// +build !test

package gfx

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

// Joysticks reads axes straight from GLFW. Events are pumped by the window
// at the end of every frame.
type Joysticks struct{}

func (Joysticks) Axes(idx int) ([]float32, error) {
	if idx < int(glfw.Joystick1) || idx > int(glfw.JoystickLast) {
		return nil, fmt.Errorf("joystick %d: %w", idx, sim.ErrJoystickNotPresent)
	}
	joy := glfw.Joystick(idx)
	if !joy.Present() {
		return nil, fmt.Errorf("joystick %d: %w", idx, sim.ErrJoystickNotPresent)
	}
	return joy.GetAxes(), nil
}

// Name is the joystick's human-readable name, or "" when absent.
func (Joysticks) Name(idx int) string {
	joy := glfw.Joystick(idx)
	if idx < int(glfw.Joystick1) || idx > int(glfw.JoystickLast) || !joy.Present() {
		return ""
	}
	return joy.GetName()
}
