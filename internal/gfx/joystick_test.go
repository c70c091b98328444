//go:build !test
// +build !test

package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

// Indices outside GLFW's joystick range are rejected before GLFW is asked,
// so no window or glfw.Init is needed.
func TestAxesOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 16, 1 << 20} {
		axes, err := Joysticks{}.Axes(idx)
		require.ErrorIs(t, err, sim.ErrJoystickNotPresent, "index %d", idx)
		assert.Nil(t, axes)
		assert.Contains(t, err.Error(), "joystick")
		assert.Empty(t, Joysticks{}.Name(idx))
	}
}
