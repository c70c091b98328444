//go:build !test
// +build !test

package gfx

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

// Platform opens GLFW windows with an OpenGL 4.1 core context. GLFW must
// be driven from the main thread; main locks it in init.
type Platform struct{}

func (Platform) OpenWindow(cfg sim.WindowConfig) (sim.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	log.Debug().
		Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))).
		Msg("opengl context")

	renderer, err := NewRenderer()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	ui, err := NewUIRenderer()
	if err != nil {
		renderer.Delete()
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w := &Window{
		win:       win,
		width:     cfg.Width,
		height:    cfg.Height,
		frameTime: time.Second / time.Duration(cfg.FPS),
	}
	w.surface = &surface{window: w, renderer: renderer, ui: ui}
	win.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
	})
	return w, nil
}

// Window is a GLFW window and the surface drawing into it.
type Window struct {
	win     *glfw.Window
	surface *surface

	// Windowed geometry, restored when leaving fullscreen.
	width, height int
	posX, posY    int

	frameTime time.Duration
	lastFrame time.Time
}

func (w *Window) Surface() sim.Surface { return w.surface }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) IsFullscreen() bool { return w.win.GetMonitor() != nil }

func (w *Window) ToggleFullscreen() {
	if w.IsFullscreen() {
		w.win.SetMonitor(nil, w.posX, w.posY, w.width, w.height, 0)
		log.Debug().Msg("windowed")
		return
	}
	w.posX, w.posY = w.win.GetPos()
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		log.Warn().Msg("no primary monitor, staying windowed")
		return
	}
	mode := monitor.GetVideoMode()
	w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	log.Debug().Int("width", mode.Width).Int("height", mode.Height).Msg("fullscreen")
}

func (w *Window) Close() {
	w.surface.renderer.Delete()
	w.surface.ui.Delete()
	w.win.Destroy()
	glfw.Terminate()
}

// present swaps buffers, pumps events and sleeps off the rest of the frame.
func (w *Window) present() {
	w.win.SwapBuffers()
	glfw.PollEvents()

	if !w.lastFrame.IsZero() {
		if rest := w.frameTime - time.Since(w.lastFrame); rest > 0 {
			time.Sleep(rest)
		}
	}
	w.lastFrame = time.Now()
}
