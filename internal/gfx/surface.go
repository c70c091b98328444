//go:build !test
// +build !test

package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

type placedTerrain struct {
	model    *TerrainModel
	position mgl32.Vec3
}

// surface batches a frame's draw calls and submits them at End3D and
// EndFrame.
type surface struct {
	window   *Window
	renderer *Renderer
	ui       *UIRenderer

	world   batch3D
	hud     batch2D
	terrain []placedTerrain
}

func (s *surface) Size() (int, int) { return s.window.win.GetSize() }

func (s *surface) BeginFrame(clear sim.Color) {
	fbW, fbH := s.window.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := s.Size()
	s.hud.begin(w, h)
}

func (s *surface) EndFrame() {
	s.ui.Flush(&s.hud)
	s.window.present()
}

func (s *surface) Begin3D(cam *sim.Camera) {
	w, h := s.Size()
	s.renderer.SetMatrices(cam.ViewMatrix(), cam.ProjectionMatrix(w, h))
	s.world.reset()
	s.terrain = s.terrain[:0]
}

func (s *surface) End3D() {
	for _, t := range s.terrain {
		s.renderer.RenderTerrain(t.model, t.position)
	}
	s.renderer.Flush(&s.world)
}

func (s *surface) DrawGrid(slices int, spacing float32) { s.world.addGrid(slices, spacing) }

func (s *surface) DrawRay(origin, dir mgl32.Vec3, c sim.Color) { s.world.addRay(origin, dir, c) }

func (s *surface) DrawLine3D(a, b mgl32.Vec3, c sim.Color) { s.world.addLine(a, b, c) }

func (s *surface) DrawTriangle3D(a, b, c mgl32.Vec3, col sim.Color) { s.world.addTri(a, b, c, col) }

func (s *surface) DrawModel(m sim.Model, position mgl32.Vec3) {
	t, ok := m.(*TerrainModel)
	if !ok {
		log.Debug().Msgf("skipping unsupported model %T", m)
		return
	}
	s.terrain = append(s.terrain, placedTerrain{model: t, position: position})
}

func (s *surface) DrawCircle(center mgl32.Vec2, radius float32, c sim.Color) {
	s.hud.addCircle(center, radius, c)
}

func (s *surface) DrawLine(a, b mgl32.Vec2, c sim.Color) { s.hud.addLine(a, b, c) }

func (s *surface) DrawText(text string, pos mgl32.Vec2, size float32, c sim.Color) {
	s.hud.addText(text, pos, mgl32.Vec2{}, 0, size, c)
}

func (s *surface) DrawTextPro(text string, pos, origin mgl32.Vec2, rotation, size float32, c sim.Color) {
	s.hud.addText(text, pos, origin, rotation, size, c)
}
