//go:build !test
// +build !test

package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws the per-frame 3D line and triangle batches and uploaded
// terrain models.
type Renderer struct {
	colorProgram  uint32
	viewLoc       int32
	projectionLoc int32
	vao           uint32
	vbo           uint32

	terrainProgram  uint32
	terrainModelLoc int32
	terrainViewLoc  int32
	terrainProjLoc  int32
	terrainSampler  int32
	terrainLightLoc int32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.colorProgram, err = newProgram(colorVertexShader, colorFragmentShader); err != nil {
		return nil, err
	}
	r.viewLoc = uniform(r.colorProgram, "view")
	r.projectionLoc = uniform(r.colorProgram, "projection")

	if r.terrainProgram, err = newProgram(terrainVertexShader, terrainFragmentShader); err != nil {
		gl.DeleteProgram(r.colorProgram)
		return nil, err
	}
	r.terrainModelLoc = uniform(r.terrainProgram, "model")
	r.terrainViewLoc = uniform(r.terrainProgram, "view")
	r.terrainProjLoc = uniform(r.terrainProgram, "projection")
	r.terrainSampler = uniform(r.terrainProgram, "heightmap")
	r.terrainLightLoc = uniform(r.terrainProgram, "uLightDir")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 7*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 7*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) SetMatrices(view, projection mgl32.Mat4) {
	r.view, r.projection = view, projection
}

// Flush draws the batch's triangles, then its lines.
func (r *Renderer) Flush(b *batch3D) {
	gl.UseProgram(r.colorProgram)
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &r.projection[0])
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if n := b.triVertexCount(); n > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(b.tris)*4, gl.Ptr(b.tris), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	}
	if n := b.lineVertexCount(); n > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(b.lines)*4, gl.Ptr(b.lines), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(n))
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) RenderTerrain(m *TerrainModel, position mgl32.Vec3) {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	gl.UseProgram(r.terrainProgram)
	gl.UniformMatrix4fv(r.terrainModelLoc, 1, false, &model[0])
	gl.UniformMatrix4fv(r.terrainViewLoc, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.terrainProjLoc, 1, false, &r.projection[0])
	gl.Uniform3f(r.terrainLightLoc, -0.3, -1, -0.2)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)
	gl.Uniform1i(r.terrainSampler, 0)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.colorProgram)
	gl.DeleteProgram(r.terrainProgram)
}
