//go:build !test
// +build !test

package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// UIRenderer draws one batch2D per frame on top of the scene.
type UIRenderer struct {
	shader uint32
	vao    uint32
	vbo    uint32
}

func NewUIRenderer() (*UIRenderer, error) {
	shader, err := newProgram(uiVertexShader, uiFragmentShader)
	if err != nil {
		return nil, err
	}
	u := &UIRenderer{shader: shader}
	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 6*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
	return u, nil
}

func (u *UIRenderer) Flush(b *batch2D) {
	if b.vertexCount() == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(u.shader)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(b.vertexCount()))
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (u *UIRenderer) Delete() {
	gl.DeleteBuffers(1, &u.vbo)
	gl.DeleteVertexArrays(1, &u.vao)
	gl.DeleteProgram(u.shader)
}
