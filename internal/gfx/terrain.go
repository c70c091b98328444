//go:build !test
// +build !test

package gfx

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Chlorophytus/rayfly/internal/terrain"
)

var errNoContext = errors.New("gfx: no current GL context")

// TerrainModel is a chunk mesh uploaded to the GPU, textured with its own
// upscaled heightmap.
type TerrainModel struct {
	vao        uint32
	buffers    [4]uint32 // positions, normals, uvs, indices
	texture    uint32
	indexCount int32
}

// LoadTerrain uploads c. The window must already be open.
func LoadTerrain(c *terrain.Chunk) (*TerrainModel, error) {
	if glfw.GetCurrentContext() == nil {
		return nil, errNoContext
	}
	mesh := c.Mesh
	m := &TerrainModel{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(int32(len(m.buffers)), &m.buffers[0])
	gl.BindVertexArray(m.vao)

	attrib := func(loc uint32, buf uint32, data []float32, size int32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, buf)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		gl.VertexAttribPointer(loc, size, gl.FLOAT, false, size*4, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(loc)
	}
	attrib(0, m.buffers[0], mesh.Positions, 3)
	attrib(1, m.buffers[1], mesh.Normals, 3)
	attrib(2, m.buffers[2], mesh.TexCoords, 2)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	img := c.Image
	b := img.Bounds()
	gl.GenTextures(1, &m.texture)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return m, nil
}

// Release frees the GPU objects. It is safe to call twice.
func (m *TerrainModel) Release() {
	if m.vao == 0 {
		return
	}
	gl.DeleteTextures(1, &m.texture)
	gl.DeleteBuffers(int32(len(m.buffers)), &m.buffers[0])
	gl.DeleteVertexArrays(1, &m.vao)
	*m = TerrainModel{}
}
