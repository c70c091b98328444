package terrain

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle grid. Positions and normals are xyz triples,
// TexCoords are uv pairs.
type Mesh struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Indices   []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// MeshFromHeightmap lays one vertex per pixel on a grid spanning size.X by
// size.Z, lifted by the pixel's luminance scaled to size.Y. Each pixel quad
// is split into two triangles.
func MeshFromHeightmap(img *image.Gray, size mgl32.Vec3) *Mesh {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return &Mesh{}
	}

	step := mgl32.Vec3{size.X() / float32(w-1), size.Y() / 255, size.Z() / float32(h-1)}
	height := func(x, z int) float32 {
		x = clamp(x, 0, w-1)
		z = clamp(z, 0, h-1)
		return float32(img.Pix[z*img.Stride+x]) * step.Y()
	}

	m := &Mesh{
		Positions: make([]float32, 0, w*h*3),
		Normals:   make([]float32, 0, w*h*3),
		TexCoords: make([]float32, 0, w*h*2),
		Indices:   make([]uint32, 0, (w-1)*(h-1)*6),
	}
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			m.Positions = append(m.Positions, float32(x)*step.X(), height(x, z), float32(z)*step.Z())

			// Central differences, one-sided at the border.
			dx := (height(x+1, z) - height(x-1, z)) / (step.X() * float32(min(x+1, w-1)-max(x-1, 0)))
			dz := (height(x, z+1) - height(x, z-1)) / (step.Z() * float32(min(z+1, h-1)-max(z-1, 0)))
			n := mgl32.Vec3{-dx, 1, -dz}.Normalize()
			m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())

			m.TexCoords = append(m.TexCoords, float32(x)/float32(w-1), float32(z)/float32(h-1))
		}
	}
	for z := 0; z < h-1; z++ {
		for x := 0; x < w-1; x++ {
			i := uint32(z*w + x)
			right, below := i+1, i+uint32(w)
			m.Indices = append(m.Indices,
				i, below, right,
				right, below, below+1,
			)
		}
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
