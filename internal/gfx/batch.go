package gfx

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Chlorophytus/rayfly/internal/sim"
)

const (
	circleSegments = 36
	lineThickness  = 2
	rayLength      = 10000
)

// batch2D collects HUD triangles in window pixels (top-left origin) and
// stores them as NDC x,y + rgba per vertex.
type batch2D struct {
	verts []float32
	scrW  int
	scrH  int
}

func (b *batch2D) begin(width, height int) {
	b.scrW, b.scrH = width, height
	b.verts = b.verts[:0]
}

func (b *batch2D) vertexCount() int { return len(b.verts) / 6 }

func (b *batch2D) addV(p mgl32.Vec2, c sim.Color) {
	b.verts = append(b.verts, b.pxToNDCX(p.X()), b.pxToNDCY(p.Y()), c.R, c.G, c.B, c.A)
}

func (b *batch2D) pxToNDCX(px float32) float32 {
	return (px/float32(b.scrW))*2 - 1
}

func (b *batch2D) pxToNDCY(py float32) float32 {
	return 1 - (py/float32(b.scrH))*2
}

func (b *batch2D) addTri(p0, p1, p2 mgl32.Vec2, c sim.Color) {
	b.addV(p0, c)
	b.addV(p1, c)
	b.addV(p2, c)
}

// addQuad takes the corners in winding order.
func (b *batch2D) addQuad(p0, p1, p2, p3 mgl32.Vec2, c sim.Color) {
	b.addTri(p0, p1, p2, c)
	b.addTri(p0, p2, p3, c)
}

func (b *batch2D) addLine(p0, p1 mgl32.Vec2, c sim.Color) {
	d := p1.Sub(p0)
	if d.Len() == 0 {
		return
	}
	n := mgl32.Vec2{-d.Y(), d.X()}.Normalize().Mul(lineThickness / 2)
	b.addQuad(p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n), c)
}

func (b *batch2D) addCircle(center mgl32.Vec2, radius float32, c sim.Color) {
	step := 2 * math.Pi / circleSegments
	prev := center.Add(mgl32.Vec2{radius, 0})
	for i := 1; i <= circleSegments; i++ {
		s, co := math.Sincos(float64(i) * step)
		next := center.Add(mgl32.Vec2{radius * float32(co), radius * float32(s)})
		b.addTri(center, prev, next, c)
		prev = next
	}
}

// addText lays text out in its own space starting at (0, 0), then places
// text-space point origin at pos, rotated by rotation degrees clockwise.
func (b *batch2D) addText(text string, pos, origin mgl32.Vec2, rotation, size float32, c sim.Color) {
	px := size / fontBaseSize
	if px <= 0 {
		return
	}
	rot := mgl32.Rotate2D(mgl32.DegToRad(rotation))
	place := func(x, y float32) mgl32.Vec2 {
		return pos.Add(rot.Mul2x1(mgl32.Vec2{x, y}.Sub(origin)))
	}

	var cx, cy float32
	for _, r := range strings.ToUpper(text) {
		if r == '\n' {
			cy += (glyphRows + 3) * px
			cx = 0
			continue
		}
		glyph, ok := font5x7[r]
		if ok {
			for row := 0; row < glyphRows; row++ {
				bits := glyph[row]
				for col := 0; col < glyphCols; col++ {
					if bits&(1<<uint(glyphCols-1-col)) == 0 {
						continue
					}
					x := cx + float32(col)*px
					y := cy + float32(row)*px
					b.addQuad(place(x, y), place(x+px, y), place(x+px, y+px), place(x, y+px), c)
				}
			}
		}
		cx += (glyphCols + 1) * px
	}
}

// batch3D collects world-space lines and triangles as xyz + rgba per vertex.
type batch3D struct {
	lines []float32
	tris  []float32
}

func (b *batch3D) reset() {
	b.lines = b.lines[:0]
	b.tris = b.tris[:0]
}

func appendVertex3(dst []float32, p mgl32.Vec3, c sim.Color) []float32 {
	return append(dst, p.X(), p.Y(), p.Z(), c.R, c.G, c.B, c.A)
}

func (b *batch3D) addLine(p0, p1 mgl32.Vec3, c sim.Color) {
	b.lines = appendVertex3(b.lines, p0, c)
	b.lines = appendVertex3(b.lines, p1, c)
}

func (b *batch3D) addTri(p0, p1, p2 mgl32.Vec3, c sim.Color) {
	b.tris = appendVertex3(b.tris, p0, c)
	b.tris = appendVertex3(b.tris, p1, c)
	b.tris = appendVertex3(b.tris, p2, c)
}

// addRay draws a practically infinite line from origin along dir.
func (b *batch3D) addRay(origin, dir mgl32.Vec3, c sim.Color) {
	b.addLine(origin, origin.Add(dir.Mul(rayLength)), c)
}

// addGrid lays slices+1 lines each way on the XZ plane, centred on the
// origin. The centre lines are darker.
func (b *batch3D) addGrid(slices int, spacing float32) {
	half := slices / 2
	extent := float32(half) * spacing
	light := sim.Color{R: 0.75, G: 0.75, B: 0.75, A: 1}
	dark := sim.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	for i := -half; i <= half; i++ {
		c := light
		if i == 0 {
			c = dark
		}
		o := float32(i) * spacing
		b.addLine(mgl32.Vec3{o, 0, -extent}, mgl32.Vec3{o, 0, extent}, c)
		b.addLine(mgl32.Vec3{-extent, 0, o}, mgl32.Vec3{extent, 0, o}, c)
	}
}

func (b *batch3D) lineVertexCount() int { return len(b.lines) / 7 }
func (b *batch3D) triVertexCount() int  { return len(b.tris) / 7 }
