package terrain

import (
	"bytes"
	"image"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestXorshift32(t *testing.T) {
	assert.Equal(t, uint32(0), Xorshift32(0))
	assert.Equal(t, uint32(270369), Xorshift32(1))

	// Never maps a non-zero state to zero.
	x := uint32(2463534242)
	for i := 0; i < 100000; i++ {
		x = Xorshift32(x)
		require.NotZero(t, x)
	}
}

func TestHeightmapDeterministic(t *testing.T) {
	g := NewGenerator(0xC0FFEE)
	for _, c := range [][2]int32{{0, 0}, {1, -1}, {-7, 12}, {1 << 20, -(1 << 20)}} {
		a := g.Heightmap(c[0], c[1])
		b := g.Heightmap(c[0], c[1])
		require.True(t, bytes.Equal(a.Pix, b.Pix), "chunk %v", c)
		require.Equal(t, image.Rect(0, 0, HeightmapSize, HeightmapSize), a.Bounds())

		// Same seed, fresh generator.
		other := NewGenerator(0xC0FFEE).Heightmap(c[0], c[1])
		require.Equal(t, a.Pix, other.Pix)
	}
}

func TestHeightmapSampleFormula(t *testing.T) {
	const seed = 1234567
	g := NewGenerator(seed)
	img := g.Heightmap(2, -3)

	i, j := int32(5), int32(17)
	xx := uint32(int32(2*HeightmapSize) - i)
	zz := uint32(int32(-3*HeightmapSize) - j)
	want := uint8(Xorshift32(seed * (xx ^ zz)))
	assert.Equal(t, want, img.GrayAt(int(j), int(i)).Y)

	// The origin sample of chunk (0, 0) hashes zero.
	assert.Equal(t, uint8(0), g.Heightmap(0, 0).Pix[0])
}

func TestHeightmapDependsOnSeedAndCoordinates(t *testing.T) {
	a := NewGenerator(1).Heightmap(3, 4)
	b := NewGenerator(2).Heightmap(3, 4)
	c := NewGenerator(1).Heightmap(4, 3)
	assert.NotEqual(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestChunk(t *testing.T) {
	g := NewGenerator(99)
	c := g.Chunk(-2, 5)

	edge := HeightmapSize * HeightmapScale
	assert.Equal(t, image.Rect(0, 0, edge, edge), c.Image.Bounds())
	assert.Equal(t, edge*edge, c.Mesh.VertexCount())
	assert.Len(t, c.Mesh.Normals, edge*edge*3)
	assert.Len(t, c.Mesh.TexCoords, edge*edge*2)
	assert.Len(t, c.Mesh.Indices, (edge-1)*(edge-1)*6)
	assert.Equal(t, mgl32.Vec3{-2 * HeightmapScale, 0, 5 * HeightmapScale}, c.Origin())

	again := g.Chunk(-2, 5)
	assert.Equal(t, c.Digest(), again.Digest())
	assert.Equal(t, c.Image.Pix, again.Image.Pix)
	assert.NotSame(t, c, again)
	assert.NotEqual(t, c.Digest(), g.Chunk(-2, 6).Digest())
}

func TestMeshFromHeightmap(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.Pix = []uint8{0, 255, 0, 0, 0, 0}
	m := MeshFromHeightmap(img, mgl32.Vec3{4, 0.5, 2})

	require.Equal(t, 6, m.VertexCount())
	// Second vertex sits at x = 4/2 and carries the full relief.
	assert.InDelta(t, 2, m.Positions[3], 1e-6)
	assert.InDelta(t, 0.5, m.Positions[4], 1e-6)
	// Last vertex spans the whole patch.
	assert.InDelta(t, 4, m.Positions[15], 1e-6)
	assert.InDelta(t, 2, m.Positions[17], 1e-6)
	assert.Equal(t, []float32{1, 1}, m.TexCoords[10:12])
	assert.Equal(t, []uint32{0, 3, 1, 1, 3, 4, 1, 4, 2, 2, 4, 5}, m.Indices)

	for v := 0; v < m.VertexCount(); v++ {
		n := mgl32.Vec3{m.Normals[v*3], m.Normals[v*3+1], m.Normals[v*3+2]}
		assert.InDelta(t, 1, n.Len(), 1e-5)
		assert.Greater(t, n.Y(), float32(0))
	}

	flat := MeshFromHeightmap(image.NewGray(image.Rect(0, 0, 1, 1)), mgl32.Vec3{1, 1, 1})
	assert.Zero(t, flat.VertexCount())
}

func TestUpscalePreservesFlatImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	up := Upscale(img, 3)
	require.Equal(t, image.Rect(0, 0, 12, 12), up.Bounds())
	for _, p := range up.Pix {
		require.InDelta(t, 200, int(p), 1)
	}
}

func TestRandomSeed(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 8; i++ {
		s, err := RandomSeed()
		require.NoError(t, err)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
}
