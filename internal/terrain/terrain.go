// Package terrain generates heightmap chunks from a xorshift32 hash of the
// global sample coordinate, mixed with a process-wide seed.
package terrain

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"image"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

const (
	// HeightmapSize is the edge length of a raw chunk heightmap in samples.
	HeightmapSize = 32
	// HeightmapScale is both the upscale factor applied to the heightmap and
	// the world-space edge length of a chunk mesh.
	HeightmapScale = 4
	// HeightmapRelief is the world height of a full-white sample.
	HeightmapRelief = 0.5
)

// Xorshift32 is Marsaglia's 13/17/5 xorshift step.
func Xorshift32(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// RandomSeed draws a seed from the operating system's random source.
func RandomSeed() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("terrain seed: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

type Generator struct {
	seed uint32
}

func NewGenerator(seed uint32) *Generator {
	log.Info().Uint32("seed", seed).Msg("with terragen seed")
	return &Generator{seed: seed}
}

func (g *Generator) Seed() uint32 { return g.seed }

// Heightmap returns the raw samples of chunk (x, z). Row i, column j holds
// the hash of global coordinate (x*size-i, z*size-j).
func (g *Generator) Heightmap(x, z int32) *image.Gray {
	const size = HeightmapSize
	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := int32(0); i < size; i++ {
		for j := int32(0); j < size; j++ {
			xx := uint32(x*size - i)
			zz := uint32(z*size - j)
			img.Pix[i*size+j] = uint8(Xorshift32(g.seed * (xx ^ zz)))
		}
	}
	return img
}

// Chunk is one generated terrain patch. Image is the upscaled heightmap and
// doubles as the mesh texture.
type Chunk struct {
	X, Z      int32
	Heightmap *image.Gray
	Image     *image.Gray
	Mesh      *Mesh
}

// Chunk builds the mesh for chunk (x, z). Nothing is cached; every call
// regenerates from the seed.
func (g *Generator) Chunk(x, z int32) *Chunk {
	raw := g.Heightmap(x, z)
	img := Upscale(raw, HeightmapScale)
	mesh := MeshFromHeightmap(img, mgl32.Vec3{HeightmapScale, HeightmapRelief, HeightmapScale})
	c := &Chunk{X: x, Z: z, Heightmap: raw, Image: img, Mesh: mesh}
	log.Debug().
		Int32("x", x).
		Int32("z", z).
		Str("digest", fmt.Sprintf("%016x", c.Digest())).
		Int("vertices", mesh.VertexCount()).
		Msg("terrain chunk")
	return c
}

// Origin is the world position of the chunk's first mesh vertex.
func (c *Chunk) Origin() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) * HeightmapScale, 0, float32(c.Z) * HeightmapScale}
}

// Digest fingerprints the raw heightmap.
func (c *Chunk) Digest() uint64 {
	return xxhash.Sum64(c.Heightmap.Pix)
}

// Upscale resizes img by factor with Catmull-Rom resampling.
func Upscale(img *image.Gray, factor int) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
