package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := []float32{
		0, Pi, -Pi, 2 * Pi, -2 * Pi, 3 * Pi, -3 * Pi,
		math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
		math.Nextafter32(Pi, 0), math.Nextafter32(-Pi, 0),
	}
	for i := 0; i < 10000; i++ {
		inputs = append(inputs, float32(rng.NormFloat64()*1e4))
	}

	for _, v := range inputs {
		got := Wrap(v, -Pi, Pi)
		require.Truef(t, got >= -Pi && got < Pi, "Wrap(%v) = %v", v, got)
	}
}

func TestWrapFloat64(t *testing.T) {
	for _, v := range []float64{-1e12, -7.5, -0.25, 0, 0.25, 7.5, 1e12} {
		got := Wrap(v, -1, 3)
		require.Truef(t, got >= -1 && got < 3, "Wrap(%v) = %v", v, got)
	}
}

func TestWrapValues(t *testing.T) {
	assert.InDelta(t, 1, Wrap(float32(1), -Pi, Pi), 1e-6)
	assert.InDelta(t, -Pi, Wrap(Pi, -Pi, Pi), 1e-6)
	assert.InDelta(t, 0.5, Wrap(float32(0.5)+2*Pi, -Pi, Pi), 1e-5)
	assert.InDelta(t, -0.5, Wrap(float32(-0.5)-4*Pi, -Pi, Pi), 1e-5)
	assert.InDelta(t, 2.5, Wrap[float64](12.5, 0, 5), 1e-12)
	assert.InDelta(t, 2.5, Wrap[float64](-2.5, 0, 5), 1e-12)
}

func TestWrapVec3(t *testing.T) {
	got := WrapVec3(mgl32.Vec3{4, -4, 0.5}, angleMin, angleMax)
	assert.InDelta(t, 4-2*Pi, got.X(), 1e-5)
	assert.InDelta(t, -4+2*Pi, got.Y(), 1e-5)
	assert.InDelta(t, 0.5, got.Z(), 1e-6)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), Smoothstep(0, 1, -2))
	assert.Equal(t, float32(1), Smoothstep(0, 1, 3))
	assert.InDelta(t, 0.5, Smoothstep(0, 1, 0.5), 1e-6)
	assert.InDelta(t, 0.104, Smoothstep(0, 1, 0.2), 1e-6)
}

func TestOrientationIsRotation(t *testing.T) {
	for _, c := range []mgl32.Vec3{{0, 0, 0}, {0.3, -1.2, 2.9}, {-Pi, HalfPi, -0.01}} {
		r := Orientation(c)
		id, rrt := mgl32.Ident3(), r.Mul3(r.Transpose())
		assert.InDeltaSlice(t, id[:], rrt[:], 1e-5, "R*R^T != I for %v", c)
		assert.InDelta(t, 1, r.Det(), 1e-5)
	}
}

func TestRowMulMatchesTranspose(t *testing.T) {
	// A pure yaw of a quarter turn carries body forward (+X) onto world -Z.
	fwd := RowMul3(mgl32.Vec3{1, 0, 0}, YawMat3(HalfPi))
	assert.InDeltaSlice(t, []float32{0, 0, -1}, fwd[:], 1e-6)

	p := RowMul2(mgl32.Vec2{1, 0}, Rot2(HalfPi))
	assert.InDelta(t, 1, p.Len(), 1e-6)
	assert.InDelta(t, 0, p.X(), 1e-6)
}

func TestItoaRounds(t *testing.T) {
	assert.Equal(t, "3", itoa(2.6))
	assert.Equal(t, "-3", itoa(-2.6))
	assert.Equal(t, "0", itoa(0.2))
}
