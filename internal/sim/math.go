package sim

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi        = float32(math.Pi)
	HalfPi    = Pi / 2
	QuarterPi = Pi / 4
)

// Wrap folds v into [lo, hi) with a floored modulo. Non-finite input maps to lo.
func Wrap[T ~float32 | ~float64](v, lo, hi T) T {
	span := float64(hi - lo)
	r := T(float64(lo) + floorMod(span+floorMod(float64(v-lo), span), span))
	// Rounding on the way back to T can land exactly on hi.
	if !(r >= lo && r < hi) {
		return lo
	}
	return r
}

func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// WrapVec3 wraps each component of v into its own [lo, hi) range.
func WrapVec3(v, lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		Wrap(v[0], lo[0], hi[0]),
		Wrap(v[1], lo[1], hi[1]),
		Wrap(v[2], lo[2], hi[2]),
	}
}

// Smoothstep is the Hermite ramp between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func SmoothstepVec3(edge0, edge1, x mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		Smoothstep(edge0[0], edge1[0], x[0]),
		Smoothstep(edge0[1], edge1[1], x[1]),
		Smoothstep(edge0[2], edge1[2], x[2]),
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// The rotation builders below are laid out column by column.

// YawMat3 rotates about the Y axis.
func YawMat3(angle float32) mgl32.Mat3 {
	c, s := cosSin(angle)
	return mgl32.Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// PitchMat3 rotates about the Z axis.
func PitchMat3(angle float32) mgl32.Mat3 {
	c, s := cosSin(angle)
	return mgl32.Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RollMat3 rotates about the X axis.
func RollMat3(angle float32) mgl32.Mat3 {
	c, s := cosSin(angle)
	return mgl32.Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// Rot2 is the 2D counterpart used by the HUD instruments.
func Rot2(angle float32) mgl32.Mat2 {
	c, s := cosSin(angle)
	return mgl32.Mat2{c, -s, s, c}
}

// Orientation composes roll, pitch and yaw from controls (X=yaw, Y=pitch, Z=roll).
func Orientation(controls mgl32.Vec3) mgl32.Mat3 {
	return RollMat3(controls.Z()).Mul3(PitchMat3(controls.Y())).Mul3(YawMat3(controls.X()))
}

// RowMul3 multiplies v as a row vector: v * m.
func RowMul3(v mgl32.Vec3, m mgl32.Mat3) mgl32.Vec3 {
	return m.Transpose().Mul3x1(v)
}

// RowMul2 multiplies v as a row vector: v * m.
func RowMul2(v mgl32.Vec2, m mgl32.Mat2) mgl32.Vec2 {
	return m.Transpose().Mul2x1(v)
}

func cosSin(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(c), float32(s)
}

func RadToDeg(rad float32) float32 { return rad * 180 / Pi }
func DegToRad(deg float32) float32 { return deg * Pi / 180 }

// itoa formats a rounded readout without going through fmt.
func itoa(v float32) string {
	return strconv.Itoa(int(math.Round(float64(v))))
}
