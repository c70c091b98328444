package sim

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	instrumentRadius = 64
	hudFontSize      = 20
	hudMargin        = 128
)

// bankWarning is the roll/pitch magnitude past which the attitude dial turns red.
const bankWarning = QuarterPi * 1.5

// AttitudeCenter and AltimeterCenter place the two instruments along the
// bottom left edge of a window of the given height.
func AttitudeCenter(height int) mgl32.Vec2  { return mgl32.Vec2{96, float32(height) - hudMargin} }
func AltimeterCenter(height int) mgl32.Vec2 { return mgl32.Vec2{320, float32(height) - hudMargin} }

func drawHUD(surf Surface, st *State) {
	_, height := surf.Size()
	drawTelemetry(surf, st)
	drawAttitude(surf, st, AttitudeCenter(height))
	drawAltimeter(surf, st, AltimeterCenter(height))
}

func drawAttitude(surf Surface, st *State, center mgl32.Vec2) {
	roll := st.Roll()
	attitude := Rot2(roll)
	at := func(x, y float32) mgl32.Vec2 {
		return center.Add(RowMul2(mgl32.Vec2{x, y}, attitude))
	}

	dial := Black
	if abs(roll) > bankWarning || abs(st.Pitch()) > bankWarning {
		dial = Red
	}
	surf.DrawCircle(center, instrumentRadius, dial)

	// Wing bars and the pitch ladder.
	ladder := Wrap(st.Pitch(), -QuarterPi, QuarterPi) * 24 / QuarterPi
	surf.DrawLine(at(-48, 0), at(-32, 0), Gold)
	surf.DrawLine(at(32, 0), at(48, 0), Gold)
	surf.DrawLine(at(-24, ladder), at(24, ladder), Gold)

	rollDeg := RadToDeg(roll)
	surf.DrawTextPro(itoa(rollDeg), center, mgl32.Vec2{-72, 10}, rollDeg, hudFontSize, Gray)
	surf.DrawTextPro(itoa(RadToDeg(st.Pitch())), center, mgl32.Vec2{5, 10}, rollDeg, hudFontSize, RayWhite)
	surf.DrawText("Attitude", center.Sub(mgl32.Vec2{36, hudMargin}), hudFontSize, Gray)
}

func drawAltimeter(surf Surface, st *State, center mgl32.Vec2) {
	altimeter := Rot2(st.Altitude())
	heading := Rot2(st.Yaw())

	surf.DrawCircle(center, instrumentRadius, Black)
	surf.DrawLine(center, center.Add(RowMul2(mgl32.Vec2{0, -48}, altimeter)), Gold)
	surf.DrawLine(center, center.Add(RowMul2(mgl32.Vec2{0, -32}, heading)), Gray)

	surf.DrawTextPro(itoa(st.Altitude()*100), center, mgl32.Vec2{10, 10}, 0, hudFontSize, RayWhite)
	surf.DrawTextPro(itoa(RadToDeg(st.Yaw())), center, mgl32.Vec2{-72, 10},
		RadToDeg(st.Yaw()-HalfPi), hudFontSize, Gray)
	surf.DrawText("Alt./Heading", center.Sub(mgl32.Vec2{56, hudMargin}), hudFontSize, Gray)
}

// drawTelemetry prints the raw control state down the top left corner.
func drawTelemetry(surf Surface, st *State) {
	lines := [...]string{
		"Cmag   " + ftoa(st.Thrust),
		"Cpitch " + ftoa(RadToDeg(st.Pitch())) + "degs",
		"Cyaw   " + ftoa(RadToDeg(st.Yaw())) + "degs",
		"Croll  " + ftoa(RadToDeg(st.Roll())) + "degs",
		"Vmag   " + ftoa(st.Speed()),
	}
	for k, line := range lines {
		surf.DrawText(line, mgl32.Vec2{50, float32(50 + 25*k)}, hudFontSize, Gray)
	}
}

// ftoa formats with six decimals.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
