package sim

import "github.com/go-gl/mathgl/mgl32"

// placedModel is a model drawn every frame at a fixed world position.
type placedModel struct {
	model    Model
	position mgl32.Vec3
}

func drawScene(surf Surface, st *State, cam *Camera, models []placedModel) {
	surf.Begin3D(cam)
	surf.DrawGrid(10, 1.0)

	var origin mgl32.Vec3
	surf.DrawRay(origin, mgl32.Vec3{1, 0, 0}, Red)
	surf.DrawRay(origin, mgl32.Vec3{0, 1, 0}, Green)
	surf.DrawRay(origin, mgl32.Vec3{0, 0, 1}, Blue)

	for _, m := range models {
		surf.DrawModel(m.model, m.position)
	}

	// The craft: a flat triangle pointing along the body forward axis.
	body := func(v mgl32.Vec3) mgl32.Vec3 { return st.Position.Add(RowMul3(v, st.Orientation)) }
	surf.DrawTriangle3D(
		body(mgl32.Vec3{0, 0, 0.5}),
		body(mgl32.Vec3{1, 0, 0}),
		body(mgl32.Vec3{0, 0, -0.5}),
		Gray,
	)
	surf.DrawLine3D(st.Position, st.Position.Add(st.Velocity), Black)
	surf.End3D()
}
