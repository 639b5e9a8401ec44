package camera

import "github.com/Faultbox/meshview/pkg/math"

// Box is a sub-viewport rectangle in device pixels, bottom-left origin.
type Box struct {
	X, Y, W, H int32
}

// IndicatorBox is where the orientation gizmo is drawn.
var IndicatorBox = Box{X: 5, Y: 5, W: 105, H: 105}

// IndicatorOrtho is the fixed projection of the orientation gizmo.
var IndicatorOrtho = math.Ortho(-1, 1, -1, 1, -100, 100)

// Model maps the mesh Z-up convention onto GL's Y-up axes.
var Model = math.RotateX(math.DegToRad(-90))

// View holds the matrices derived from a State for one frame.
type View struct {
	Eye math.Vec3
	Up  math.Vec3

	Matrix     math.Mat4 // pan, zoom and orientation
	Indicator  math.Mat4 // orientation only, fixed unit distance
	Projection math.Mat4
	Ortho      math.Mat4
}

// Derive computes the frame matrices from s. It is a pure function of s
// and the projection handed in.
func (s State) Derive(projection math.Mat4) View {
	eye := Eye(s.AngleX, s.AngleY)
	up := Up(s.AngleX, s.AngleY)
	look := math.LookAt(eye, math.Vec3{}, up)

	return View{
		Eye:        eye,
		Up:         up,
		Matrix:     math.Translate(s.PanX, s.PanY, -s.Zoom).Mul(look),
		Indicator:  look,
		Projection: projection,
		Ortho:      IndicatorOrtho,
	}
}

// MVP returns the main-pass model-view-projection matrix.
func (v View) MVP() math.Mat4 {
	return v.Projection.Mul(v.Matrix).Mul(Model)
}

// IndicatorMVP returns the gizmo model-view-projection matrix.
func (v View) IndicatorMVP() math.Mat4 {
	return v.Ortho.Mul(v.Indicator).Mul(Model)
}

// ScreenCoords projects a point through the gizmo transform into box pixel
// coordinates, bottom-left origin. Used to place the axis labels.
func (v View) ScreenCoords(world math.Vec3, box Box) math.Vec2 {
	ndc := v.IndicatorMVP().Project(world)
	return math.Vec2{
		X: float32(box.X) + float32(box.W)*(ndc.X+1)/2,
		Y: float32(box.Y) + float32(box.H)*(ndc.Y+1)/2,
	}
}
