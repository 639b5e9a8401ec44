// Package camera implements the orbit camera of the viewport: angle/zoom/pan
// state, its mutation by pointer input and view presets, and the matrices
// derived from it each frame.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshview/pkg/math"
)

// Zoom bounds and input sensitivities.
const (
	MinZoom     float32 = 1
	MaxZoom     float32 = 10000
	DefaultZoom float32 = 100

	DefaultAngleX float32 = 0
	DefaultAngleY float32 = 70

	// ZoomFactor is the multiplicative step per wheel notch.
	ZoomFactor float32 = 1.25
	// HighDensityZoomFactor replaces ZoomFactor when the display scale is above 1.
	HighDensityZoomFactor float32 = 1.1

	// PanSensitivity divides pointer pixels into pan units.
	PanSensitivity float32 = 3

	// upDelta is the elevation step, in degrees, of the up-vector finite difference.
	upDelta float32 = 1
)

// State is the session-only camera state. Angles are in degrees and are
// kept in [0, 360) by every mutating method.
type State struct {
	AngleX float32 // azimuth
	AngleY float32 // elevation, 0 looks down from the top
	Zoom   float32 // distance along the view axis
	PanX   float32
	PanY   float32

	InvertedControls bool
}

// NewState returns the start-up camera state.
func NewState() State {
	return State{
		AngleX: DefaultAngleX,
		AngleY: DefaultAngleY,
		Zoom:   DefaultZoom,
	}
}

// Preset is a named fixed camera orientation.
type Preset int

const (
	Front Preset = iota
	Back
	Left
	Right
	Top
	Bottom
)

var presetNames = [...]string{"front", "back", "left", "right", "top", "bottom"}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return "unknown"
	}
	return presetNames[p]
}

// Angles returns the (angleX, angleY) pair of the preset.
func (p Preset) Angles() (angleX, angleY float32) {
	switch p {
	case Front:
		return 0, 90
	case Back:
		return 180, 90
	case Left:
		return 270, 90
	case Right:
		return 90, 90
	case Top:
		return 0, 0
	case Bottom:
		return 0, 180
	}
	return DefaultAngleX, DefaultAngleY
}

// ApplyPreset orients the camera to p. Zoom and pan are kept.
func (s *State) ApplyPreset(p Preset) {
	s.AngleX, s.AngleY = p.Angles()
}

// ResetOrientation restores the start-up angles.
func (s *State) ResetOrientation() {
	s.AngleX = DefaultAngleX
	s.AngleY = DefaultAngleY
}

// Rotate applies an orbit drag of (dx, dy) pointer pixels.
//
// Vertical motion changes elevation. Horizontal motion changes azimuth, and
// its sign flips while the elevation is past 180 degrees, i.e. while the
// camera is upside down after passing over a pole. This keeps the scene
// following the pointer on screen. Inverted controls flip both axes, and
// the pole flip still applies on top of that.
func (s *State) Rotate(dx, dy int) {
	fdx, fdy := float32(dx), float32(dy)
	if !s.InvertedControls {
		s.AngleY -= fdy
		if s.AngleY > 180 {
			s.AngleX += fdx
		} else {
			s.AngleX -= fdx
		}
	} else {
		s.AngleY += fdy
		if s.AngleY > 180 {
			s.AngleX -= fdx
		} else {
			s.AngleX += fdx
		}
	}
	s.NormalizeAngles()
}

// Pan translates the view plane by (dx, dy) pointer pixels.
func (s *State) Pan(dx, dy int) {
	px := float32(dx) / PanSensitivity
	py := float32(dy) / PanSensitivity
	if !s.InvertedControls {
		s.PanX += px
		s.PanY -= py
	} else {
		s.PanX -= px
		s.PanY += py
	}
}

// CenterPan removes any pan offset.
func (s *State) CenterPan() {
	s.PanX, s.PanY = 0, 0
}

// ZoomStep applies one wheel notch. A negative delta moves the camera away.
// displayScale above 1 selects the finer step. A result outside the open
// interval (MinZoom, MaxZoom) is rejected and leaves Zoom unchanged.
// Reports whether Zoom changed.
func (s *State) ZoomStep(delta int, displayScale float32) bool {
	if delta == 0 {
		return false
	}
	factor := ZoomFactor
	if displayScale > 1 {
		factor = HighDensityZoomFactor
	}

	z := s.Zoom
	if delta < 0 {
		z *= factor
	} else {
		z *= 1 / factor
	}
	if z <= MinZoom || z >= MaxZoom {
		return false
	}
	s.Zoom = z
	return true
}

// NormalizeAngles wraps both angles into [0, 360).
func (s *State) NormalizeAngles() {
	s.AngleX = wrapDegrees(s.AngleX)
	s.AngleY = wrapDegrees(s.AngleY)
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// a tiny negative remainder rounds up to exactly 360 in float32
	if a >= 360 {
		a = 0
	}
	return a
}

// Eye returns the camera position on the unit sphere for the given angles.
func Eye(angleX, angleY float32) math.Vec3 {
	ax := math.DegToRad(angleX)
	ay := math.DegToRad(angleY)
	return math.Vec3{
		X: math32.Sin(ay) * math32.Sin(ax),
		Y: math32.Cos(ay),
		Z: math32.Sin(ay) * math32.Cos(ax),
	}
}

// Up approximates the view up direction as the difference between the eye
// one degree of elevation closer to the top pole and the eye itself. This
// stays well defined at both poles, where a fixed world up would be parallel
// to the view direction.
func Up(angleX, angleY float32) math.Vec3 {
	return Eye(angleX, angleY-upDelta).Sub(Eye(angleX, angleY))
}
