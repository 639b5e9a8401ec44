// Package projection selects the perspective near plane and the reference
// grid spacing from the current zoom and the largest scene seen so far.
package projection

import "github.com/Faultbox/meshview/pkg/math"

// Perspective parameters.
const (
	FieldOfView  float32 = 60 // degrees, vertical
	NearStandard float32 = 1.0
	NearClose    float32 = 0.01
	Far          float32 = 100000

	// GridSize is the number of grid cells on each side of the origin.
	GridSize = 10

	// gridSnap is the multiple coarse grid steps are rounded down to.
	gridSnap = 5
)

// Policy holds the projection state of one viewport. The zero value is not
// usable; call New.
type Policy struct {
	minDiameter float32
	near        float32
	gridStep    int
}

// New returns a policy with a diameter floor of 1 and no grid step yet, so
// the first UpdateGridStep always reports a change.
func New() *Policy {
	return &Policy{
		minDiameter: 1,
		near:        NearClose,
	}
}

// Observe raises the diameter floor to d if d is larger. The floor never
// shrinks, so a small scene loaded after a big one cannot pull the near
// plane in and clip the view.
func (p *Policy) Observe(d float32) {
	if d > p.minDiameter {
		p.minDiameter = d
	}
}

// MinDiameter returns the largest scene diameter observed.
func (p *Policy) MinDiameter() float32 {
	return p.minDiameter
}

// NearPlane returns the near-plane distance for a camera at zoom looking at
// a scene of diameter d. Far from the scene the standard plane is used;
// closer than twice its diameter the close plane avoids clipping it.
func NearPlane(d, zoom float32) float32 {
	if zoom >= 2*d {
		return NearStandard
	}
	return NearClose
}

// RecomputeNear observes d and reselects the near plane for zoom.
func (p *Policy) RecomputeNear(d, zoom float32) float32 {
	p.Observe(d)
	p.near = NearPlane(p.minDiameter, zoom)
	return p.near
}

// UpdateNear reselects the near plane for zoom against the current floor.
func (p *Policy) UpdateNear(zoom float32) float32 {
	p.near = NearPlane(p.minDiameter, zoom)
	return p.near
}

// Near returns the selected near plane.
func (p *Policy) Near() float32 {
	return p.near
}

// GridStep returns the grid spacing for zoom. The result is at least 1 and
// is a multiple of 5 once it exceeds 5, so the grid coarsens in discrete
// steps as the camera moves away.
func GridStep(zoom float32) int {
	factor := int(zoom / GridSize)
	if factor > gridSnap {
		return factor - factor%gridSnap
	}
	if factor < 1 {
		return 1
	}
	return factor
}

// UpdateGridStep recomputes the grid step for zoom and reports whether it
// changed. Callers regenerate grid geometry only on a change.
func (p *Policy) UpdateGridStep(zoom float32) (step int, changed bool) {
	step = GridStep(zoom)
	if step == p.gridStep {
		return step, false
	}
	p.gridStep = step
	return step, true
}

// GridStepValue returns the current grid step, 0 before the first update.
func (p *Policy) GridStepValue() int {
	return p.gridStep
}

// Matrix returns the perspective projection for a viewport of the given
// pixel size using the selected near plane.
func (p *Policy) Matrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.DegToRad(FieldOfView), aspect, p.near, Far)
}
