package scene

import (
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/pkg/math"
)

// DemoBoxes is the scene shown when no objects are configured: a row of
// blocks standing on the ground plane (Z up).
func DemoBoxes() []Box {
	return []Box{
		{Name: "base", Center: math.Vec3{Z: 0.5}, Size: math.Vec3{X: 40, Y: 40, Z: 1}, Color: render.RGB(170, 170, 180)},
		{Name: "tower", Center: math.Vec3{X: -10, Y: -10, Z: 11}, Size: math.Vec3{X: 6, Y: 6, Z: 20}, Color: render.RGB(70, 130, 180)},
		{Name: "block", Center: math.Vec3{X: 8, Y: -6, Z: 4}, Size: math.Vec3{X: 10, Y: 8, Z: 6}, Color: render.RGB(60, 179, 113)},
		{Name: "slab", Center: math.Vec3{X: 6, Y: 10, Z: 2}, Size: math.Vec3{X: 14, Y: 6, Z: 2}, Color: render.RGB(205, 92, 92)},
		{Name: "cube", Center: math.Vec3{X: -8, Y: 9, Z: 3.5}, Size: math.Vec3{X: 5, Y: 5, Z: 5}, Color: render.RGB(218, 165, 32)},
	}
}

// AddAll registers every box and returns the registry.
func (r *Registry) AddAll(boxes []Box) *Registry {
	for _, b := range boxes {
		r.Add(b)
	}
	return r
}
