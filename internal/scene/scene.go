// Package scene is a small registry of box objects that the viewport can
// draw, pick and select. Every object has a picking id equal to its
// position in the registry plus one; id 0 is the background.
package scene

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/viewport"
	"github.com/Faultbox/meshview/internal/viewport/picking"
	"github.com/Faultbox/meshview/pkg/math"
)

// ActiveColor is the color of selected objects.
var ActiveColor = render.Color{R: 1, G: 0.55, B: 0}

const stride = floatsPerVertex * render.FloatSize

// Box describes one object.
type Box struct {
	Name   string
	Center math.Vec3
	Size   math.Vec3
	Color  render.Color
}

// Object is a registered box with its GPU geometry.
type Object struct {
	ID     int
	Box    Box
	Bounds Bounds
	Active bool

	buf   render.Buffer
	count int32
}

// Registry holds the scene objects and their selection state.
type Registry struct {
	dev     render.Device
	log     *zap.Logger
	objects []*Object
}

var _ viewport.Scene = (*Registry)(nil)

// New creates an empty registry.
func New(dev render.Device, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{dev: dev, log: log}
}

// Add uploads a box and registers it under the next picking id.
func (r *Registry) Add(b Box) *Object {
	vs := BoxVertices(b.Center, b.Size)
	obj := &Object{
		ID:     len(r.objects) + 1,
		Box:    b,
		Bounds: BoxBounds(b.Center, b.Size),
		buf:    r.dev.NewBuffer(),
		count:  int32(len(vs)),
	}
	obj.buf.Upload(flatten(vs))
	r.objects = append(r.objects, obj)

	r.log.Debug("object added",
		zap.Int("id", obj.ID),
		zap.String("name", b.Name),
	)
	return obj
}

// Objects returns the registered objects in id order.
func (r *Registry) Objects() []*Object {
	return r.objects
}

// Object returns the object with the picking id, or nil.
func (r *Registry) Object(id int) *Object {
	if id < 1 || id > len(r.objects) {
		return nil
	}
	return r.objects[id-1]
}

// DrawAll draws every object shaded, selected ones in ActiveColor.
func (r *Registry) DrawAll(prog render.Program) {
	prog.SetBool(render.UniformDifferHue, true)
	for _, obj := range r.objects {
		obj.buf.Bind()
		prog.EnableAttribute(render.AttribPosition, 3, stride, 0)
		prog.EnableAttribute(render.AttribNormal, 3, stride, 3*render.FloatSize)

		c := obj.Box.Color
		if obj.Active {
			c = ActiveColor
		}
		prog.SetVec3(render.UniformColor, c.Vec3())
		r.dev.Draw(render.Triangles, 0, obj.count)
	}
}

// DrawPicking draws every object in the flat color of its id.
func (r *Registry) DrawPicking(prog render.Program) {
	for _, obj := range r.objects {
		obj.buf.Bind()
		prog.EnableAttribute(render.AttribPosition, 3, stride, 0)
		prog.SetVec3(render.UniformColor, picking.Color(obj.ID).Vec3())
		r.dev.Draw(render.Triangles, 0, obj.count)
	}
}

// MaxDiameter returns the diagonal of the bounds of all objects.
func (r *Registry) MaxDiameter() float32 {
	if len(r.objects) == 0 {
		return 0
	}
	b := r.objects[0].Bounds
	for _, obj := range r.objects[1:] {
		b = b.Union(obj.Bounds)
	}
	return b.Diameter()
}

// SetActiveByIndex selects the object with the picking id. Ids that match
// no object are ignored.
func (r *Registry) SetActiveByIndex(id int) {
	obj := r.Object(id)
	if obj == nil {
		return
	}
	obj.Active = true
	r.log.Debug("object selected", zap.Int("id", id), zap.String("name", obj.Box.Name))
}

// SetAllInactive clears the selection.
func (r *Registry) SetAllInactive() {
	for _, obj := range r.objects {
		obj.Active = false
	}
}

// Selected returns the ids of the selected objects in order.
func (r *Registry) Selected() []int {
	var ids []int
	for _, obj := range r.objects {
		if obj.Active {
			ids = append(ids, obj.ID)
		}
	}
	return ids
}

// Info returns the object count, triangle count and selected names.
func (r *Registry) Info() []viewport.InfoRow {
	var tris int32
	var names []string
	for _, obj := range r.objects {
		tris += obj.count / 3
		if obj.Active {
			names = append(names, obj.Box.Name)
		}
	}

	selected := "none"
	if len(names) > 0 {
		selected = strings.Join(names, ", ")
	}
	return []viewport.InfoRow{
		{Label: "Objects:", Value: strconv.Itoa(len(r.objects))},
		{Label: "Triangles:", Value: strconv.Itoa(int(tris))},
		{Label: "Selected:", Value: selected},
	}
}

// Close releases the object buffers.
func (r *Registry) Close() {
	for _, obj := range r.objects {
		obj.buf.Delete()
	}
	r.objects = nil
}
