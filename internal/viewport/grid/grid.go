// Package grid builds the reference grid drawn in the ground plane.
package grid

import (
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/viewport/projection"
)

// Size is the number of cells on each side of the origin. The line count
// is fixed by it; only the spacing changes with the step.
const Size = projection.GridSize

// componentsPerVertex is the vertex layout: x, y in the ground plane.
const componentsPerVertex = 2

// VertexCount is the number of line vertices in every grid.
const VertexCount = Size*8 + 4

// Vertices returns the grid as line segments spanning ±Size*step on both
// axes: first the lines parallel to X, then the lines parallel to Y.
func Vertices(step int) []float32 {
	s := float32(step)
	extent := float32(Size) * s
	lines := 2*Size + 1

	v := make([]float32, 0, VertexCount*componentsPerVertex)
	for i := 0; i < lines; i++ {
		y := float32(i-Size) * s
		v = append(v, -extent, y, extent, y)
	}
	for i := 0; i < lines; i++ {
		x := float32(i-Size) * s
		v = append(v, x, -extent, x, extent)
	}
	return v
}

// Mesh is the grid geometry in a GPU buffer it owns.
type Mesh struct {
	buf  render.Buffer
	step int
}

// NewMesh allocates the grid buffer. Nothing is uploaded until Regenerate.
func NewMesh(dev render.Device) *Mesh {
	return &Mesh{buf: dev.NewBuffer()}
}

// Regenerate reallocates the buffer with geometry for step.
func (m *Mesh) Regenerate(step int) {
	m.buf.Upload(Vertices(step))
	m.step = step
}

// Step returns the spacing of the uploaded geometry, 0 if none.
func (m *Mesh) Step() int {
	return m.step
}

// Draw draws the grid lines with the bound program in color c.
func (m *Mesh) Draw(dev render.Device, prog render.Program, c render.Color) {
	if m.step == 0 {
		return
	}
	m.buf.Bind()
	prog.EnableAttribute(render.AttribPosition, componentsPerVertex, componentsPerVertex*render.FloatSize, 0)
	prog.DisableAttribute(render.AttribNormal)
	prog.SetVec3(render.UniformColor, c.Vec3())
	dev.Draw(render.Lines, 0, VertexCount)
}

// Delete releases the buffer.
func (m *Mesh) Delete() {
	if m.buf != nil {
		m.buf.Delete()
		m.buf = nil
	}
	m.step = 0
}
