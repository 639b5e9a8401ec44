// Package axes draws the world axes and the corner orientation indicator.
package axes

import "github.com/Faultbox/meshview/internal/engine/render"

// Size is the half length of the world axes.
const Size float32 = 10000

const (
	// stride is position + normal, the viewport program layout.
	componentsPerVertex = 6
	stride              = componentsPerVertex * render.FloatSize

	// indicatorFirst is the first vertex of the corner axes.
	indicatorFirst = 12
)

// Indicator axis tip values.
const (
	IndicatorTip            float32 = 0.5
	HighDensityIndicatorTip float32 = 1.5
)

var colors = [3]render.Color{render.Red, render.Green, render.Blue}

// Vertices returns the axes geometry: twelve world-axis vertices (two
// segments per axis meeting at the origin) followed by six indicator
// vertices (one segment per axis from the gizmo corner to tip).
func Vertices(tip float32) []float32 {
	const c = -0.5
	pts := [][3]float32{
		{Size, 0, 0}, {0, 0, 0}, {0, 0, 0}, {-Size, 0, 0},
		{0, Size, 0}, {0, 0, 0}, {0, 0, 0}, {0, -Size, 0},
		{0, 0, Size}, {0, 0, 0}, {0, 0, 0}, {0, 0, -Size},

		{tip, c, c}, {c, c, c},
		{c, c, c}, {c, tip, c},
		{c, c, tip}, {c, c, c},
	}

	v := make([]float32, 0, len(pts)*componentsPerVertex)
	for _, p := range pts {
		v = append(v, p[0], p[1], p[2], 1, 1, 1)
	}
	return v
}

// Geometry is the axes vertex buffer.
type Geometry struct {
	buf render.Buffer
}

// New uploads the axes geometry. highDensity lengthens the indicator axes.
func New(dev render.Device, highDensity bool) *Geometry {
	tip := IndicatorTip
	if highDensity {
		tip = HighDensityIndicatorTip
	}
	g := &Geometry{buf: dev.NewBuffer()}
	g.buf.Upload(Vertices(tip))
	return g
}

func (g *Geometry) bind(prog render.Program) {
	g.buf.Bind()
	prog.EnableAttribute(render.AttribPosition, 3, stride, 0)
	prog.EnableAttribute(render.AttribNormal, 3, stride, 3*render.FloatSize)
}

// Draw draws the world axes in red, green and blue.
func (g *Geometry) Draw(dev render.Device, prog render.Program) {
	g.bind(prog)
	for i, c := range colors {
		prog.SetVec3(render.UniformColor, c.Vec3())
		dev.Draw(render.Lines, int32(i*4), 4)
	}
}

// DrawIndicator draws the corner axes. The caller sets the corner viewport
// and the indicator matrix.
func (g *Geometry) DrawIndicator(dev render.Device, prog render.Program) {
	g.bind(prog)
	for i, c := range colors {
		prog.SetVec3(render.UniformColor, c.Vec3())
		dev.Draw(render.Lines, int32(indicatorFirst+i*2), 2)
	}
}

// Delete releases the buffer.
func (g *Geometry) Delete() {
	if g.buf != nil {
		g.buf.Delete()
		g.buf = nil
	}
}
