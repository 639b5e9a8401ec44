package axes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/engine/render/rendertest"
)

func vertex(v []float32, i int) [3]float32 {
	return [3]float32{v[i*6], v[i*6+1], v[i*6+2]}
}

func TestVertices(t *testing.T) {
	v := Vertices(IndicatorTip)
	require.Len(t, v, 108)

	assert.Equal(t, [3]float32{Size, 0, 0}, vertex(v, 0))
	assert.Equal(t, [3]float32{-Size, 0, 0}, vertex(v, 3))
	assert.Equal(t, [3]float32{0, Size, 0}, vertex(v, 4))
	assert.Equal(t, [3]float32{0, 0, -Size}, vertex(v, 11))

	assert.Equal(t, [3]float32{0.5, -0.5, -0.5}, vertex(v, 12))
	assert.Equal(t, [3]float32{-0.5, 0.5, -0.5}, vertex(v, 15))
	assert.Equal(t, [3]float32{-0.5, -0.5, 0.5}, vertex(v, 16))

	// normals are constant
	for i := 0; i < 18; i++ {
		assert.Equal(t, []float32{1, 1, 1}, v[i*6+3:i*6+6])
	}
}

func TestHighDensityTip(t *testing.T) {
	dev := rendertest.NewDevice()
	New(dev, true)
	require.Len(t, dev.Buffers, 1)
	assert.Equal(t, [3]float32{1.5, -0.5, -0.5}, vertex(dev.Buffers[0].Data, 12))
}

func TestDraw(t *testing.T) {
	dev := rendertest.NewDevice()
	prog := rendertest.NewProgram("viewport")
	g := New(dev, false)

	dev.Reset()
	g.Draw(dev, prog)
	assert.Equal(t, []string{
		"bind buffer 1",
		"draw lines 0 4",
		"draw lines 4 4",
		"draw lines 8 4",
	}, dev.Log)
	assert.Equal(t, [3]int32{3, 24, 0}, prog.Attribs[render.AttribPosition])
	assert.Equal(t, [3]int32{3, 24, 12}, prog.Attribs[render.AttribNormal])

	dev.Reset()
	g.DrawIndicator(dev, prog)
	assert.Equal(t, []string{
		"bind buffer 1",
		"draw lines 12 2",
		"draw lines 14 2",
		"draw lines 16 2",
	}, dev.Log)
	assert.Equal(t, render.Blue.Vec3(), prog.Vec3[render.UniformColor])

	g.Delete()
	assert.True(t, dev.Buffers[0].Deleted)
}
