// Package render defines the rendering backend capabilities the viewport needs.
// The OpenGL implementations live in the shader, framebuffer and renderer packages.
package render

import "github.com/Faultbox/meshview/pkg/math"

// Uniform and attribute names shared by the viewport and picking programs.
const (
	UniformMVP       = "mvp_matrix"
	UniformColor     = "color"
	UniformDifferHue = "differ_hue"

	AttribPosition = "a_position"
	AttribNormal   = "a_normal"
)

// FloatSize is the byte size of a float32 vertex component.
const FloatSize = 4

// Primitive selects how vertices are assembled by a draw call.
type Primitive int

const (
	Lines Primitive = iota
	Triangles
)

// Color is an RGB color with float components (0.0 to 1.0).
type Color struct {
	R, G, B float32
}

// Predefined colors.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
	Gray  = Color{0.5, 0.5, 0.5}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
	}
}

// Vec3 returns the color as a vector, the form uniforms take it in.
func (c Color) Vec3() math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Program is a linked shader program with name-addressed inputs.
type Program interface {
	Bind()
	Release()
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetBool(name string, v bool)
	// EnableAttribute points the named attribute at the bound buffer.
	// size is in components; stride and offset are in bytes.
	EnableAttribute(name string, size, stride, offset int32)
	DisableAttribute(name string)
}

// Buffer is a vertex buffer owned by exactly one geometry object.
type Buffer interface {
	Bind()
	// Upload reallocates the buffer storage with the given vertices.
	Upload(vertices []float32)
	Delete()
}

// Target is an off-screen color+depth render target.
type Target interface {
	Bind()
	Release()
	// ReadPixel returns the color at (x, y) in top-left origin pixel coordinates.
	ReadPixel(x, y int) (r, g, b uint8)
	// ReadPixels returns the whole image as RGBA rows, bottom row first.
	ReadPixels() []byte
	Size() (width, height int)
	Destroy()
}

// Device is the rendering context the viewport draws through.
type Device interface {
	Viewport(x, y, width, height int32)
	Clear(c Color)
	SetDepthTest(enabled bool)
	NewBuffer() Buffer
	Draw(p Primitive, first, count int32)
	// NewTarget creates an off-screen target sized to the given pixels.
	NewTarget(width, height int) (Target, error)
}
