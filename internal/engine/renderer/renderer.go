// Package renderer provides the OpenGL implementation of render.Device.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/framebuffer"
	"github.com/Faultbox/meshview/internal/engine/render"
)

// Renderer is a GL device. All vertex buffers are drawn through one shared
// vertex array object, which core profiles require to be bound.
type Renderer struct {
	log *zap.Logger
	vao uint32
}

var _ render.Device = (*Renderer)(nil)

// New initializes OpenGL and creates the renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{log: log}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return r, nil
}

// Close releases the vertex array.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// Viewport sets the GL viewport in device pixels.
func (r *Renderer) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Clear clears color and depth with the given color.
func (r *Renderer) Clear(c render.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest toggles depth testing.
func (r *Renderer) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// NewBuffer allocates an empty vertex buffer.
func (r *Renderer) NewBuffer() render.Buffer {
	b := &buffer{}
	gl.GenBuffers(1, &b.vbo)
	return b
}

// Draw issues a non-indexed draw call over the bound buffer.
func (r *Renderer) Draw(p render.Primitive, first, count int32) {
	gl.BindVertexArray(r.vao)
	switch p {
	case render.Triangles:
		gl.DrawArrays(gl.TRIANGLES, first, count)
	default:
		gl.DrawArrays(gl.LINES, first, count)
	}
}

// NewTarget creates an off-screen framebuffer of the given size.
func (r *Renderer) NewTarget(width, height int) (render.Target, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	r.log.Debug("off-screen target created",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return fb, nil
}

// buffer is a GL array buffer.
type buffer struct {
	vbo uint32
}

func (b *buffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
}

func (b *buffer) Upload(vertices []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*render.FloatSize, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
}

func (b *buffer) Delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
