// Package rendertest provides recording render.Device, render.Program and
// render.Target fakes for tests that run without a GL context.
package rendertest

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/pkg/math"
)

// ErrTarget is returned by NewTarget when Device.FailTargets is set.
var ErrTarget = errors.New("rendertest: target creation failed")

// Device records every call as a line in Log.
type Device struct {
	Log     []string
	Buffers []*Buffer
	Targets []*Target

	// Pixel is the color every new target reports at every coordinate.
	Pixel [3]uint8
	// FailTargets makes NewTarget fail.
	FailTargets bool
}

var _ render.Device = (*Device)(nil)

// NewDevice returns a device whose targets read back white.
func NewDevice() *Device {
	return &Device{Pixel: [3]uint8{255, 255, 255}}
}

func (d *Device) logf(format string, args ...any) {
	d.Log = append(d.Log, fmt.Sprintf(format, args...))
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.logf("viewport %d %d %d %d", x, y, width, height)
}

func (d *Device) Clear(c render.Color) {
	d.logf("clear %.2f %.2f %.2f", c.R, c.G, c.B)
}

func (d *Device) SetDepthTest(enabled bool) {
	d.logf("depth %t", enabled)
}

func (d *Device) NewBuffer() render.Buffer {
	b := &Buffer{dev: d, id: len(d.Buffers) + 1}
	d.Buffers = append(d.Buffers, b)
	return b
}

func (d *Device) Draw(p render.Primitive, first, count int32) {
	name := "lines"
	if p == render.Triangles {
		name = "triangles"
	}
	d.logf("draw %s %d %d", name, first, count)
}

func (d *Device) NewTarget(width, height int) (render.Target, error) {
	if d.FailTargets {
		return nil, ErrTarget
	}
	t := &Target{dev: d, Width: width, Height: height, Pixel: d.Pixel}
	d.Targets = append(d.Targets, t)
	d.logf("target %dx%d", width, height)
	return t, nil
}

// Reset clears the call log.
func (d *Device) Reset() {
	d.Log = nil
}

// Buffer records uploads.
type Buffer struct {
	dev     *Device
	id      int
	Data    []float32
	Uploads int
	Deleted bool
}

func (b *Buffer) Bind() {
	b.dev.logf("bind buffer %d", b.id)
}

func (b *Buffer) Upload(vertices []float32) {
	b.Data = append([]float32(nil), vertices...)
	b.Uploads++
	b.dev.logf("upload buffer %d %d", b.id, len(vertices))
}

func (b *Buffer) Delete() {
	b.Deleted = true
	b.dev.logf("delete buffer %d", b.id)
}

// Target reports a fixed color and records reads.
type Target struct {
	dev           *Device
	Width, Height int
	Pixel         [3]uint8
	Reads         [][2]int
	Bound         bool
	Destroyed     bool
}

func (t *Target) Bind() {
	t.Bound = true
	t.dev.logf("bind target")
}

func (t *Target) Release() {
	t.Bound = false
	t.dev.logf("release target")
}

func (t *Target) ReadPixel(x, y int) (r, g, b uint8) {
	t.Reads = append(t.Reads, [2]int{x, y})
	return t.Pixel[0], t.Pixel[1], t.Pixel[2]
}

func (t *Target) ReadPixels() []byte {
	px := make([]byte, t.Width*t.Height*4)
	for i := 0; i < len(px); i += 4 {
		px[i], px[i+1], px[i+2], px[i+3] = t.Pixel[0], t.Pixel[1], t.Pixel[2], 255
	}
	return px
}

func (t *Target) Size() (width, height int) {
	return t.Width, t.Height
}

func (t *Target) Destroy() {
	t.Destroyed = true
	t.dev.logf("destroy target")
}

// Program records uniform values and attribute bindings.
type Program struct {
	Name    string
	Log     []string
	Mat4    map[string]math.Mat4
	Vec3    map[string]math.Vec3
	Bool    map[string]bool
	Attribs map[string][3]int32 // size, stride, offset
	IsBound bool
}

var _ render.Program = (*Program)(nil)

// NewProgram returns an empty recording program.
func NewProgram(name string) *Program {
	return &Program{
		Name:    name,
		Mat4:    make(map[string]math.Mat4),
		Vec3:    make(map[string]math.Vec3),
		Bool:    make(map[string]bool),
		Attribs: make(map[string][3]int32),
	}
}

func (p *Program) Bind() {
	p.IsBound = true
	p.Log = append(p.Log, "bind")
}

func (p *Program) Release() {
	p.IsBound = false
	p.Log = append(p.Log, "release")
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	p.Mat4[name] = m
	p.Log = append(p.Log, "mat4 "+name)
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	p.Vec3[name] = v
	p.Log = append(p.Log, fmt.Sprintf("vec3 %s %.2f %.2f %.2f", name, v.X, v.Y, v.Z))
}

func (p *Program) SetBool(name string, v bool) {
	p.Bool[name] = v
	p.Log = append(p.Log, fmt.Sprintf("bool %s %t", name, v))
}

func (p *Program) EnableAttribute(name string, size, stride, offset int32) {
	p.Attribs[name] = [3]int32{size, stride, offset}
	p.Log = append(p.Log, fmt.Sprintf("attrib %s %d %d %d", name, size, stride, offset))
}

func (p *Program) DisableAttribute(name string) {
	delete(p.Attribs, name)
	p.Log = append(p.Log, "disable "+name)
}
