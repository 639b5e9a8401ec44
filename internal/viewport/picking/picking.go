// Package picking resolves pointer clicks to scene objects by rendering an
// off-screen pass where every object has a unique flat color and reading
// back the pixel under the pointer.
package picking

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/pkg/math"
)

// ErrNoTarget is returned when the off-screen target cannot be created.
var ErrNoTarget = errors.New("picking: off-screen target unavailable")

// Request is a pending pick in device pixels, top-left origin.
type Request struct {
	X, Y     int
	Additive bool
}

// Mode says how a picked id combines with the current selection.
type Mode int

const (
	// Replace clears the selection before activating the id.
	Replace Mode = iota
	// Add activates the id and keeps the rest of the selection.
	Add
)

func (m Mode) String() string {
	if m == Add {
		return "add"
	}
	return "replace"
}

// Delta is the selection change produced by one pick.
type Delta struct {
	ID   int
	Mode Mode
}

// Registry is the selection state a Delta is applied to.
type Registry interface {
	SetActiveByIndex(id int)
	SetAllInactive()
}

// Apply mutates the registry. NoHit is passed through; the registry treats
// unknown ids as nothing, so a replace pick on the background clears.
func (d Delta) Apply(reg Registry) {
	if d.Mode == Replace {
		reg.SetAllInactive()
	}
	reg.SetActiveByIndex(d.ID)
}

// DrawFunc renders every pickable object in its flat picking color with
// the given bound program.
type DrawFunc func(prog render.Program)

// Engine runs picking passes.
type Engine struct {
	dev     render.Device
	prog    render.Program
	log     *zap.Logger
	capture *debug.Capture
}

// New creates an engine drawing with the picking program prog.
func New(dev render.Device, prog render.Program, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{dev: dev, prog: prog, log: log}
}

// SetCapture enables writing every picking image through c. nil disables.
func (e *Engine) SetCapture(c *debug.Capture) {
	e.capture = c
}

// Resolve renders the picking pass at width x height with mvp, reads the
// pixel under req and returns the selection delta. The off-screen target
// lives only for this call.
func (e *Engine) Resolve(req Request, width, height int, mvp math.Mat4, draw DrawFunc) (Delta, error) {
	target, err := e.dev.NewTarget(width, height)
	if err != nil {
		return Delta{}, fmt.Errorf("%w: %v", ErrNoTarget, err)
	}
	defer target.Destroy()

	target.Bind()
	e.dev.Viewport(0, 0, int32(width), int32(height))
	e.dev.SetDepthTest(true)
	e.dev.Clear(render.White)

	e.prog.Bind()
	e.prog.SetMat4(render.UniformMVP, mvp)
	draw(e.prog)

	r, g, b := target.ReadPixel(req.X, req.Y)
	if e.capture != nil {
		e.dump(target)
	}

	e.prog.Release()
	target.Release()

	d := Delta{ID: pixelID(r, g, b), Mode: Replace}
	if req.Additive {
		d.Mode = Add
	}
	e.log.Debug("pick resolved",
		zap.Int("x", req.X),
		zap.Int("y", req.Y),
		zap.Int("id", d.ID),
		zap.Stringer("mode", d.Mode),
	)
	return d, nil
}

func (e *Engine) dump(target render.Target) {
	w, h := target.Size()
	name, err := e.capture.WritePixels(target.ReadPixels(), w, h)
	if err != nil {
		e.log.Warn("failed to write picking image", zap.Error(err))
		return
	}
	e.log.Debug("picking image written", zap.String("path", name))
}
