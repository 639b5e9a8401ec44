package viewport

import (
	"time"

	"github.com/Faultbox/meshview/internal/viewport/axes"
	"github.com/Faultbox/meshview/internal/viewport/picking"
)

// PointerPress starts a drag or records a pick. The right button requests
// a pick at the pointer, additive with shift. Any press starts the redraw
// timer until every button is released.
func (c *Controller) PointerPress(p Pointer) {
	c.held |= p.Button
	c.lastX, c.lastY = p.X, p.Y

	if p.Button == ButtonRight {
		// last request wins
		c.pending = &picking.Request{
			X:        c.toDevice(p.X),
			Y:        c.toDevice(p.Y),
			Additive: p.Shift,
		}
		c.redraw = true
	}
}

// PointerMove rotates with the left button and pans with the middle
// button or shift+left.
func (c *Controller) PointerMove(p Pointer) {
	dx, dy := p.X-c.lastX, p.Y-c.lastY
	c.lastX, c.lastY = p.X, p.Y
	if dx == 0 && dy == 0 {
		return
	}

	switch {
	case c.held&ButtonLeft != 0 && !p.Shift:
		c.camera.Rotate(dx, dy)
	case c.held&ButtonMiddle != 0, c.held&ButtonLeft != 0 && p.Shift:
		c.camera.Pan(dx, dy)
	default:
		return
	}
	c.redraw = true
}

// PointerRelease ends the drag of p.Button.
func (c *Controller) PointerRelease(p Pointer) {
	c.held &^= p.Button
	c.lastX, c.lastY = p.X, p.Y
}

// Wheel zooms one notch per call; delta is the host wheel delta, negative
// moving away. A step that would leave the zoom range is ignored. A redraw
// is requested either way.
func (c *Controller) Wheel(delta int) {
	if c.camera.ZoomStep(delta, c.scale) {
		c.policy.UpdateNear(c.camera.Zoom)
		c.updateGridStep()
		c.updateProjection()
	}
	c.redraw = true
}

// Resize sets the viewport size from the host's logical size and display
// scale.
func (c *Controller) Resize(width, height int, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	if c.ready && (scale > 1) != (c.scale > 1) {
		c.axes.Delete()
		c.axes = axes.New(c.dev, scale > 1)
	}
	c.scale = scale
	c.width = max(1, int(float32(width)*scale))
	c.height = max(1, int(float32(height)*scale))
	c.updateProjection()
	c.redraw = true
}

// RedrawTimer returns the redraw period and whether the timer runs, which
// it does while any pointer button is held.
func (c *Controller) RedrawTimer() (time.Duration, bool) {
	return RedrawInterval, c.held != 0
}

// Tick is the redraw timer callback.
func (c *Controller) Tick() {
	if c.held != 0 {
		c.redraw = true
	}
}

// PendingPick returns the pick request waiting for the next Paint.
func (c *Controller) PendingPick() (picking.Request, bool) {
	if c.pending == nil {
		return picking.Request{}, false
	}
	return *c.pending, true
}

func (c *Controller) toDevice(v int) int {
	return int(float32(v) * c.scale)
}
