package viewport

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/viewport/camera"
)

// fitFactor is the zoom per unit of scene diameter when fitting.
const fitFactor = 2.5

// SetView orients the camera to a preset.
func (c *Controller) SetView(p camera.Preset) {
	c.camera.ApplyPreset(p)
	c.redraw = true
}

// SetFrontView, SetBackView, SetLeftView, SetRightView, SetTopView and
// SetBottomView are the preset shortcuts.
func (c *Controller) SetFrontView()  { c.SetView(camera.Front) }
func (c *Controller) SetBackView()   { c.SetView(camera.Back) }
func (c *Controller) SetLeftView()   { c.SetView(camera.Left) }
func (c *Controller) SetRightView()  { c.SetView(camera.Right) }
func (c *Controller) SetTopView()    { c.SetView(camera.Top) }
func (c *Controller) SetBottomView() { c.SetView(camera.Bottom) }

// RecalculatePosition frames the scene: default angles, zoom proportional
// to the scene diameter, and a near plane and grid for the new zoom.
func (c *Controller) RecalculatePosition() {
	d := c.scene.MaxDiameter()

	c.camera.ResetOrientation()
	if d > 0 {
		c.camera.Zoom = min(fitFactor*d, camera.MaxZoom)
	} else {
		c.camera.Zoom = camera.DefaultZoom
	}

	c.policy.RecomputeNear(d, c.camera.Zoom)
	c.updateGridStep()
	c.updateProjection()
	c.redraw = true

	c.log.Debug("camera fitted to scene",
		zap.Float32("diameter", d),
		zap.Float32("zoom", c.camera.Zoom),
		zap.Float32("near", c.policy.Near()),
	)
}

// CenterPosition removes the pan offset.
func (c *Controller) CenterPosition() {
	c.camera.CenterPan()
	c.redraw = true
}

// ToggleAxes flips world axes visibility and returns the new value.
func (c *Controller) ToggleAxes() bool {
	c.opts.Axes = !c.opts.Axes
	c.redraw = true
	return c.opts.Axes
}

// ToggleGrid flips grid visibility and returns the new value.
func (c *Controller) ToggleGrid() bool {
	c.opts.Grid = !c.opts.Grid
	c.redraw = true
	return c.opts.Grid
}

// ToggleInfo flips the info panel and returns the new value.
func (c *Controller) ToggleInfo() bool {
	c.opts.Info = !c.opts.Info
	c.redraw = true
	return c.opts.Info
}

// ToggleInvertedControls flips the drag and pan directions.
func (c *Controller) ToggleInvertedControls() bool {
	c.camera.InvertedControls = !c.camera.InvertedControls
	return c.camera.InvertedControls
}

// SetBackgroundColor sets the clear color. A white background draws the
// grid gray, anything else draws it white.
func (c *Controller) SetBackgroundColor(col render.Color) {
	c.opts.Background = col
	c.redraw = true
}

// SetTextColor sets the overlay text color.
func (c *Controller) SetTextColor(col render.Color) {
	c.opts.Text = col
	c.redraw = true
}

// SetCameraInfo shows or hides the camera angle rows of the info panel.
func (c *Controller) SetCameraInfo(on bool) {
	c.opts.CameraInfo = on
	c.redraw = true
}
