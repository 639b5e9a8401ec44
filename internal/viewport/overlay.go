package viewport

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/viewport/camera"
	"github.com/Faultbox/meshview/pkg/math"
)

// Info panel layout.
const (
	infoMargin     = 8
	infoMaxWidth   = 300
	infoWidthRatio = 0.7
	infoLabelRatio = 0.6
)

type axisLabel struct {
	text  string
	pos   math.Vec3
	color render.Color
}

// axisLabels sit just past the indicator axis tips.
var axisLabels = [3]axisLabel{
	{"x", math.Vec3{X: 0.7, Y: -0.5, Z: -0.55}, render.Red},
	{"y", math.Vec3{X: -0.5, Y: 0.7, Z: -0.55}, render.Green},
	{"z", math.Vec3{X: -0.5, Y: -0.5, Z: 0.7}, render.Blue},
}

// InfoRows returns the rows of the info panel: the scene rows, the camera
// angles when enabled, and the grid step while the grid is shown.
func (c *Controller) InfoRows() []InfoRow {
	rows := append([]InfoRow(nil), c.scene.Info()...)
	if c.opts.CameraInfo {
		rows = append(rows,
			InfoRow{Label: "Camera angle X:", Value: formatFloat(c.camera.AngleX)},
			InfoRow{Label: "Camera angle Y:", Value: formatFloat(c.camera.AngleY)},
		)
	}
	if c.opts.Grid {
		rows = append(rows, InfoRow{Label: "Grid step:", Value: strconv.Itoa(c.policy.GridStepValue())})
	}
	return rows
}

// infoWidth is the info panel width for the current viewport.
func (c *Controller) infoWidth() float32 {
	return min(float32(c.width)*infoWidthRatio, infoMaxWidth)
}

func (c *Controller) drawOverlay(view camera.View) {
	if c.overlay == nil {
		return
	}
	c.overlay.Begin(c.width, c.height)

	if c.opts.Info {
		lh := c.overlay.LineHeight()
		valueX := infoMargin + c.infoWidth()*infoLabelRatio
		for i, row := range c.InfoRows() {
			y := infoMargin + float32(i)*lh
			c.overlay.DrawText(infoMargin, y, row.Label, c.opts.Text)
			c.overlay.DrawText(valueX, y, row.Value, c.opts.Text)
		}
	}

	for _, l := range axisLabels {
		p := view.ScreenCoords(l.pos, camera.IndicatorBox)
		c.overlay.DrawText(p.X, float32(c.height)-p.Y, l.text, l.color)
	}

	c.overlay.End()
}

func formatFloat(v float32) string {
	return fmt.Sprintf("%.1f", v)
}
