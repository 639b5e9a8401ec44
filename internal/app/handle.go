package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/internal/scene"
	"github.com/Faultbox/meshview/internal/viewport"
	"github.com/Faultbox/meshview/pkg/math"
)

// defaultBoxColor is used for configured boxes without a color.
var defaultBoxColor = render.RGB(180, 180, 190)

// Options derives the start-up display options from the config.
func Options(cfg *config.Config) viewport.Options {
	opts := viewport.DefaultOptions()
	opts.Axes = cfg.Display.Axes
	opts.Grid = cfg.Display.Grid
	opts.Info = cfg.Display.Info
	opts.CameraInfo = cfg.Logging.Level == "debug"
	if c, ok := parseColor(cfg.Display.Background); ok {
		opts.Background = c
	}
	if c, ok := parseColor(cfg.Display.Text); ok {
		opts.Text = c
	}
	return opts
}

// Boxes returns the configured scene objects, or the demo scene when none
// are configured.
func Boxes(cfg *config.Config) []scene.Box {
	if len(cfg.Scene.Boxes) == 0 {
		return scene.DemoBoxes()
	}
	boxes := make([]scene.Box, 0, len(cfg.Scene.Boxes))
	for _, b := range cfg.Scene.Boxes {
		c, ok := parseColor(b.Color)
		if !ok {
			c = defaultBoxColor
		}
		boxes = append(boxes, scene.Box{
			Name:   b.Name,
			Center: math.Vec3{X: b.Center[0], Y: b.Center[1], Z: b.Center[2]},
			Size:   math.Vec3{X: b.Size[0], Y: b.Size[1], Z: b.Size[2]},
			Color:  c,
		})
	}
	return boxes
}

func parseColor(s string) (render.Color, bool) {
	r, g, b, err := config.ParseColor(s)
	if err != nil {
		return render.Color{}, false
	}
	return render.RGB(r, g, b), true
}

func buttonFor(b uint8) (viewport.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return viewport.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return viewport.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return viewport.ButtonRight, true
	}
	return 0, false
}

// handle routes one input event to the controller.
func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		scale := a.scale()
		a.ctl.Resize(ev.Width, ev.Height, scale)
		if a.overlay != nil {
			a.overlay.SetScale(scale)
		}

	case input.EventExpose:
		a.ctl.RequestRedraw()

	case input.EventMouseDown, input.EventMouseUp, input.EventMouseMove:
		a.handlePointer(ev)

	case input.EventMouseWheel:
		a.ctl.Wheel(ev.Wheel)

	case input.EventKeyDown:
		a.perform(input.ActionFor(ev, a.bindings))
	}
}

func (a *App) handlePointer(ev input.Event) {
	p := viewport.Pointer{X: ev.MouseX, Y: ev.MouseY, Shift: ev.Shift}
	if ev.Type == input.EventMouseMove {
		a.ctl.PointerMove(p)
		return
	}

	btn, ok := buttonFor(ev.Button)
	if !ok {
		return
	}
	p.Button = btn
	if ev.Type == input.EventMouseDown {
		a.ctl.PointerPress(p)
	} else {
		a.ctl.PointerRelease(p)
	}
}

// perform runs a key-bound action.
func (a *App) perform(act input.Action) {
	if act == input.ActionNone {
		return
	}
	a.log.Debug("action", zap.Stringer("action", act))

	switch act {
	case input.ActionQuit:
		a.running = false
	case input.ActionFrontView:
		a.ctl.SetFrontView()
	case input.ActionBackView:
		a.ctl.SetBackView()
	case input.ActionLeftView:
		a.ctl.SetLeftView()
	case input.ActionRightView:
		a.ctl.SetRightView()
	case input.ActionTopView:
		a.ctl.SetTopView()
	case input.ActionBottomView:
		a.ctl.SetBottomView()
	case input.ActionFit:
		a.ctl.RecalculatePosition()
	case input.ActionCenter:
		a.ctl.CenterPosition()
	case input.ActionToggleAxes:
		a.ctl.ToggleAxes()
	case input.ActionToggleGrid:
		a.ctl.ToggleGrid()
	case input.ActionToggleInfo:
		a.ctl.ToggleInfo()
	case input.ActionToggleInverted:
		inverted := a.ctl.ToggleInvertedControls()
		a.log.Info("inverted controls", zap.Bool("on", inverted))
	case input.ActionToggleBackground:
		a.toggleBackground()
	case input.ActionTogglePickDump:
		a.togglePickDump()
	case input.ActionToggleDebug:
		level := logger.ToggleDebug()
		a.ctl.SetCameraInfo(level == "debug")
		a.log.Info("log level changed", zap.String("level", level))
	}
}

// toggleBackground swaps between the light and dark color schemes for
// this session only.
func (a *App) toggleBackground() {
	if a.ctl.Options().Background == render.White {
		a.ctl.SetBackgroundColor(render.Black)
		a.ctl.SetTextColor(render.White)
	} else {
		a.ctl.SetBackgroundColor(render.White)
		a.ctl.SetTextColor(render.Black)
	}
}

// togglePickDump starts or stops writing picking images.
func (a *App) togglePickDump() {
	if a.capture == nil {
		a.capture = debug.NewCapture(defaultDumpDir(), capturePrefix)
	}
	a.dumping = !a.dumping
	if a.dumping {
		a.ctl.SetCapture(a.capture)
		a.log.Info("pick capture on", zap.String("dir", a.capture.Dir()))
	} else {
		a.ctl.SetCapture(nil)
		a.log.Info("pick capture off")
	}
}
