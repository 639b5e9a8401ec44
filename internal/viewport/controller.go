package viewport

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/viewport/axes"
	"github.com/Faultbox/meshview/internal/viewport/camera"
	"github.com/Faultbox/meshview/internal/viewport/grid"
	"github.com/Faultbox/meshview/internal/viewport/picking"
	"github.com/Faultbox/meshview/internal/viewport/projection"
	"github.com/Faultbox/meshview/pkg/math"
)

// ProgramLoader builds the visible-pass and picking-pass programs.
type ProgramLoader func() (main, pick render.Program, err error)

// Controller owns the camera, projection policy, grid and picking engine of
// one viewport. All methods must be called from the rendering thread.
type Controller struct {
	log     *zap.Logger
	dev     render.Device
	scene   Scene
	overlay Overlay
	opts    Options

	mainProg render.Program
	picker   *picking.Engine
	capture  *debug.Capture
	grid     *grid.Mesh
	axes     *axes.Geometry

	camera     camera.State
	policy     *projection.Policy
	projection math.Mat4

	// device pixels
	width, height int
	scale         float32

	held    Button
	lastX   int
	lastY   int
	pending *picking.Request
	redraw  bool
	ready   bool
}

// New creates a controller. It draws nothing until Init succeeds.
func New(dev render.Device, scene Scene, overlay Overlay, opts Options, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		log:     log,
		dev:     dev,
		scene:   scene,
		overlay: overlay,
		opts:    opts,
		camera:  camera.NewState(),
		policy:  projection.New(),
		width:   DefaultWidth,
		height:  DefaultHeight,
		scale:   1,
	}
}

// SetCapture writes every picking image through dc. nil disables.
func (c *Controller) SetCapture(dc *debug.Capture) {
	c.capture = dc
	if c.picker != nil {
		c.picker.SetCapture(dc)
	}
}

// Init loads the programs and allocates the axes and grid geometry. A
// loader failure is returned and leaves the controller halted: Paint keeps
// returning ErrNotInitialized.
func (c *Controller) Init(load ProgramLoader) error {
	main, pick, err := load()
	if err != nil {
		c.log.Error("shader program setup failed, viewport halted", zap.Error(err))
		return fmt.Errorf("viewport programs: %w", err)
	}

	c.mainProg = main
	c.picker = picking.New(c.dev, pick, c.log.Named("picking"))
	c.picker.SetCapture(c.capture)
	c.axes = axes.New(c.dev, c.scale > 1)
	c.grid = grid.NewMesh(c.dev)

	c.policy.UpdateNear(c.camera.Zoom)
	step, _ := c.policy.UpdateGridStep(c.camera.Zoom)
	c.grid.Regenerate(step)
	c.updateProjection()

	c.ready = true
	c.redraw = true
	c.log.Info("viewport initialized",
		zap.Int("width", c.width),
		zap.Int("height", c.height),
		zap.Float32("scale", c.scale),
	)
	return nil
}

// Close releases the GPU geometry owned by the controller.
func (c *Controller) Close() {
	if c.grid != nil {
		c.grid.Delete()
	}
	if c.axes != nil {
		c.axes.Delete()
	}
	c.ready = false
}

// Paint renders one frame: the scene, the corner indicator, the grid, the
// overlay and, if one is pending, the picking pass. A failed pick is
// returned after the visible frame is complete; the request is dropped and
// no state changes.
func (c *Controller) Paint() error {
	if !c.ready {
		return ErrNotInitialized
	}
	c.redraw = false

	view := c.camera.Derive(c.projection)
	w, h := int32(c.width), int32(c.height)

	c.dev.Clear(c.opts.Background)
	c.dev.SetDepthTest(true)
	c.dev.Viewport(0, 0, w, h)

	c.mainProg.Bind()
	c.mainProg.SetBool(render.UniformDifferHue, false)
	c.mainProg.SetMat4(render.UniformMVP, view.MVP())
	if c.opts.Axes {
		c.axes.Draw(c.dev, c.mainProg)
	}
	c.scene.DrawAll(c.mainProg)

	box := camera.IndicatorBox
	c.dev.Viewport(box.X, box.Y, box.W, box.H)
	c.mainProg.SetBool(render.UniformDifferHue, false)
	c.mainProg.SetMat4(render.UniformMVP, view.IndicatorMVP())
	c.axes.DrawIndicator(c.dev, c.mainProg)

	if c.opts.Grid {
		c.dev.Viewport(0, 0, w, h)
		c.mainProg.SetMat4(render.UniformMVP, view.MVP())
		c.grid.Draw(c.dev, c.mainProg, c.gridColor())
	}

	c.mainProg.Release()
	c.dev.SetDepthTest(false)
	c.dev.Viewport(0, 0, w, h)

	c.drawOverlay(view)

	if c.pending == nil {
		return nil
	}
	req := *c.pending
	c.pending = nil

	delta, err := c.picker.Resolve(req, c.width, c.height, view.MVP(), c.scene.DrawPicking)
	c.dev.Viewport(0, 0, w, h)
	if err != nil {
		c.log.Error("pick failed", zap.Error(err))
		return fmt.Errorf("pick at (%d, %d): %w", req.X, req.Y, err)
	}
	delta.Apply(c.scene)
	c.redraw = true
	return nil
}

// NeedsRedraw reports whether state changed since the last Paint.
func (c *Controller) NeedsRedraw() bool {
	return c.redraw
}

// RequestRedraw marks the viewport dirty.
func (c *Controller) RequestRedraw() {
	c.redraw = true
}

// Camera returns a copy of the camera state.
func (c *Controller) Camera() camera.State {
	return c.camera
}

// Options returns the current display options.
func (c *Controller) Options() Options {
	return c.opts
}

// GridStep returns the current grid spacing.
func (c *Controller) GridStep() int {
	return c.policy.GridStepValue()
}

// NearPlane returns the selected perspective near plane.
func (c *Controller) NearPlane() float32 {
	return c.policy.Near()
}

// Size returns the viewport size in device pixels.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

func (c *Controller) gridColor() render.Color {
	if c.opts.Background == render.White {
		return render.Gray
	}
	return render.White
}

func (c *Controller) updateProjection() {
	c.projection = c.policy.Matrix(c.width, c.height)
}

// updateGridStep regenerates the grid only when the step changes.
func (c *Controller) updateGridStep() {
	step, changed := c.policy.UpdateGridStep(c.camera.Zoom)
	if !changed {
		return
	}
	if c.grid != nil {
		c.grid.Regenerate(step)
	}
	c.log.Debug("grid step changed", zap.Int("step", step))
}
