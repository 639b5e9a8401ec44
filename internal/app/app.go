// Package app runs the mesh viewer: it owns the window and GL backend,
// feeds input to the viewport controller and presents frames on demand.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/overlay"
	"github.com/Faultbox/meshview/internal/engine/render"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/internal/scene"
	"github.com/Faultbox/meshview/internal/viewport"
)

// Title is the window title.
const Title = "MeshView"

// capturePrefix names the PNG files of the picking pass.
const capturePrefix = "pick"

// App is the viewer instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	overlay  *overlay.Renderer
	input    *input.Input
	scene    *scene.Registry
	ctl      *viewport.Controller

	bindings map[sdl.Keycode]input.Action
	capture  *debug.Capture
	dumping  bool

	// scale reports the current display scale.
	scale func() float32

	running  bool
	nextTick time.Time
}

// New creates the window, GL backend, scene and viewport controller.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing viewer",
		zap.Int("width", cfg.Viewport.Width),
		zap.Int("height", cfg.Viewport.Height),
	)

	a := &App{
		cfg:      cfg,
		log:      log,
		input:    input.New(),
		bindings: input.DefaultBindings,
	}

	width, height := cfg.Viewport.Width, cfg.Viewport.Height
	if width <= 0 || height <= 0 {
		width, height = viewport.DefaultWidth, viewport.DefaultHeight
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:     Title,
		Width:     width,
		Height:    height,
		MinWidth:  viewport.MinWidth,
		MinHeight: viewport.MinHeight,
		VSync:     cfg.Viewport.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	a.scale = a.window.Scale

	// Renderer AFTER window, since the GL context must exist
	a.renderer, err = renderer.New(logger.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.overlay, err = overlay.New(logger.Named("overlay"))
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	a.overlay.SetScale(a.scale())

	a.scene = scene.New(a.renderer, logger.Named("scene")).AddAll(Boxes(cfg))
	a.ctl = viewport.New(a.renderer, a.scene, a.overlay, Options(cfg), logger.Named("viewport"))

	if dir := cfg.Debug.PickDumpDir; dir != "" {
		a.capture = debug.NewCapture(dir, capturePrefix)
		a.dumping = true
		a.ctl.SetCapture(a.capture)
	}

	// Resize before Init: the axes indicator depends on the display scale.
	lw, lh := a.window.GetSize()
	a.ctl.Resize(lw, lh, a.scale())
	if err := a.ctl.Init(loadPrograms); err != nil {
		// nothing worth persisting from a viewer that never started
		a.ctl = nil
		a.Close()
		return nil, err
	}
	a.ctl.RecalculatePosition()

	log.Info("viewer initialized", zap.Int("objects", len(a.scene.Objects())))
	return a, nil
}

func loadPrograms() (render.Program, render.Program, error) {
	main, err := shader.New("viewport", shader.ViewportVertexShader, shader.ViewportFragmentShader)
	if err != nil {
		return nil, nil, err
	}
	pick, err := shader.New("picking", shader.PickingVertexShader, shader.PickingFragmentShader)
	if err != nil {
		main.Delete()
		return nil, nil, err
	}
	return main, pick, nil
}

// Run processes events until the window closes. It blocks while the view
// is idle and wakes at the controller's redraw interval during drags.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting event loop")

	for a.running {
		var quit bool
		if a.ctl.NeedsRedraw() {
			quit = a.input.Update()
		} else {
			quit = a.input.Wait(a.waitTimeout(time.Now()))
		}
		if quit {
			a.running = false
			break
		}

		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		a.tick(time.Now())

		if a.running && a.ctl.NeedsRedraw() {
			if err := a.ctl.Paint(); err != nil {
				if errors.Is(err, viewport.ErrNotInitialized) {
					return err
				}
				a.log.Warn("paint", zap.Error(err))
			}
			a.window.SwapBuffers()
		}
	}

	a.log.Info("event loop stopped")
	return nil
}

// waitTimeout is how long the loop may block: until the next redraw tick
// while a button is held, indefinitely otherwise.
func (a *App) waitTimeout(now time.Time) time.Duration {
	if _, on := a.ctl.RedrawTimer(); !on || a.nextTick.IsZero() {
		return 0
	}
	return max(a.nextTick.Sub(now), time.Millisecond)
}

// tick drives the controller's redraw timer.
func (a *App) tick(now time.Time) {
	interval, on := a.ctl.RedrawTimer()
	switch {
	case !on:
		a.nextTick = time.Time{}
	case a.nextTick.IsZero():
		a.nextTick = now.Add(interval)
	case !now.Before(a.nextTick):
		a.ctl.Tick()
		a.nextTick = now.Add(interval)
	}
}

// Close persists the settings and releases everything in reverse order.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.ctl != nil {
		a.writeSettings()
		a.ctl.Close()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// writeSettings stores the display toggles and window size.
func (a *App) writeSettings() {
	o := a.ctl.Options()
	a.cfg.SetDisplay(o.Axes, o.Grid, o.Info)
	if a.window != nil {
		a.cfg.Viewport.Width, a.cfg.Viewport.Height = a.window.GetSize()
	}
	if err := a.cfg.Save(); err != nil {
		a.log.Warn("failed to save settings", zap.Error(err))
		return
	}
	a.log.Debug("settings saved", zap.String("path", a.cfg.Path()))
}

// defaultDumpDir receives pick captures toggled on at runtime without a
// configured directory.
func defaultDumpDir() string {
	return filepath.Join(os.TempDir(), "meshview-picks")
}
