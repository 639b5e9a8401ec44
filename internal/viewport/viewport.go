// Package viewport is the interactive 3D viewport: it turns pointer input
// into orbit camera changes and picks, and sequences the render passes of
// each frame over an externally owned scene.
package viewport

import (
	"errors"
	"time"

	"github.com/Faultbox/meshview/internal/engine/render"
)

// ErrNotInitialized is returned by Paint before a successful Init.
var ErrNotInitialized = errors.New("viewport: not initialized")

// RedrawInterval is the redraw period while a pointer button is held.
const RedrawInterval = 33 * time.Millisecond

// Size hints in logical pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MinWidth      = 50
	MinHeight     = 50
)

// Scene is the object registry the viewport renders and selects in.
type Scene interface {
	// DrawAll draws every object with the bound viewport program.
	DrawAll(prog render.Program)
	// DrawPicking draws every pickable object in its unique flat color.
	DrawPicking(prog render.Program)
	// MaxDiameter returns the bounding diameter of the scene, 0 if empty.
	MaxDiameter() float32
	// SetActiveByIndex activates the object with the picking id.
	// Unknown ids, including the background id 0, are ignored.
	SetActiveByIndex(id int)
	SetAllInactive()
	// Info returns the scene rows of the info panel.
	Info() []InfoRow
}

// InfoRow is one label/value line of the info panel.
type InfoRow struct {
	Label string
	Value string
}

// Overlay draws 2D text over the 3D content in device pixels, top-left
// origin.
type Overlay interface {
	Begin(width, height int)
	LineHeight() float32
	DrawText(x, y float32, text string, c render.Color)
	End()
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Pointer is a pointer event in logical pixels, top-left origin.
type Pointer struct {
	X, Y   int
	Button Button
	Shift  bool
}

// Options are the display toggles and colors.
type Options struct {
	Axes bool
	Grid bool
	Info bool

	// CameraInfo adds the camera angles to the info panel.
	CameraInfo bool

	Background render.Color
	Text       render.Color
}

// DefaultOptions returns the start-up display options.
func DefaultOptions() Options {
	return Options{
		Axes:       true,
		Grid:       false,
		Info:       true,
		Background: render.White,
		Text:       render.Black,
	}
}
