// Package input translates SDL2 events into viewer events.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventExpose
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event. Mouse coordinates are logical
// window pixels, top-left origin.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Wheel  int // positive scrolls away from the user
	Shift  bool
}

// Translate converts one SDL event. mod is the keyboard modifier state at
// the time of the event. Reports false for events the viewer ignores.
func Translate(event sdl.Event, mod sdl.Keymod) (Event, bool) {
	shift := mod&sdl.KMOD_SHIFT != 0

	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return Event{Type: EventExpose}, true
		}

	case *sdl.KeyboardEvent:
		ev := Event{
			Key:   e.Keysym.Sym,
			Shift: sdl.Keymod(e.Keysym.Mod)&sdl.KMOD_SHIFT != 0,
		}
		switch e.Type {
		case sdl.KEYDOWN:
			ev.Type = EventKeyDown
		case sdl.KEYUP:
			ev.Type = EventKeyUp
		default:
			return Event{}, false
		}
		return ev, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Shift:  shift,
		}, true

	case *sdl.MouseButtonEvent:
		ev := Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
			Shift:  shift,
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			ev.Type = EventMouseDown
		case sdl.MOUSEBUTTONUP:
			ev.Type = EventMouseUp
		default:
			return Event{}, false
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		delta := int(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		if delta == 0 {
			return Event{}, false
		}
		return Event{Type: EventMouseWheel, Wheel: delta, Shift: shift}, true
	}

	return Event{}, false
}

// Input collects translated events from the SDL queue.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains pending SDL events without blocking.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	return i.drain(sdl.PollEvent())
}

// Wait blocks until an event arrives or timeout passes, then drains the
// queue. A non-positive timeout waits indefinitely.
// Returns true if the viewer should quit.
func (i *Input) Wait(timeout time.Duration) bool {
	i.events = i.events[:0]

	var first sdl.Event
	if timeout > 0 {
		first = sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	} else {
		first = sdl.WaitEvent()
	}
	return i.drain(first)
}

func (i *Input) drain(event sdl.Event) bool {
	quit := false
	for ; event != nil; event = sdl.PollEvent() {
		ev, ok := Translate(event, sdl.GetModState())
		if !ok {
			continue
		}
		if ev.Type == EventQuit {
			quit = true
		}
		i.events = append(i.events, ev)
	}
	return quit
}

// Events returns the events from the last Update or Wait.
func (i *Input) Events() []Event {
	return i.events
}
