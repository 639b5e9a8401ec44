package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		mod    sdl.Keymod
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480},
			want:   Event{Type: EventWindowResize, Width: 640, Height: 480},
			wantOK: true,
		},
		{
			name:   "size changed",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 320, Data2: 200},
			want:   Event{Type: EventWindowResize, Width: 320, Height: 200},
			wantOK: true,
		},
		{
			name:   "exposed",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_EXPOSED},
			want:   Event{Type: EventExpose},
			wantOK: true,
		},
		{
			name:  "focus ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
		},
		{
			name:   "key down",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_g}},
			want:   Event{Type: EventKeyDown, Key: sdl.K_g},
			wantOK: true,
		},
		{
			name:   "key up with shift",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_KP_1, Mod: sdl.KMOD_LSHIFT}},
			want:   Event{Type: EventKeyUp, Key: sdl.K_KP_1, Shift: true},
			wantOK: true,
		},
		{
			name:   "motion",
			event:  &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20},
			want:   Event{Type: EventMouseMove, MouseX: 10, MouseY: 20},
			wantOK: true,
		},
		{
			name:   "right press with shift",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 5, Y: 6},
			mod:    sdl.KMOD_RSHIFT,
			want:   Event{Type: EventMouseDown, Button: sdl.BUTTON_RIGHT, MouseX: 5, MouseY: 6, Shift: true},
			wantOK: true,
		},
		{
			name:   "left release",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 1, Y: 2},
			want:   Event{Type: EventMouseUp, Button: sdl.BUTTON_LEFT, MouseX: 1, MouseY: 2},
			wantOK: true,
		},
		{
			name:   "wheel away",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1},
			want:   Event{Type: EventMouseWheel, Wheel: 1},
			wantOK: true,
		},
		{
			name:   "wheel flipped",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:   Event{Type: EventMouseWheel, Wheel: -2},
			wantOK: true,
		},
		{
			name:  "horizontal wheel ignored",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event, tt.mod)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Action
	}{
		{"escape", Event{Type: EventKeyDown, Key: sdl.K_ESCAPE}, ActionQuit},
		{"front", Event{Type: EventKeyDown, Key: sdl.K_1}, ActionFrontView},
		{"bottom", Event{Type: EventKeyDown, Key: sdl.K_6}, ActionBottomView},
		{"keypad front", Event{Type: EventKeyDown, Key: sdl.K_KP_1}, ActionFrontView},
		{"keypad back", Event{Type: EventKeyDown, Key: sdl.K_KP_1, Shift: true}, ActionBackView},
		{"keypad left", Event{Type: EventKeyDown, Key: sdl.K_KP_3, Shift: true}, ActionLeftView},
		{"keypad bottom", Event{Type: EventKeyDown, Key: sdl.K_KP_7, Shift: true}, ActionBottomView},
		{"shift ignored elsewhere", Event{Type: EventKeyDown, Key: sdl.K_g, Shift: true}, ActionToggleGrid},
		{"fit", Event{Type: EventKeyDown, Key: sdl.K_f}, ActionFit},
		{"key up", Event{Type: EventKeyUp, Key: sdl.K_g}, ActionNone},
		{"unbound", Event{Type: EventKeyDown, Key: sdl.K_z}, ActionNone},
		{"not a key", Event{Type: EventMouseMove}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFor(tt.ev, DefaultBindings))
		})
	}
}

func TestActionString(t *testing.T) {
	for a := ActionNone; a <= ActionToggleDebug; a++ {
		if a.String() == "unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
	assert.Equal(t, "unknown", Action(-1).String())
}
