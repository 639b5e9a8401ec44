package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFrontView
	ActionBackView
	ActionLeftView
	ActionRightView
	ActionTopView
	ActionBottomView
	ActionFit
	ActionCenter
	ActionToggleAxes
	ActionToggleGrid
	ActionToggleInfo
	ActionToggleInverted
	ActionToggleBackground
	ActionTogglePickDump
	ActionToggleDebug
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionFrontView:        "front view",
	ActionBackView:         "back view",
	ActionLeftView:         "left view",
	ActionRightView:        "right view",
	ActionTopView:          "top view",
	ActionBottomView:       "bottom view",
	ActionFit:              "fit to scene",
	ActionCenter:           "center",
	ActionToggleAxes:       "toggle axes",
	ActionToggleGrid:       "toggle grid",
	ActionToggleInfo:       "toggle info",
	ActionToggleInverted:   "toggle inverted controls",
	ActionToggleBackground: "toggle background",
	ActionTogglePickDump:   "toggle pick dump",
	ActionToggleDebug:      "toggle debug logging",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// DefaultBindings maps keys to viewer actions.
var DefaultBindings = map[sdl.Keycode]Action{
	sdl.K_ESCAPE: ActionQuit,
	sdl.K_1:      ActionFrontView,
	sdl.K_2:      ActionBackView,
	sdl.K_3:      ActionLeftView,
	sdl.K_4:      ActionRightView,
	sdl.K_5:      ActionTopView,
	sdl.K_6:      ActionBottomView,
	sdl.K_KP_1:   ActionFrontView,
	sdl.K_KP_3:   ActionRightView,
	sdl.K_KP_7:   ActionTopView,
	sdl.K_f:      ActionFit,
	sdl.K_HOME:   ActionFit,
	sdl.K_c:      ActionCenter,
	sdl.K_a:      ActionToggleAxes,
	sdl.K_g:      ActionToggleGrid,
	sdl.K_i:      ActionToggleInfo,
	sdl.K_v:      ActionToggleInverted,
	sdl.K_b:      ActionToggleBackground,
	sdl.K_p:      ActionTogglePickDump,
	sdl.K_F12:    ActionToggleDebug,
}

// ActionFor returns the action bound to a key-down event, ActionNone for
// anything else. Shift+1/3/7 on the keypad select the opposite view.
func ActionFor(ev Event, bindings map[sdl.Keycode]Action) Action {
	if ev.Type != EventKeyDown {
		return ActionNone
	}
	a, ok := bindings[ev.Key]
	if !ok {
		return ActionNone
	}
	if ev.Shift {
		switch ev.Key {
		case sdl.K_KP_1:
			return ActionBackView
		case sdl.K_KP_3:
			return ActionLeftView
		case sdl.K_KP_7:
			return ActionBottomView
		}
	}
	return a
}
