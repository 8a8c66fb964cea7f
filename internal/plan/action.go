package plan

import (
	"fmt"

	"github.com/dshills/drafter/internal/keymap"
)

// ActionKind discriminates the closed action variant set.
type ActionKind uint8

const (
	// ActionWait sleeps for at least Ms milliseconds.
	ActionWait ActionKind = iota
	// ActionModifiers publishes the full modifier state.
	ActionModifiers
	// ActionKey presses or releases one key.
	ActionKey
)

// String returns the kind name used in the wire encoding.
func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "wait"
	case ActionModifiers:
		return "modifiers"
	case ActionKey:
		return "key"
	default:
		return "unknown"
	}
}

// X11-style modifier bit masks used in Modifiers actions.
const (
	ShiftMask uint32 = 1 << 0
	CtrlMask  uint32 = 1 << 2
)

// Action is one atomic playback step. Kind selects which fields are
// meaningful.
type Action struct {
	Kind ActionKind

	// Wait
	Ms uint32

	// Modifiers
	ModsDepressed uint32
	ModsLatched   uint32
	ModsLocked    uint32
	Group         uint32

	// Key
	Keycode keymap.Keycode
	Pressed bool
}

// Wait returns a wait action.
func Wait(ms uint32) Action {
	return Action{Kind: ActionWait, Ms: ms}
}

// Modifiers returns a modifier-state action.
func Modifiers(depressed, latched, locked, group uint32) Action {
	return Action{
		Kind:          ActionModifiers,
		ModsDepressed: depressed,
		ModsLatched:   latched,
		ModsLocked:    locked,
		Group:         group,
	}
}

// KeyDown returns a key press action.
func KeyDown(code keymap.Keycode) Action {
	return Action{Kind: ActionKey, Keycode: code, Pressed: true}
}

// KeyUp returns a key release action.
func KeyUp(code keymap.Keycode) Action {
	return Action{Kind: ActionKey, Keycode: code, Pressed: false}
}

// String returns a compact human-readable form for logs and test
// messages. The trace player writes its own JSON fields instead.
func (a Action) String() string {
	switch a.Kind {
	case ActionWait:
		return fmt.Sprintf("Wait(%dms)", a.Ms)
	case ActionModifiers:
		return fmt.Sprintf("Modifiers(dep=%#x lat=%#x lock=%#x grp=%d)",
			a.ModsDepressed, a.ModsLatched, a.ModsLocked, a.Group)
	case ActionKey:
		state := "up"
		if a.Pressed {
			state = "down"
		}
		return fmt.Sprintf("Key(%d %s)", a.Keycode, state)
	default:
		return "Action(?)"
	}
}
