package assembler

import (
	"github.com/dshills/drafter/internal/keymap"
	"github.com/dshills/drafter/internal/plan"
)

// Shift and Ctrl form a tiny two-state machine each: pressed on demand,
// released as soon as the next emission doesn't need them. Every press
// is paired with a release before the plan ends, and each key event is
// followed by a Modifiers action publishing the new state, so an
// aborted replay can always restore neutrality.

// modMask returns the current modifier bitmask.
func (a *Assembler) modMask() uint32 {
	var mask uint32
	if a.shiftHeld {
		mask |= plan.ShiftMask
	}
	if a.ctrlHeld {
		mask |= plan.CtrlMask
	}
	return mask
}

// pressShift emits a Shift press if not already held.
func (a *Assembler) pressShift() {
	if a.shiftHeld {
		return
	}
	a.shiftHeld = true
	a.emit(plan.KeyDown(keymap.KeyLeftShift))
	a.emit(plan.Modifiers(a.modMask(), 0, 0, 0))
}

// releaseShift emits a Shift release if held.
func (a *Assembler) releaseShift() {
	if !a.shiftHeld {
		return
	}
	a.shiftHeld = false
	a.emit(plan.KeyUp(keymap.KeyLeftShift))
	a.emit(plan.Modifiers(a.modMask(), 0, 0, 0))
}

// pressCtrl emits a Ctrl press if not already held.
func (a *Assembler) pressCtrl() {
	if a.ctrlHeld {
		return
	}
	a.ctrlHeld = true
	a.emit(plan.KeyDown(keymap.KeyLeftCtrl))
	a.emit(plan.Modifiers(a.modMask(), 0, 0, 0))
}

// releaseCtrl emits a Ctrl release if held.
func (a *Assembler) releaseCtrl() {
	if !a.ctrlHeld {
		return
	}
	a.ctrlHeld = false
	a.emit(plan.KeyUp(keymap.KeyLeftCtrl))
	a.emit(plan.Modifiers(a.modMask(), 0, 0, 0))
}
