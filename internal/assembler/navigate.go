package assembler

import (
	"github.com/dshills/drafter/internal/editor"
	"github.com/dshills/drafter/internal/keymap"
	"github.com/dshills/drafter/internal/plan"
)

// Navigation tuning. Word jumps are preferred for longer distances but a
// share of plain steps is kept for texture.
const (
	minJumpDistance = 4
	minEndDistance  = 8
	jumpProbability = 0.75
)

// tap emits a full press/hold/release for one key and mirrors nothing:
// callers apply the model effect themselves.
func (a *Assembler) tap(code keymap.Keycode) {
	a.firstKey = true
	a.emit(plan.KeyDown(code))
	a.emit(plan.Wait(a.holdDelay()))
	a.emit(plan.KeyUp(code))
}

// ctrlTap emits a Ctrl-wrapped key tap. Ctrl is released immediately so
// modifier spans stay short and abort-safe.
func (a *Assembler) ctrlTap(code keymap.Keycode) {
	a.pressCtrl()
	a.tap(code)
	a.releaseCtrl()
}

// jumpAllowed gates a proposed Ctrl+Arrow move by the active profile.
// The same predicate is applied here as the model uses to predict the
// landing position; the two must never diverge.
func (a *Assembler) jumpAllowed(buf []rune, from, to int) bool {
	if a.profile == editor.ProfileChrome {
		return true
	}
	return editor.JumpIsSafe(buf, from, to)
}

// navigateTo walks the cursor to target using a mixture of plain and
// word-wise steps, keeping the live model in lockstep with every
// emitted key.
func (a *Assembler) navigateTo(target int) {
	for a.model.Cursor() != target {
		cur := a.model.Cursor()
		buf := a.model.Runes()

		if target < cur {
			pred := editor.PredictLeft(buf, cur)
			if pred >= target && cur-pred >= 2 && cur-target >= minJumpDistance &&
				a.rng.Float64() < jumpProbability && a.jumpAllowed(buf, cur, pred) {
				a.ctrlTap(keymap.KeyLeft)
				a.model.WordLeft()
			} else {
				a.tap(keymap.KeyLeft)
				a.model.Left()
			}
		} else {
			if le := a.model.LineEnd(cur); target == le && target-cur >= minEndDistance {
				a.tap(keymap.KeyEnd)
				a.model.End()
				a.emit(plan.Wait(a.navDelay()))
				continue
			}
			pred := editor.PredictRight(buf, cur)
			if pred <= target && pred-cur >= 2 && target-cur >= minJumpDistance &&
				a.rng.Float64() < jumpProbability && a.jumpAllowed(buf, cur, pred) {
				a.ctrlTap(keymap.KeyRight)
				a.model.WordRight()
			} else {
				a.tap(keymap.KeyRight)
				a.model.Right()
			}
		}
		a.emit(plan.Wait(a.navDelay()))
	}
}
