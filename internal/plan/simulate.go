package plan

import (
	"fmt"

	"github.com/dshills/drafter/internal/editor"
	"github.com/dshills/drafter/internal/keymap"
)

// Validate checks the structural invariants every accepted plan holds:
// all keycodes are in the closed allowlist, press/release alternate per
// keycode, and nothing is left held at the end.
func Validate(p *Plan) error {
	held := make(map[keymap.Keycode]bool)
	for i, a := range p.Actions {
		if a.Kind != ActionKey {
			continue
		}
		if !keymap.Allowed(a.Keycode) {
			return fmt.Errorf("action %d: keycode %d: %w", i, a.Keycode, ErrKeyNotAllowed)
		}
		if held[a.Keycode] == a.Pressed {
			return fmt.Errorf("action %d: keycode %d: %w", i, a.Keycode, ErrKeyStateRepeat)
		}
		held[a.Keycode] = a.Pressed
	}
	for code, down := range held {
		if !down {
			continue
		}
		if code == keymap.KeyLeftShift || code == keymap.KeyLeftCtrl {
			return fmt.Errorf("keycode %d: %w", code, ErrModifierImbalance)
		}
		return fmt.Errorf("keycode %d held at end of plan: %w", code, ErrKeyStateRepeat)
	}
	return nil
}

// Replayer applies actions one at a time to a fresh editor model. Waits
// are skipped and Modifiers actions are ignored; the effective shift
// state is carried by the Shift key events themselves.
type Replayer struct {
	model *editor.Model
	held  map[keymap.Keycode]bool
}

// NewReplayer returns a replayer over an empty model.
func NewReplayer(smartQuotes bool) *Replayer {
	return &Replayer{
		model: editor.NewModel(smartQuotes),
		held:  make(map[keymap.Keycode]bool),
	}
}

// Step applies one action.
func (r *Replayer) Step(a Action) error {
	if a.Kind != ActionKey {
		return nil
	}
	r.held[a.Keycode] = a.Pressed
	if !a.Pressed {
		return nil
	}
	shift := r.held[keymap.KeyLeftShift]
	ctrl := r.held[keymap.KeyLeftCtrl]

	switch a.Keycode {
	case keymap.KeyLeftShift, keymap.KeyLeftCtrl:
	case keymap.KeyBackspace:
		r.model.Backspace()
	case keymap.KeyDelete:
		r.model.Delete()
	case keymap.KeyLeft:
		if ctrl {
			r.model.WordLeft()
		} else {
			r.model.Left()
		}
	case keymap.KeyRight:
		if ctrl {
			r.model.WordRight()
		} else {
			r.model.Right()
		}
	case keymap.KeyHome:
		r.model.Home()
	case keymap.KeyEnd:
		r.model.End()
	case keymap.KeyUp, keymap.KeyDown:
		return fmt.Errorf("vertical motion: %w", ErrUnsimulatable)
	default:
		ch, ok := keymap.Decode(a.Keycode, shift)
		if !ok {
			return fmt.Errorf("keycode %d shift=%v: %w", a.Keycode, shift, ErrUnsimulatable)
		}
		r.model.Insert(ch)
	}
	return nil
}

// Text returns the current buffer contents.
func (r *Replayer) Text() string {
	return r.model.Text()
}

// Cursor returns the current cursor index in runes.
func (r *Replayer) Cursor() int {
	return r.model.Cursor()
}

// Simulate replays the full action stream against a fresh editor model
// and returns the resulting buffer.
func Simulate(actions []Action, smartQuotes bool) (string, error) {
	r := NewReplayer(smartQuotes)
	for i, a := range actions {
		if err := r.Step(a); err != nil {
			return "", fmt.Errorf("action %d: %w", i, err)
		}
	}
	return r.Text(), nil
}

// Verify validates the plan and replays it, asserting the result equals
// the draft code-point for code-point. A failed verification means the
// plan must be discarded, never played.
func Verify(p *Plan, draft string) error {
	if err := Validate(p); err != nil {
		return err
	}
	got, err := Simulate(p.Actions, p.Header.SmartQuotes)
	if err != nil {
		return err
	}
	if got == draft {
		return nil
	}
	gr, dr := []rune(got), []rune(draft)
	for i := 0; i < len(gr) && i < len(dr); i++ {
		if gr[i] != dr[i] {
			return &VerifyError{Index: i, Got: gr[i], Want: dr[i]}
		}
	}
	return &VerifyError{Index: -1}
}
