package plan

import (
	"errors"
	"fmt"
)

// Errors returned by plan validation and verification.
var (
	// ErrVerificationMismatch indicates the replayed plan does not
	// reproduce the draft. The plan must be discarded.
	ErrVerificationMismatch = errors.New("verification mismatch")

	// ErrModifierImbalance indicates a modifier key is still held at the
	// end of the plan.
	ErrModifierImbalance = errors.New("modifier held at end of plan")

	// ErrKeyNotAllowed indicates an action references a keycode outside
	// the closed allowlist.
	ErrKeyNotAllowed = errors.New("keycode outside allowlist")

	// ErrKeyStateRepeat indicates a key was pressed while already down
	// or released while already up. Validate also returns it for a
	// non-modifier key still down at the end of the plan.
	ErrKeyStateRepeat = errors.New("repeated key state")

	// ErrUnsimulatable indicates an action the editor model cannot
	// replay deterministically.
	ErrUnsimulatable = errors.New("action cannot be simulated")
)

// VerifyError carries the position of the first divergence between the
// replayed buffer and the draft.
type VerifyError struct {
	// Index is the rune offset of the first mismatch, or -1 for a
	// length mismatch past the shorter text.
	Index int
	// Got and Want are the diverging runes (0 past the end).
	Got  rune
	Want rune
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	if e.Index < 0 {
		return "verification mismatch: buffer and draft lengths differ"
	}
	return fmt.Sprintf("verification mismatch at rune %d: got %q, want %q", e.Index, e.Got, e.Want)
}

// Is reports whether target is ErrVerificationMismatch.
func (e *VerifyError) Is(target error) bool {
	return target == ErrVerificationMismatch
}
