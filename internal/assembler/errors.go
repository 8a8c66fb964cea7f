package assembler

import "errors"

// Errors returned by plan assembly.
var (
	// ErrInternal indicates the assembler's own state went inconsistent.
	// Plans failing this way are discarded.
	ErrInternal = errors.New("internal planner error")

	// ErrUnfixedErrors indicates outstanding corrections survived the
	// review pass.
	ErrUnfixedErrors = errors.New("outstanding corrections after review pass")

	// ErrUntypeable indicates a character reached the typing pipeline
	// that the key mapper cannot produce. The tokenizer should have
	// rejected the draft first.
	ErrUntypeable = errors.New("untypeable character in typing pipeline")
)
