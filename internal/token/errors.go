package token

import "fmt"

// UnsupportedCharError reports a draft code point the key mapper cannot
// produce. Line and Col are 1-based and refer to the first offender.
type UnsupportedCharError struct {
	Char rune
	Line int
	Col  int
}

// Error implements the error interface.
func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character %q at line %d, column %d", e.Char, e.Line, e.Col)
}
