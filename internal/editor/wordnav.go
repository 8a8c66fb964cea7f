package editor

import (
	"fmt"

	"github.com/dshills/drafter/internal/keymap"
)

// Profile selects the word-navigation policy used when emitting
// Ctrl+Arrow steps.
type Profile uint8

const (
	// ProfileChrome predicts the permissive skip-separators-then-word
	// motion used by Chromium text fields.
	ProfileChrome Profile = iota

	// ProfileCompatible only permits jumps whose traversed span is plain
	// alphanumerics and spaces, with matching neighbors at both ends.
	// Anything else decomposes into single-column steps.
	ProfileCompatible
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileChrome:
		return "chrome"
	case ProfileCompatible:
		return "compatible"
	default:
		return "unknown"
	}
}

// ParseProfile converts a configuration string to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "chrome", "":
		return ProfileChrome, nil
	case "compatible":
		return ProfileCompatible, nil
	default:
		return ProfileChrome, fmt.Errorf("unknown word-nav profile %q", s)
	}
}

func isAlnum(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// isNavWordChar reports whether buf[i] counts as a word character for
// navigation: alphanumerics, plus an apostrophe flanked by them.
func isNavWordChar(buf []rune, i int) bool {
	ch := buf[i]
	if isAlnum(ch) {
		return true
	}
	if ch == '\'' || ch == keymap.RightSingleQuote {
		return i > 0 && i+1 < len(buf) && isAlnum(buf[i-1]) && isAlnum(buf[i+1])
	}
	return false
}

// PredictLeft returns the cursor position a Ctrl+Left lands on: skip any
// run of separators, then the adjacent word run, stopping at its far
// edge (the start of the word).
func PredictLeft(buf []rune, cursor int) int {
	i := cursor
	for i > 0 && !isNavWordChar(buf, i-1) {
		i--
	}
	for i > 0 && isNavWordChar(buf, i-1) {
		i--
	}
	return i
}

// PredictRight returns the cursor position a Ctrl+Right lands on.
func PredictRight(buf []rune, cursor int) int {
	i := cursor
	for i < len(buf) && !isNavWordChar(buf, i) {
		i++
	}
	for i < len(buf) && isNavWordChar(buf, i) {
		i++
	}
	return i
}

// isSafeChar is the Compatible profile's character class: ASCII
// alphanumerics and the plain space.
func isSafeChar(ch rune) bool {
	return ch == ' ' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// JumpIsSafe reports whether a Ctrl+Arrow move between from and to can be
// trusted across editors. The traversed half-open span must contain only
// safe characters, and the characters immediately adjacent to both
// endpoints must be safe as well (or the endpoint sits at a buffer edge).
func JumpIsSafe(buf []rune, from, to int) bool {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i < hi; i++ {
		if !isSafeChar(buf[i]) {
			return false
		}
	}
	if lo > 0 && !isSafeChar(buf[lo-1]) {
		return false
	}
	if hi < len(buf) && !isSafeChar(buf[hi]) {
		return false
	}
	return true
}
