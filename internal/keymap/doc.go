// Package keymap maps output characters to US-QWERTY evdev keystrokes.
//
// The mapping is a pure closed table: printable ASCII (0x20-0x7E), newline,
// and the four Unicode smart quotes are mappable; everything else is
// unsupported. The package also names the non-printing keys a plan may
// contain (editing keys, arrows, Home/End, and the Shift/Ctrl modifiers)
// and exposes the closed allowlist of emittable keycodes.
package keymap
