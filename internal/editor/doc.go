// Package editor simulates the text surface the plan will be replayed
// into: a linear rune buffer with a single cursor.
//
// The assembler keeps one live Model in lockstep with the plan it is
// building, and verification replays the finished plan against a second,
// fresh Model. Word-motion prediction for Ctrl+Arrow emission lives here
// too, in two profiles: the permissive Chrome profile and the gated
// Compatible profile.
package editor
