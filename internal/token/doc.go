// Package token splits a draft into the runs the planner types.
//
// A single pass classifies the draft into Word, Space, Punct, and Newline
// tokens, each annotated with its rune range in the draft. The pass also
// validates that every code point is typeable, reporting the line and
// column of the first unsupported one.
package token
