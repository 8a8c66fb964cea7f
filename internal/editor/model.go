package editor

import "github.com/dshills/drafter/internal/keymap"

// Model is a minimal editor simulation: an ordered rune buffer and a
// cursor index in [0, len].
type Model struct {
	buf    []rune
	cursor int

	// smartQuotes enables the auto-substitution the target editor is
	// assumed to perform on ASCII quote input.
	smartQuotes bool
}

// NewModel returns an empty model. When smartQuotes is true, inserting
// an ASCII quote records the Unicode code point the editor would
// substitute for it.
func NewModel(smartQuotes bool) *Model {
	return &Model{smartQuotes: smartQuotes}
}

// SmartQuotes reports whether auto-substitution is enabled.
func (m *Model) SmartQuotes() bool {
	return m.smartQuotes
}

// substitute maps an ASCII quote to the code point an auto-substituting
// editor inserts: the opening form after whitespace or at the buffer
// start, the closing form otherwise.
func (m *Model) substitute(ch rune) rune {
	opening := m.cursor == 0 || m.buf[m.cursor-1] == ' ' || m.buf[m.cursor-1] == '\n'
	switch ch {
	case '\'':
		if opening {
			return keymap.LeftSingleQuote
		}
		return keymap.RightSingleQuote
	case '"':
		if opening {
			return keymap.LeftDoubleQuote
		}
		return keymap.RightDoubleQuote
	}
	return ch
}

// Insert places ch at the cursor and advances it.
func (m *Model) Insert(ch rune) {
	if m.smartQuotes && (ch == '\'' || ch == '"') {
		ch = m.substitute(ch)
	}
	m.buf = append(m.buf, 0)
	copy(m.buf[m.cursor+1:], m.buf[m.cursor:])
	m.buf[m.cursor] = ch
	m.cursor++
}

// Backspace removes the rune before the cursor, if any.
func (m *Model) Backspace() {
	if m.cursor == 0 {
		return
	}
	m.buf = append(m.buf[:m.cursor-1], m.buf[m.cursor:]...)
	m.cursor--
}

// Delete removes the rune at the cursor, if any.
func (m *Model) Delete() {
	if m.cursor >= len(m.buf) {
		return
	}
	m.buf = append(m.buf[:m.cursor], m.buf[m.cursor+1:]...)
}

// Left moves the cursor one rune left, clamped at 0.
func (m *Model) Left() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Right moves the cursor one rune right, clamped at the buffer end.
func (m *Model) Right() {
	if m.cursor < len(m.buf) {
		m.cursor++
	}
}

// Home moves the cursor to the start of the current line.
func (m *Model) Home() {
	for m.cursor > 0 && m.buf[m.cursor-1] != '\n' {
		m.cursor--
	}
}

// End moves the cursor to the end of the current line.
func (m *Model) End() {
	for m.cursor < len(m.buf) && m.buf[m.cursor] != '\n' {
		m.cursor++
	}
}

// WordLeft moves the cursor to the predicted Ctrl+Left destination.
func (m *Model) WordLeft() {
	m.cursor = PredictLeft(m.buf, m.cursor)
}

// WordRight moves the cursor to the predicted Ctrl+Right destination.
func (m *Model) WordRight() {
	m.cursor = PredictRight(m.buf, m.cursor)
}

// MoveTo places the cursor at pos, clamped to the valid range.
func (m *Model) MoveTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.buf) {
		pos = len(m.buf)
	}
	m.cursor = pos
}

// Cursor returns the cursor index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Len returns the buffer length in runes.
func (m *Model) Len() int {
	return len(m.buf)
}

// Text returns the buffer contents.
func (m *Model) Text() string {
	return string(m.buf)
}

// Runes returns a copy of the buffer.
func (m *Model) Runes() []rune {
	out := make([]rune, len(m.buf))
	copy(out, m.buf)
	return out
}

// Slice returns the buffer contents in [start, end), clamped.
func (m *Model) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(m.buf) {
		end = len(m.buf)
	}
	if start >= end {
		return ""
	}
	return string(m.buf[start:end])
}

// LineEnd returns the index of the end of the line containing pos.
func (m *Model) LineEnd(pos int) int {
	for pos < len(m.buf) && m.buf[pos] != '\n' {
		pos++
	}
	return pos
}
