package token

import (
	"github.com/dshills/drafter/internal/keymap"
)

// Kind classifies a token.
type Kind uint8

const (
	// Word is a maximal run of alphanumerics, including embedded apostrophes.
	Word Kind = iota
	// Space is a run of space characters.
	Space
	// Punct is a run of punctuation or symbol characters.
	Punct
	// Newline is a single line feed.
	Newline
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Space:
		return "Space"
	case Punct:
		return "Punct"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// Token is a classified slice of the draft. Start and End are rune
// offsets; End is exclusive.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// isWordChar reports whether ch is an ASCII letter or digit.
func isWordChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// isApostrophe reports whether ch can join two word halves, as in "don't".
func isApostrophe(ch rune) bool {
	return ch == '\'' || ch == keymap.RightSingleQuote
}

// substitutionReachable reports whether the smart quote at runes[i] is
// the form an auto-substituting editor would actually insert there: the
// opening form after whitespace or at the start, the closing form
// elsewhere. A quote on the wrong side can never be reproduced through
// the apostrophe key.
func substitutionReachable(runes []rune, i int) bool {
	opening := i == 0 || runes[i-1] == ' ' || runes[i-1] == '\n'
	switch runes[i] {
	case keymap.LeftSingleQuote, keymap.LeftDoubleQuote:
		return opening
	case keymap.RightSingleQuote, keymap.RightDoubleQuote:
		return !opening
	default:
		return true
	}
}

// HasSmartQuotes reports whether the draft contains any of the four smart
// quote code points. Their presence switches the whole plan to
// auto-substitution mode.
func HasSmartQuotes(draft string) bool {
	for _, ch := range draft {
		switch ch {
		case keymap.RightSingleQuote, keymap.LeftSingleQuote,
			keymap.RightDoubleQuote, keymap.LeftDoubleQuote:
			return true
		}
	}
	return false
}

// Tokenize classifies the draft into tokens. It returns an
// UnsupportedCharError for the first code point the key mapper cannot
// produce. In smart-quote mode ASCII quote characters are rejected too:
// an auto-substituting editor never leaves them in the text, so the plan
// could not reproduce them.
func Tokenize(draft string) ([]Token, error) {
	runes := []rune(draft)
	smart := HasSmartQuotes(draft)

	line, col := 1, 1
	for i, ch := range runes {
		if !keymap.Supported(ch) {
			return nil, &UnsupportedCharError{Char: ch, Line: line, Col: col}
		}
		if smart && (ch == '\'' || ch == '"') {
			return nil, &UnsupportedCharError{Char: ch, Line: line, Col: col}
		}
		if smart && !substitutionReachable(runes, i) {
			return nil, &UnsupportedCharError{Char: ch, Line: line, Col: col}
		}
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	var tokens []Token
	emit := func(kind Kind, start, end int) {
		tokens = append(tokens, Token{Kind: kind, Start: start, End: end, Text: string(runes[start:end])})
	}

	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '\n':
			emit(Newline, i, i+1)
			i++
		case ch == ' ':
			j := i
			for j < len(runes) && runes[j] == ' ' {
				j++
			}
			emit(Space, i, j)
			i = j
		case isWordChar(ch):
			j := i
			for j < len(runes) {
				if isWordChar(runes[j]) {
					j++
					continue
				}
				if isApostrophe(runes[j]) && j+1 < len(runes) && j > i &&
					isWordChar(runes[j-1]) && isWordChar(runes[j+1]) {
					j++
					continue
				}
				break
			}
			emit(Word, i, j)
			i = j
		default:
			j := i
			for j < len(runes) {
				c := runes[j]
				if c == '\n' || c == ' ' || isWordChar(c) {
					break
				}
				j++
			}
			emit(Punct, i, j)
			i = j
		}
	}
	return tokens, nil
}
