package token

import (
	"errors"
	"testing"
)

func collect(t *testing.T, draft string) []Token {
	t.Helper()
	tokens, err := Tokenize(draft)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", draft, err)
	}
	return tokens
}

func TestTokenizeSimple(t *testing.T) {
	tokens := collect(t, "hello world")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != Word || tokens[0].Text != "hello" {
		t.Errorf("token 0 = %v %q", tokens[0].Kind, tokens[0].Text)
	}
	if tokens[1].Kind != Space || tokens[1].Text != " " {
		t.Errorf("token 1 = %v %q", tokens[1].Kind, tokens[1].Text)
	}
	if tokens[2].Kind != Word || tokens[2].Text != "world" {
		t.Errorf("token 2 = %v %q", tokens[2].Kind, tokens[2].Text)
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		draft string
		kinds []Kind
		texts []string
	}{
		{"a.b", []Kind{Word, Punct, Word}, []string{"a", ".", "b"}},
		{"x\ny", []Kind{Word, Newline, Word}, []string{"x", "\n", "y"}},
		{"a  b", []Kind{Word, Space, Word}, []string{"a", "  ", "b"}},
		{"end.\n", []Kind{Word, Punct, Newline}, []string{"end", ".", "\n"}},
		{"1st!", []Kind{Word, Punct}, []string{"1st", "!"}},
		{"--", []Kind{Punct}, []string{"--"}},
	}
	for _, tt := range tests {
		tokens := collect(t, tt.draft)
		if len(tokens) != len(tt.kinds) {
			t.Errorf("%q: expected %d tokens, got %d", tt.draft, len(tt.kinds), len(tokens))
			continue
		}
		for i := range tokens {
			if tokens[i].Kind != tt.kinds[i] || tokens[i].Text != tt.texts[i] {
				t.Errorf("%q token %d = %v %q, want %v %q",
					tt.draft, i, tokens[i].Kind, tokens[i].Text, tt.kinds[i], tt.texts[i])
			}
		}
	}
}

func TestTokenizeApostropheInsideWord(t *testing.T) {
	tokens := collect(t, "don't stop")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != Word || tokens[0].Text != "don't" {
		t.Errorf("token 0 = %v %q, want Word \"don't\"", tokens[0].Kind, tokens[0].Text)
	}
}

func TestTokenizeSmartApostropheInsideWord(t *testing.T) {
	tokens := collect(t, "don’t")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != Word || tokens[0].Text != "don’t" {
		t.Errorf("token 0 = %v %q", tokens[0].Kind, tokens[0].Text)
	}
}

func TestTokenizeQuotedWord(t *testing.T) {
	tokens := collect(t, "say 'hi'")
	kinds := []Kind{Word, Space, Punct, Word, Punct}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d: %v", len(kinds), len(tokens), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, tokens[i].Kind, k)
		}
	}
}

func TestTokenizeRanges(t *testing.T) {
	tokens := collect(t, "ab cd")
	if tokens[0].Start != 0 || tokens[0].End != 2 {
		t.Errorf("token 0 range = [%d,%d), want [0,2)", tokens[0].Start, tokens[0].End)
	}
	if tokens[2].Start != 3 || tokens[2].End != 5 {
		t.Errorf("token 2 range = [%d,%d), want [3,5)", tokens[2].Start, tokens[2].End)
	}
}

func TestTokenizeUnsupportedTab(t *testing.T) {
	_, err := Tokenize("tab\tchar")
	if err == nil {
		t.Fatal("expected error for tab")
	}
	var uce *UnsupportedCharError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnsupportedCharError, got %T", err)
	}
	if uce.Line != 1 || uce.Col != 4 {
		t.Errorf("offender at line %d col %d, want line 1 col 4", uce.Line, uce.Col)
	}
}

func TestTokenizeUnsupportedOnLaterLine(t *testing.T) {
	_, err := Tokenize("ok\nbadé")
	var uce *UnsupportedCharError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnsupportedCharError, got %v", err)
	}
	if uce.Line != 2 || uce.Col != 4 {
		t.Errorf("offender at line %d col %d, want line 2 col 4", uce.Line, uce.Col)
	}
}

func TestTokenizeMixedQuoteStyles(t *testing.T) {
	// Smart quotes switch the plan to auto-substitution; an ASCII quote
	// could then never survive in the editor.
	_, err := Tokenize("it’s \"fine\"")
	var uce *UnsupportedCharError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnsupportedCharError, got %v", err)
	}
	if uce.Char != '"' {
		t.Errorf("offender = %q, want '\"'", uce.Char)
	}
}

func TestTokenizeUnreachableSmartQuote(t *testing.T) {
	// An opening double quote directly after a letter is not what an
	// auto-substituting editor would insert there.
	_, err := Tokenize("ab“cd”")
	var uce *UnsupportedCharError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnsupportedCharError, got %v", err)
	}
	if uce.Col != 3 {
		t.Errorf("offender at col %d, want 3", uce.Col)
	}

	// The normal arrangement passes.
	if _, err := Tokenize("ab “cd” ef"); err != nil {
		t.Errorf("well-placed smart quotes rejected: %v", err)
	}
}

func TestHasSmartQuotes(t *testing.T) {
	if HasSmartQuotes("plain ascii") {
		t.Error("false positive")
	}
	if !HasSmartQuotes("don’t") {
		t.Error("false negative")
	}
}
