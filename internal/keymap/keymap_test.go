package keymap

import "testing"

func TestLookupLetters(t *testing.T) {
	ks, ok := Lookup('a')
	if !ok {
		t.Fatal("expected 'a' to be supported")
	}
	if ks.Code != KeyA || ks.Shift {
		t.Errorf("Lookup('a') = %+v, want {KeyA false}", ks)
	}

	ks, ok = Lookup('A')
	if !ok {
		t.Fatal("expected 'A' to be supported")
	}
	if ks.Code != KeyA || !ks.Shift {
		t.Errorf("Lookup('A') = %+v, want {KeyA true}", ks)
	}
}

func TestLookupSymbols(t *testing.T) {
	tests := []struct {
		ch    rune
		code  Keycode
		shift bool
	}{
		{' ', KeySpace, false},
		{'\n', KeyEnter, false},
		{'1', Key1, false},
		{'!', Key1, true},
		{'?', KeySlash, true},
		{'.', KeyDot, false},
		{'\'', KeyApostrophe, false},
		{'"', KeyApostrophe, true},
		{'~', KeyGrave, true},
	}
	for _, tt := range tests {
		ks, ok := Lookup(tt.ch)
		if !ok {
			t.Errorf("Lookup(%q) unsupported", tt.ch)
			continue
		}
		if ks.Code != tt.code || ks.Shift != tt.shift {
			t.Errorf("Lookup(%q) = %+v, want {%d %v}", tt.ch, ks, tt.code, tt.shift)
		}
	}
}

func TestLookupSmartQuotes(t *testing.T) {
	for _, ch := range []rune{RightSingleQuote, LeftSingleQuote} {
		ks, ok := Lookup(ch)
		if !ok {
			t.Fatalf("Lookup(%q) unsupported", ch)
		}
		if ks.Code != KeyApostrophe || ks.Shift {
			t.Errorf("Lookup(%q) = %+v, want unshifted apostrophe", ch, ks)
		}
	}
	for _, ch := range []rune{RightDoubleQuote, LeftDoubleQuote} {
		ks, ok := Lookup(ch)
		if !ok {
			t.Fatalf("Lookup(%q) unsupported", ch)
		}
		if ks.Code != KeyApostrophe || !ks.Shift {
			t.Errorf("Lookup(%q) = %+v, want shifted apostrophe", ch, ks)
		}
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, ch := range []rune{'\t', 'é', '\r', 0x7F, '€'} {
		if Supported(ch) {
			t.Errorf("expected %q to be unsupported", ch)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for ch := rune(0x20); ch <= 0x7E; ch++ {
		ks, ok := Lookup(ch)
		if !ok {
			t.Fatalf("Lookup(%q) unsupported", ch)
		}
		got, ok := Decode(ks.Code, ks.Shift)
		if !ok {
			t.Fatalf("Decode(%d, %v) failed for %q", ks.Code, ks.Shift, ch)
		}
		if got != ch {
			t.Errorf("Decode(Lookup(%q)) = %q", ch, got)
		}
	}
}

func TestDecodeNonPrinting(t *testing.T) {
	if _, ok := Decode(KeyBackspace, false); ok {
		t.Error("Backspace should not decode to a character")
	}
	if _, ok := Decode(KeyLeftShift, false); ok {
		t.Error("Shift should not decode to a character")
	}
}

func TestAllowlist(t *testing.T) {
	for _, code := range []Keycode{KeyA, KeyEnter, KeyBackspace, KeyDelete, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyLeftShift, KeyLeftCtrl, KeySpace} {
		if !Allowed(code) {
			t.Errorf("keycode %d should be allowed", code)
		}
	}
	// Esc, Tab, function keys, and modifiers beyond Shift/Ctrl stay out.
	for _, code := range []Keycode{KeyEsc, 15, 56, 59, 125} {
		if Allowed(code) {
			t.Errorf("keycode %d should not be allowed", code)
		}
	}
}
