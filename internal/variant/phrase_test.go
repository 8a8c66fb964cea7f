package variant

import (
	"errors"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	paras := SplitParagraphs("one\n\ntwo\nstill two\n\nthree")
	if len(paras) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %q", len(paras), paras)
	}
	if paras[1] != "two\nstill two" {
		t.Errorf("paragraph 1 = %q", paras[1])
	}
}

func TestParseAlternativesJSON(t *testing.T) {
	data := []byte(`{"0":[{"original":"hello","alternative":"hi"}],"2":[{"original":"a b","alternative":"ab"}]}`)
	alts, err := ParseAlternativesJSON(data)
	if err != nil {
		t.Fatalf("ParseAlternativesJSON: %v", err)
	}
	if len(alts) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(alts))
	}
	if alts[0][0] != (Alternative{"hello", "hi"}) {
		t.Errorf("alts[0][0] = %+v", alts[0][0])
	}
	if alts[2][0] != (Alternative{"a b", "ab"}) {
		t.Errorf("alts[2][0] = %+v", alts[2][0])
	}
}

func TestParseAlternativesJSONRejectsBadInput(t *testing.T) {
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`[1,2]`),
		[]byte(`{"x":[]}`),
		[]byte(`{"-1":[]}`),
		[]byte(`{"0":{"original":"a"}}`),
	}
	for _, data := range cases {
		if _, err := ParseAlternativesJSON(data); err == nil {
			t.Errorf("expected error for %s", data)
		}
	}
}

func TestValidateAlternativesAccepts(t *testing.T) {
	paras := []string{"hello world", "second paragraph"}
	alts := map[int][]Alternative{
		0: {{Original: "hello", Alternative: "hi"}},
		1: {{Original: "second", Alternative: "2nd"}},
	}
	valid, failures := ValidateAlternatives(paras, alts)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if len(valid) != 2 {
		t.Errorf("expected both paragraphs valid, got %d", len(valid))
	}
}

func TestValidateAlternativesRejects(t *testing.T) {
	paras := []string{"the cat saw the cat door"}
	tests := []struct {
		name string
		alts []Alternative
	}{
		{"empty original", []Alternative{{Original: "", Alternative: "x"}}},
		{"not found", []Alternative{{Original: "dog", Alternative: "cat"}}},
		{"multiple occurrences", []Alternative{{Original: "the cat", Alternative: "a cat"}}},
		{"empty alternative", []Alternative{{Original: "door", Alternative: ""}}},
		{"untypeable alternative", []Alternative{{Original: "door", Alternative: "porte\t"}}},
		// Both originals occur exactly once; only the range check can
		// reject this case.
		{"overlapping ranges", []Alternative{
			{Original: "cat door", Alternative: "flap"},
			{Original: "door", Alternative: "gate"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, failures := ValidateAlternatives(paras, map[int][]Alternative{0: tt.alts})
			if len(valid) != 0 {
				t.Errorf("paragraph should have been dropped: %v", valid)
			}
			if len(failures) != 1 {
				t.Fatalf("expected 1 failure, got %d", len(failures))
			}
			if !errors.Is(failures[0], ErrInvalidAlternative) {
				t.Errorf("failure %v should match ErrInvalidAlternative", failures[0])
			}
		})
	}

	// A suggestion for a paragraph index the draft does not have is
	// rejected as well.
	t.Run("index out of range", func(t *testing.T) {
		valid, failures := ValidateAlternatives(paras, map[int][]Alternative{5: {{Original: "cat", Alternative: "dog"}}})
		if len(valid) != 0 || len(failures) != 1 {
			t.Errorf("valid=%v failures=%v", valid, failures)
		}
	})
}
