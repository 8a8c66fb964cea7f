package variant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/drafter/internal/keymap"
)

// Alternative is an external suggestion to reword a paragraph-local
// substring. It is typed instead of the original and corrected later.
type Alternative struct {
	Original    string
	Alternative string
}

// SplitParagraphs splits the draft on blank lines. Paragraph indices in
// the alternatives interface refer to this split.
func SplitParagraphs(draft string) []string {
	return strings.Split(draft, "\n\n")
}

// ParseAlternativesJSON decodes an alternatives document: an object
// keyed by paragraph index, each value a list of {original,
// alternative} pairs.
func ParseAlternativesJSON(data []byte) (map[int][]Alternative, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("alternatives document is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("alternatives document must be a JSON object")
	}

	out := make(map[int][]Alternative)
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		idx, err := strconv.Atoi(key.String())
		if err != nil || idx < 0 {
			parseErr = fmt.Errorf("paragraph key %q is not a non-negative integer", key.String())
			return false
		}
		if !value.IsArray() {
			parseErr = fmt.Errorf("paragraph %d: expected an array of suggestions", idx)
			return false
		}
		value.ForEach(func(_, item gjson.Result) bool {
			out[idx] = append(out[idx], Alternative{
				Original:    item.Get("original").String(),
				Alternative: item.Get("alternative").String(),
			})
			return true
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

// ValidateAlternatives checks every suggestion against its paragraph:
// the original must be a non-empty substring occurring exactly once,
// original ranges must not overlap within a paragraph, and the
// alternative must be non-empty and typeable. Paragraphs that fail drop
// out of the returned map; the failures are returned alongside so the
// caller can apply the fallback-or-error policy.
func ValidateAlternatives(paragraphs []string, alts map[int][]Alternative) (map[int][]Alternative, []error) {
	valid := make(map[int][]Alternative)
	var failures []error

	for idx, list := range alts {
		if idx >= len(paragraphs) {
			failures = append(failures, &AlternativeError{Paragraph: idx, Message: "paragraph index out of range"})
			continue
		}
		para := paragraphs[idx]
		if err := validateParagraph(idx, para, list); err != nil {
			failures = append(failures, err)
			continue
		}
		valid[idx] = list
	}
	return valid, failures
}

func validateParagraph(idx int, para string, list []Alternative) error {
	type span struct{ start, end int }
	var spans []span

	for _, alt := range list {
		if alt.Original == "" {
			return &AlternativeError{Paragraph: idx, Original: alt.Original, Message: "empty original"}
		}
		switch strings.Count(para, alt.Original) {
		case 0:
			return &AlternativeError{Paragraph: idx, Original: alt.Original, Message: "not found in paragraph"}
		case 1:
		default:
			return &AlternativeError{Paragraph: idx, Original: alt.Original, Message: "occurs more than once"}
		}
		if alt.Alternative == "" {
			return &AlternativeError{Paragraph: idx, Original: alt.Original, Message: "empty alternative"}
		}
		for _, ch := range alt.Alternative {
			if !keymap.Supported(ch) {
				return &AlternativeError{Paragraph: idx, Original: alt.Original,
					Message: fmt.Sprintf("alternative contains untypeable character %q", ch)}
			}
		}
		start := strings.Index(para, alt.Original)
		spans = append(spans, span{start, start + len(alt.Original)})
	}

	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
				return &AlternativeError{Paragraph: idx, Message: "original ranges overlap"}
			}
		}
	}
	return nil
}
