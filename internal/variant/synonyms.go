package variant

import "strings"

// synonymTable maps draft words to the variant a distracted author might
// type instead. The table is closed: lookups are case-folded and the
// original capitalization of the first letter is preserved.
var synonymTable = map[string]string{
	"about":   "around",
	"begin":   "start",
	"big":     "large",
	"buy":     "purchase",
	"fast":    "quick",
	"get":     "obtain",
	"help":    "assist",
	"idea":    "notion",
	"keep":    "retain",
	"make":    "create",
	"maybe":   "perhaps",
	"need":    "require",
	"quick":   "fast",
	"really":  "truly",
	"said":    "says",
	"show":    "display",
	"small":   "little",
	"start":   "begin",
	"think":   "believe",
	"thought": "think",
	"use":     "employ",
	"want":    "wish",
	"was":     "is",
	"went":    "goes",
	"write":   "wrote",
	"wrote":   "write",
}

// synonymFor returns the table entry for word, matching the original's
// leading capitalization. The second result is false when the table has
// no entry.
func synonymFor(word string) (string, bool) {
	folded := strings.ToLower(word)
	repl, ok := synonymTable[folded]
	if !ok || repl == folded {
		return "", false
	}
	if word != folded && word != "" {
		first := rune(word[0])
		if first >= 'A' && first <= 'Z' {
			repl = strings.ToUpper(repl[:1]) + repl[1:]
		}
	}
	return repl, true
}
