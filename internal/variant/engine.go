package variant

import (
	"math/rand/v2"
)

// Kind identifies how a divergence is produced.
type Kind uint8

const (
	// KindTypo replaces one letter with a US-QWERTY physical neighbor.
	KindTypo Kind = iota
	// KindSwap transposes two adjacent letters.
	KindSwap
	// KindDoubleSpace doubles the space following the word.
	KindDoubleSpace
	// KindSynonym replaces the whole word from the closed synonym table.
	KindSynonym
	// KindPhrase replaces a draft substring with a supplied alternative.
	KindPhrase
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTypo:
		return "typo"
	case KindSwap:
		return "swap"
	case KindDoubleSpace:
		return "double_space"
	case KindSynonym:
		return "synonym"
	case KindPhrase:
		return "phrase"
	default:
		return "unknown"
	}
}

// Divergence is a selected deviation for one word. Wrong is the text to
// type instead of the word; it is empty for KindDoubleSpace, where the
// extra space is emitted after the word's trailing separator.
type Divergence struct {
	Kind  Kind
	Wrong string
}

// Relative selection weights for applicable variants.
const (
	weightTypo        = 4
	weightSwap        = 3
	weightDoubleSpace = 2
	weightSynonym     = 2
)

// Engine draws divergences from the run's PRNG.
type Engine struct {
	rng              *rand.Rand
	errorRate        float64
	immediateFixRate float64
}

// NewEngine returns an engine sharing the assembler's PRNG.
func NewEngine(rng *rand.Rand, errorRate, immediateFixRate float64) *Engine {
	return &Engine{rng: rng, errorRate: errorRate, immediateFixRate: immediateFixRate}
}

// Pick decides whether word diverges and how. nextIsSpace reports
// whether the word is followed by a space token, which gates the
// double-space variant.
func (e *Engine) Pick(word string, nextIsSpace bool) (Divergence, bool) {
	if e.errorRate <= 0 || e.rng.Float64() >= e.errorRate {
		return Divergence{}, false
	}

	type candidate struct {
		div    Divergence
		weight int
	}
	var candidates []candidate

	if wrong, ok := e.typo(word); ok {
		candidates = append(candidates, candidate{Divergence{KindTypo, wrong}, weightTypo})
	}
	if wrong, ok := e.swap(word); ok {
		candidates = append(candidates, candidate{Divergence{KindSwap, wrong}, weightSwap})
	}
	if nextIsSpace {
		candidates = append(candidates, candidate{Divergence{KindDoubleSpace, ""}, weightDoubleSpace})
	}
	if wrong, ok := synonymFor(word); ok {
		candidates = append(candidates, candidate{Divergence{KindSynonym, wrong}, weightSynonym})
	}
	if len(candidates) == 0 {
		return Divergence{}, false
	}

	total := 0
	for _, c := range candidates {
		total += c.weight
	}
	pick := e.rng.IntN(total)
	for _, c := range candidates {
		pick -= c.weight
		if pick < 0 {
			return c.div, true
		}
	}
	return candidates[len(candidates)-1].div, true
}

// typo replaces one random letter of word with a keyboard neighbor.
func (e *Engine) typo(word string) (string, bool) {
	runes := []rune(word)
	var letterIdx []int
	for i, ch := range runes {
		if _, ok := qwertyNeighbors[foldLetter(ch)]; ok {
			letterIdx = append(letterIdx, i)
		}
	}
	if len(letterIdx) == 0 {
		return "", false
	}
	i := letterIdx[e.rng.IntN(len(letterIdx))]
	n, ok := neighborOf(runes[i], e.rng)
	if !ok || n == runes[i] {
		return "", false
	}
	runes[i] = n
	return string(runes), true
}

// swap transposes two adjacent distinct letters of word.
func (e *Engine) swap(word string) (string, bool) {
	runes := []rune(word)
	var pairs []int
	for i := 0; i+1 < len(runes); i++ {
		if isLetter(runes[i]) && isLetter(runes[i+1]) && runes[i] != runes[i+1] {
			pairs = append(pairs, i)
		}
	}
	if len(pairs) == 0 {
		return "", false
	}
	i := pairs[e.rng.IntN(len(pairs))]
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes), true
}

// FixHorizon draws the number of draft characters to commit before a
// divergence is corrected: a short window for immediate fixes, a longer
// one for delayed fixes. The second result reports the immediate case.
func (e *Engine) FixHorizon() (int, bool) {
	if e.rng.Float64() < e.immediateFixRate {
		return e.rng.IntN(4), true
	}
	return 8 + e.rng.IntN(33), false
}

// ConstraintFor returns the placement constraint for a divergence kind.
func ConstraintFor(kind Kind) Constraint {
	switch kind {
	case KindSynonym, KindPhrase:
		return SentenceOrParagraphBoundary
	default:
		return Anywhere
	}
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func foldLetter(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
