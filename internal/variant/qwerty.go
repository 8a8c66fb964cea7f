package variant

import "math/rand/v2"

// qwertyNeighbors maps each lowercase letter to its physical neighbors
// on a US-QWERTY board. The table is closed; only letters participate in
// adjacent-key typos.
var qwertyNeighbors = map[rune]string{
	'a': "qwsz",
	'b': "vghn",
	'c': "xdfv",
	'd': "serfcx",
	'e': "wsdr",
	'f': "drtgvc",
	'g': "ftyhbv",
	'h': "gyujnb",
	'i': "ujko",
	'j': "huikmn",
	'k': "jiolm",
	'l': "kop",
	'm': "njk",
	'n': "bhjm",
	'o': "iklp",
	'p': "ol",
	'q': "wa",
	'r': "edft",
	's': "awedxz",
	't': "rfgy",
	'u': "yhji",
	'v': "cfgb",
	'w': "qase",
	'x': "zsdc",
	'y': "tghu",
	'z': "asx",
}

// neighborOf returns a random physical neighbor of ch, preserving case.
// The second result is false when ch has no neighbors.
func neighborOf(ch rune, rng *rand.Rand) (rune, bool) {
	lower := ch
	upper := false
	if ch >= 'A' && ch <= 'Z' {
		lower = ch + ('a' - 'A')
		upper = true
	}
	ns, ok := qwertyNeighbors[lower]
	if !ok {
		return 0, false
	}
	picked := rune(ns[rng.IntN(len(ns))])
	if upper {
		picked -= 'a' - 'A'
	}
	return picked, true
}
