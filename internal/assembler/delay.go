package assembler

// Timing model. The per-character mean tracks the target words-per-minute
// figure; everything else is human-plausible jitter around it. None of
// these are contractual beyond staying within the clamp bounds.

const (
	minCharDelayMs = 20
	maxCharDelayMs = 500

	thinkingPauseProb = 0.4
)

// interCharDelay samples the wait between two characters.
func (a *Assembler) interCharDelay() uint32 {
	d := a.rng.NormFloat64()*a.meanDelay/4 + a.meanDelay
	if d < minCharDelayMs {
		d = minCharDelayMs
	}
	if d > maxCharDelayMs {
		d = maxCharDelayMs
	}
	return uint32(d) + uint32(a.rng.IntN(16))
}

// holdDelay samples how long a key stays depressed.
func (a *Assembler) holdDelay() uint32 {
	return 2 + uint32(a.rng.IntN(6))
}

// punctPause samples the extra hesitation after punctuation.
func (a *Assembler) punctPause() uint32 {
	return 40 + uint32(a.rng.IntN(121))
}

// thinkingPause samples the long pause sometimes taken after a sentence
// or line. The second result is false when no pause is taken.
func (a *Assembler) thinkingPause() (uint32, bool) {
	if a.rng.Float64() >= thinkingPauseProb {
		return 0, false
	}
	return 500 + uint32(a.rng.IntN(1701)), true
}

// noticePause samples the hesitation before starting a correction.
func (a *Assembler) noticePause() uint32 {
	return 300 + uint32(a.rng.IntN(601))
}

// reviewPause samples the long read-through pause before the review
// pass.
func (a *Assembler) reviewPause() uint32 {
	return 1200 + uint32(a.rng.IntN(1801))
}

// navDelay samples the wait between navigation or backspace keystrokes.
func (a *Assembler) navDelay() uint32 {
	return 30 + uint32(a.rng.IntN(51))
}
