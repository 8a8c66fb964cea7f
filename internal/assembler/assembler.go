package assembler

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/drafter/internal/config"
	"github.com/dshills/drafter/internal/editor"
	"github.com/dshills/drafter/internal/keymap"
	"github.com/dshills/drafter/internal/plan"
	"github.com/dshills/drafter/internal/token"
	"github.com/dshills/drafter/internal/variant"
)

// seedStream decorrelates the PCG's second state word from the seed.
const seedStream = 0x9e3779b97f4a7c15

// phraseMatch is a validated alternative anchored at a draft rune
// offset. end is the rune offset just past the original text.
type phraseMatch struct {
	original    string
	alternative string
	end         int
}

// Assembler owns all mutable state for one planning run.
type Assembler struct {
	cfg     config.Config
	profile editor.Profile
	rng     *rand.Rand
	engine  *variant.Engine
	model   *editor.Model
	queue   variant.Queue

	actions []plan.Action

	shiftHeld bool
	ctrlHeld  bool
	firstKey  bool

	pendingDoubleSpace bool
	lastCommitted      rune

	phrases   map[int]phraseMatch
	meanDelay float64
	targetWPM uint32
}

// Build plans the full action stream for draft and verifies it. alts
// must already be validated; keymapPayload is attached to the header
// opaque. The returned plan reproduces draft exactly when replayed.
func Build(draft string, cfg config.Config, alts map[int][]variant.Alternative, keymapPayload string) (*plan.Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tokens, err := token.Tokenize(draft)
	if err != nil {
		return nil, err
	}
	profile, err := editor.ParseProfile(cfg.WordNavProfile)
	if err != nil {
		return nil, err
	}

	smart := token.HasSmartQuotes(draft)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^seedStream))

	a := &Assembler{
		cfg:     cfg,
		profile: profile,
		rng:     rng,
		model:   editor.NewModel(smart),
		phrases: buildPhraseIndex(draft, alts),
	}
	a.targetWPM = cfg.WPMMin
	if cfg.WPMMax > cfg.WPMMin {
		a.targetWPM += uint32(rng.IntN(int(cfg.WPMMax-cfg.WPMMin) + 1))
	}
	a.meanDelay = 12000 / float64(a.targetWPM)
	a.engine = variant.NewEngine(rng, cfg.ErrorRate, cfg.ImmediateFixRate)

	if err := a.run(tokens); err != nil {
		return nil, err
	}
	if err := a.review(); err != nil {
		return nil, err
	}
	a.releaseShift()
	a.releaseCtrl()

	p := &plan.Plan{
		Header: plan.Header{
			ID:          planID(draft, cfg.Seed),
			Keymap:      keymapPayload,
			Config:      cfg.Echo(),
			SmartQuotes: smart,
		},
		Actions: a.actions,
	}
	if err := plan.Verify(p, draft); err != nil {
		return nil, err
	}
	return p, nil
}

// planID derives a stable identifier so equal inputs yield a
// byte-identical plan.
func planID(draft string, seed uint64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "drafter:%d:%s", seed, draft)).String()
}

// emit appends one action to the plan under construction.
func (a *Assembler) emit(act plan.Action) {
	a.actions = append(a.actions, act)
}

// run types the whole draft, injecting and repairing divergences.
func (a *Assembler) run(tokens []token.Token) error {
	ti := 0
	for ti < len(tokens) {
		t := tokens[ti]

		if t.Kind == token.Word {
			if m, ok := a.phrases[t.Start]; ok {
				delete(a.phrases, t.Start)
				if err := a.typePhrase(m); err != nil {
					return err
				}
				// Resume past the replaced original, typing the tail of
				// a token the original ends inside of.
				for ti < len(tokens) && tokens[ti].End <= m.end {
					ti++
				}
				if ti < len(tokens) && tokens[ti].Start < m.end {
					tail := []rune(tokens[ti].Text)[m.end-tokens[ti].Start:]
					if err := a.typeRun(string(tail), true); err != nil {
						return err
					}
					ti++
				}
				continue
			}
			nextIsSpace := ti+1 < len(tokens) && tokens[ti+1].Kind == token.Space
			if err := a.typeWord(t, nextIsSpace); err != nil {
				return err
			}
			ti++
			continue
		}

		if err := a.typeSeparator(t); err != nil {
			return err
		}
		ti++
	}
	return nil
}

// typeWord types one word, possibly as a deliberate wrong variant.
func (a *Assembler) typeWord(t token.Token, nextIsSpace bool) error {
	div, ok := a.engine.Pick(t.Text, nextIsSpace)
	if ok && div.Kind == variant.KindDoubleSpace {
		a.pendingDoubleSpace = true
		ok = false
	}
	if !ok || div.Wrong == t.Text {
		return a.typeRun(t.Text, true)
	}

	wrongStart := a.model.Cursor()
	if err := a.typeRun(div.Wrong, false); err != nil {
		return err
	}
	horizon, _ := a.engine.FixHorizon()
	a.queue.Add(&variant.Outstanding{
		Start:         wrongStart,
		Wrong:         a.model.Slice(wrongStart, a.model.Cursor()),
		Correct:       t.Text,
		FixAfterChars: horizon,
		Constraint:    variant.ConstraintFor(div.Kind),
	})
	return a.checkFixes()
}

// typePhrase types a supplied alternative in place of the original
// draft text and registers the boundary-constrained correction.
func (a *Assembler) typePhrase(m phraseMatch) error {
	wrongStart := a.model.Cursor()
	if err := a.typeRun(m.alternative, false); err != nil {
		return err
	}
	horizon, _ := a.engine.FixHorizon()
	a.queue.Add(&variant.Outstanding{
		Start:         wrongStart,
		Wrong:         a.model.Slice(wrongStart, a.model.Cursor()),
		Correct:       m.original,
		FixAfterChars: horizon,
		Constraint:    variant.SentenceOrParagraphBoundary,
	})
	return a.checkFixes()
}

// typeSeparator types a space, punctuation, or newline token, emitting
// a pending doubled space after the word's trailing separator.
func (a *Assembler) typeSeparator(t token.Token) error {
	if err := a.typeRun(t.Text, true); err != nil {
		return err
	}
	if t.Kind != token.Space || !a.pendingDoubleSpace {
		return nil
	}
	a.pendingDoubleSpace = false
	extraStart := a.model.Cursor()
	if err := a.typeChar(' ', false); err != nil {
		return err
	}
	horizon, _ := a.engine.FixHorizon()
	a.queue.Add(&variant.Outstanding{
		Start:         extraStart,
		Wrong:         " ",
		Correct:       "",
		FixAfterChars: horizon,
		Constraint:    variant.Anywhere,
	})
	return a.checkFixes()
}

// typeRun feeds a string through the per-character pipeline. commit
// marks characters that advance the draft (as opposed to wrong variants
// and correction retypes).
func (a *Assembler) typeRun(s string, commit bool) error {
	for _, ch := range s {
		if err := a.typeChar(ch, commit); err != nil {
			return err
		}
	}
	return nil
}

// typeChar emits the key events for one character and mirrors it on the
// live model. Committed characters advance fix horizons, add the
// punctuation pauses, and may dispatch pending corrections.
func (a *Assembler) typeChar(ch rune, commit bool) error {
	ks, ok := keymap.Lookup(ch)
	if !ok {
		return fmt.Errorf("%q: %w", ch, ErrUntypeable)
	}
	if a.firstKey {
		a.emit(plan.Wait(a.interCharDelay()))
	}
	if ks.Shift {
		a.pressShift()
	} else {
		a.releaseShift()
	}
	a.tap(ks.Code)
	a.model.Insert(ch)

	if !commit {
		return nil
	}
	a.lastCommitted = ch
	a.queue.Tick()

	switch ch {
	case ',', ';', ':':
		a.emit(plan.Wait(a.punctPause()))
	case '.', '!', '?':
		a.emit(plan.Wait(a.punctPause()))
		if p, ok := a.thinkingPause(); ok {
			a.emit(plan.Wait(p))
		}
	case '\n':
		if p, ok := a.thinkingPause(); ok {
			a.emit(plan.Wait(p))
		}
	}
	return a.checkFixes()
}

// atBoundary reports whether typing currently sits at a sentence or
// paragraph boundary, where boundary-constrained fixes may dispatch.
func (a *Assembler) atBoundary() bool {
	switch a.lastCommitted {
	case '.', '!', '?', '\n':
		return true
	default:
		return false
	}
}

// checkFixes dispatches every eligible correction, rightmost first.
func (a *Assembler) checkFixes() error {
	for _, o := range a.queue.Eligible(a.atBoundary()) {
		if err := a.fix(o); err != nil {
			return err
		}
	}
	return nil
}

// fix repairs one outstanding correction: navigate back to the end of
// the wrong run, backspace it away, retype the correct text, and return
// to the end of the buffer.
func (a *Assembler) fix(o *variant.Outstanding) error {
	a.releaseShift()
	a.emit(plan.Wait(a.noticePause()))

	wrongLen := utf8.RuneCountInString(o.Wrong)
	target := o.Start + wrongLen
	a.navigateTo(target)

	if got := a.model.Slice(o.Start, target); got != o.Wrong {
		return fmt.Errorf("correction at %d desynchronized: buffer %q, recorded %q: %w",
			o.Start, got, o.Wrong, ErrInternal)
	}

	for i := 0; i < wrongLen; i++ {
		a.emit(plan.Wait(a.navDelay()))
		a.tap(keymap.KeyBackspace)
		a.model.Backspace()
	}
	for _, ch := range o.Correct {
		if err := a.typeChar(ch, false); err != nil {
			return err
		}
	}
	a.releaseShift()

	a.queue.Remove(o)
	a.queue.ShiftAfter(o.Start, utf8.RuneCountInString(o.Correct)-wrongLen)
	a.navigateTo(a.model.Len())
	return nil
}

// review clears every correction still outstanding after the last draft
// character, then asserts the queue drained.
func (a *Assembler) review() error {
	if a.queue.Len() == 0 {
		return nil
	}
	a.releaseShift()
	a.emit(plan.Wait(a.reviewPause()))
	for _, o := range a.queue.All() {
		if err := a.fix(o); err != nil {
			return err
		}
	}
	if a.queue.Len() != 0 {
		return ErrUnfixedErrors
	}
	return nil
}

// buildPhraseIndex anchors each validated alternative at the draft rune
// offset where its original begins. Originals not starting at a word
// token simply never trigger.
func buildPhraseIndex(draft string, alts map[int][]variant.Alternative) map[int]phraseMatch {
	out := make(map[int]phraseMatch)
	if len(alts) == 0 {
		return out
	}
	paras := variant.SplitParagraphs(draft)
	offsets := make([]int, len(paras))
	off := 0
	for i, p := range paras {
		offsets[i] = off
		off += utf8.RuneCountInString(p) + 2
	}
	for idx, list := range alts {
		if idx >= len(paras) {
			continue
		}
		for _, alt := range list {
			b := strings.Index(paras[idx], alt.Original)
			if b < 0 {
				continue
			}
			start := offsets[idx] + utf8.RuneCountInString(paras[idx][:b])
			out[start] = phraseMatch{
				original:    alt.Original,
				alternative: alt.Alternative,
				end:         start + utf8.RuneCountInString(alt.Original),
			}
		}
	}
	return out
}
