package playback

import (
	"context"
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/dshills/drafter/internal/keymap"
	"github.com/dshills/drafter/internal/plan"
)

// TracePlayer renders each decoded action as one JSON line. It never
// sleeps; it exists to inspect what a plan would do.
type TracePlayer struct {
	w io.Writer
}

// NewTracePlayer returns a trace player writing to w.
func NewTracePlayer(w io.Writer) *TracePlayer {
	return &TracePlayer{w: w}
}

// Play writes one line per action, annotating key events with the
// character they produce under the current shift state.
func (t *TracePlayer) Play(ctx context.Context, p *plan.Plan) error {
	shift := false
	for i, a := range p.Actions {
		select {
		case <-ctx.Done():
			return ErrAborted
		default:
		}

		line, err := traceLine(i, a, shift)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(t.w, line); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		if a.Kind == plan.ActionKey && a.Keycode == keymap.KeyLeftShift {
			shift = a.Pressed
		}
	}
	return nil
}

// traceLine builds the JSON line for one action.
func traceLine(seq int, a plan.Action, shift bool) (string, error) {
	line, err := sjson.Set("{}", "seq", seq)
	if err != nil {
		return "", err
	}
	line, err = sjson.Set(line, "type", a.Kind.String())
	if err != nil {
		return "", err
	}
	switch a.Kind {
	case plan.ActionWait:
		line, err = sjson.Set(line, "ms", a.Ms)
	case plan.ActionModifiers:
		if line, err = sjson.Set(line, "mods_depressed", a.ModsDepressed); err != nil {
			return "", err
		}
		line, err = sjson.Set(line, "group", a.Group)
	case plan.ActionKey:
		if line, err = sjson.Set(line, "keycode", uint32(a.Keycode)); err != nil {
			return "", err
		}
		if line, err = sjson.Set(line, "pressed", a.Pressed); err != nil {
			return "", err
		}
		if a.Pressed {
			if ch, ok := keymap.Decode(a.Keycode, shift); ok {
				line, err = sjson.Set(line, "char", string(ch))
			}
		}
	}
	if err != nil {
		return "", err
	}
	return line, nil
}
