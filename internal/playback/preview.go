package playback

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/drafter/internal/plan"
)

// PreviewPlayer rehearses a plan by typing it into a tcell screen,
// honoring every wait. It lets a user watch the exact rhythm and
// corrections a run would produce before pointing the real backends at
// an editor.
type PreviewPlayer struct {
	screen tcell.Screen

	// Speed divides every wait; 1 is real time.
	Speed uint32
}

// NewPreviewPlayer creates a preview on a fresh terminal screen.
func NewPreviewPlayer() (*PreviewPlayer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &PreviewPlayer{screen: screen, Speed: 1}, nil
}

// Play replays the plan into the terminal. Esc or Ctrl+C aborts, as
// does ctx cancellation; either way the screen is restored.
func (pp *PreviewPlayer) Play(ctx context.Context, p *plan.Plan) error {
	if err := pp.screen.Init(); err != nil {
		return err
	}
	defer pp.screen.Fini()

	abort := make(chan struct{})
	go func() {
		for {
			ev := pp.screen.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
					close(abort)
					return
				}
			}
		}
	}()

	speed := pp.Speed
	if speed == 0 {
		speed = 1
	}

	r := plan.NewReplayer(p.Header.SmartQuotes)
	pp.draw(r)
	for _, a := range p.Actions {
		select {
		case <-ctx.Done():
			return ErrAborted
		case <-abort:
			return ErrAborted
		default:
		}

		if a.Kind == plan.ActionWait {
			select {
			case <-time.After(time.Duration(a.Ms/speed) * time.Millisecond):
			case <-ctx.Done():
				return ErrAborted
			case <-abort:
				return ErrAborted
			}
			continue
		}
		if err := r.Step(a); err != nil {
			return err
		}
		if a.Kind == plan.ActionKey {
			pp.draw(r)
		}
	}
	return nil
}

// draw renders the replayed buffer with a visible cursor.
func (pp *PreviewPlayer) draw(r *plan.Replayer) {
	pp.screen.Clear()
	style := tcell.StyleDefault

	x, y := 0, 0
	cursor := r.Cursor()
	for i, ch := range r.Text() {
		if i == cursor {
			pp.screen.ShowCursor(x, y)
		}
		if ch == '\n' {
			x, y = 0, y+1
			continue
		}
		pp.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	if cursor == len([]rune(r.Text())) {
		pp.screen.ShowCursor(x, y)
	}
	pp.screen.Show()
}
