package playback

import (
	"context"
	"errors"

	"github.com/dshills/drafter/internal/plan"
)

// ErrAborted is returned when a replay stops early on context
// cancellation. The trace and preview players in this package send no
// key events to a real input surface; they return it without emitting
// any modifier release.
var ErrAborted = errors.New("playback aborted")

// Player replays a plan's actions in strict list order.
type Player interface {
	// Play replays the plan. It returns ErrAborted when ctx is
	// cancelled mid-replay.
	Play(ctx context.Context, p *plan.Plan) error
}
