package playback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/drafter/internal/keymap"
	"github.com/dshills/drafter/internal/plan"
)

func testPlan() *plan.Plan {
	return &plan.Plan{
		Actions: []plan.Action{
			plan.KeyDown(keymap.KeyLeftShift),
			plan.Modifiers(plan.ShiftMask, 0, 0, 0),
			plan.KeyDown(keymap.KeyH),
			plan.KeyUp(keymap.KeyH),
			plan.KeyUp(keymap.KeyLeftShift),
			plan.Wait(150),
			plan.KeyDown(keymap.KeyI),
			plan.KeyUp(keymap.KeyI),
		},
	}
}

func TestTracePlayerOutput(t *testing.T) {
	var sb strings.Builder
	tp := NewTracePlayer(&sb)
	if err := tp.Play(context.Background(), testPlan()); err != nil {
		t.Fatalf("Play: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !gjson.Valid(line) {
			t.Fatalf("line %d is not JSON: %s", i, line)
		}
		if int(gjson.Get(line, "seq").Int()) != i {
			t.Errorf("line %d seq = %s", i, gjson.Get(line, "seq"))
		}
	}

	// The H press happens with Shift held, so it decodes uppercase.
	h := lines[2]
	if gjson.Get(h, "type").String() != "key" || gjson.Get(h, "char").String() != "H" {
		t.Errorf("H press line = %s", h)
	}
	// The I press happens after the release and decodes lowercase.
	i := lines[6]
	if gjson.Get(i, "char").String() != "i" {
		t.Errorf("i press line = %s", i)
	}
	// Waits carry their duration.
	w := lines[5]
	if gjson.Get(w, "type").String() != "wait" || gjson.Get(w, "ms").Int() != 150 {
		t.Errorf("wait line = %s", w)
	}
	// Releases carry no char.
	if gjson.Get(lines[3], "char").Exists() {
		t.Errorf("release line should not decode a char: %s", lines[3])
	}
}

func TestTracePlayerAbort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var sb strings.Builder
	err := NewTracePlayer(&sb).Play(ctx, testPlan())
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Play = %v, want ErrAborted", err)
	}
}
