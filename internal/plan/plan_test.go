package plan

import (
	"errors"
	"testing"

	"github.com/dshills/drafter/internal/keymap"
)

func tap(code keymap.Keycode) []Action {
	return []Action{KeyDown(code), KeyUp(code)}
}

func TestEncodeDecode(t *testing.T) {
	p := &Plan{
		Header: Header{ID: "test", Keymap: "payload", Config: ConfigEcho{WPMMin: 40, WPMMax: 80, Seed: 7}},
		Actions: []Action{
			Wait(120),
			Modifiers(ShiftMask, 0, 0, 0),
			KeyDown(keymap.KeyA),
			KeyUp(keymap.KeyA),
		},
	}
	data, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Header.ID != "test" || back.Header.Keymap != "payload" {
		t.Errorf("header = %+v", back.Header)
	}
	if len(back.Actions) != 4 {
		t.Fatalf("expected 4 actions, got %d", len(back.Actions))
	}
	if back.Actions[0] != Wait(120) {
		t.Errorf("action 0 = %v", back.Actions[0])
	}
	if back.Actions[1].ModsDepressed != ShiftMask {
		t.Errorf("action 1 = %v", back.Actions[1])
	}
	if back.Actions[2] != KeyDown(keymap.KeyA) || back.Actions[3] != KeyUp(keymap.KeyA) {
		t.Errorf("key actions = %v %v", back.Actions[2], back.Actions[3])
	}
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := Decode([]byte(`{"header":{},"actions":[{"type":"mouse"}]}`))
	if err == nil {
		t.Fatal("expected error for unknown action type")
	}
}

func TestValidateAllowlist(t *testing.T) {
	p := &Plan{Actions: tap(keymap.Keycode(59))} // F1
	if err := Validate(p); !errors.Is(err, ErrKeyNotAllowed) {
		t.Errorf("Validate = %v, want ErrKeyNotAllowed", err)
	}
}

func TestValidateAlternation(t *testing.T) {
	p := &Plan{Actions: []Action{KeyDown(keymap.KeyA), KeyDown(keymap.KeyA)}}
	if err := Validate(p); !errors.Is(err, ErrKeyStateRepeat) {
		t.Errorf("Validate = %v, want ErrKeyStateRepeat", err)
	}
	p = &Plan{Actions: []Action{KeyUp(keymap.KeyA)}}
	if err := Validate(p); !errors.Is(err, ErrKeyStateRepeat) {
		t.Errorf("release while up: Validate = %v, want ErrKeyStateRepeat", err)
	}
}

func TestValidateModifierImbalance(t *testing.T) {
	p := &Plan{Actions: []Action{KeyDown(keymap.KeyLeftShift)}}
	if err := Validate(p); !errors.Is(err, ErrModifierImbalance) {
		t.Errorf("Validate = %v, want ErrModifierImbalance", err)
	}
}

func TestSimulateTyping(t *testing.T) {
	var actions []Action
	actions = append(actions, KeyDown(keymap.KeyLeftShift))
	actions = append(actions, tap(keymap.KeyH)...)
	actions = append(actions, KeyUp(keymap.KeyLeftShift))
	actions = append(actions, tap(keymap.KeyI)...)
	actions = append(actions, Wait(200))
	actions = append(actions, tap(keymap.Key1)...)

	got, err := Simulate(actions, false)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got != "Hi1" {
		t.Errorf("Simulate = %q, want \"Hi1\"", got)
	}
}

func TestSimulateEditing(t *testing.T) {
	var actions []Action
	for _, code := range []keymap.Keycode{keymap.KeyA, keymap.KeyB, keymap.KeyC} {
		actions = append(actions, tap(code)...)
	}
	actions = append(actions, tap(keymap.KeyBackspace)...)
	actions = append(actions, tap(keymap.KeyLeft)...)
	actions = append(actions, tap(keymap.KeyX)...)
	actions = append(actions, tap(keymap.KeyEnd)...)
	actions = append(actions, tap(keymap.KeyD)...)

	got, err := Simulate(actions, false)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got != "axbd" {
		t.Errorf("Simulate = %q, want \"axbd\"", got)
	}
}

func TestSimulateCtrlArrows(t *testing.T) {
	var actions []Action
	for _, ch := range "ab cd" {
		ks, _ := keymap.Lookup(ch)
		actions = append(actions, tap(ks.Code)...)
	}
	actions = append(actions, KeyDown(keymap.KeyLeftCtrl))
	actions = append(actions, tap(keymap.KeyLeft)...)
	actions = append(actions, KeyUp(keymap.KeyLeftCtrl))
	actions = append(actions, tap(keymap.KeyX)...)

	got, err := Simulate(actions, false)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got != "ab xcd" {
		t.Errorf("Simulate = %q, want \"ab xcd\"", got)
	}
}

func TestVerifyMatch(t *testing.T) {
	p := &Plan{Actions: append(tap(keymap.KeyH), tap(keymap.KeyI)...)}
	if err := Verify(p, "hi"); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyMismatch(t *testing.T) {
	p := &Plan{Actions: tap(keymap.KeyH)}
	err := Verify(p, "hi")
	if !errors.Is(err, ErrVerificationMismatch) {
		t.Errorf("Verify = %v, want ErrVerificationMismatch", err)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	p := &Plan{Actions: append(tap(keymap.KeyH), tap(keymap.KeyI)...)}
	first := Verify(p, "hi")
	second := Verify(p, "hi")
	if (first == nil) != (second == nil) {
		t.Errorf("verification not idempotent: %v then %v", first, second)
	}
}

func TestPlanStats(t *testing.T) {
	p := &Plan{Actions: []Action{Wait(100), Wait(50), KeyDown(keymap.KeyA), KeyUp(keymap.KeyA)}}
	if p.Duration() != 150 {
		t.Errorf("Duration = %d, want 150", p.Duration())
	}
	if p.Keys() != 2 {
		t.Errorf("Keys = %d, want 2", p.Keys())
	}
}
