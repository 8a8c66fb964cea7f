package plan

import (
	"encoding/json"
	"fmt"

	"github.com/dshills/drafter/internal/keymap"
)

// actionJSON is the wire form of an Action. Type selects which of the
// remaining fields are present.
type actionJSON struct {
	Type string `json:"type"`

	Ms *uint32 `json:"ms,omitempty"`

	ModsDepressed *uint32 `json:"mods_depressed,omitempty"`
	ModsLatched   *uint32 `json:"mods_latched,omitempty"`
	ModsLocked    *uint32 `json:"mods_locked,omitempty"`
	Group         *uint32 `json:"group,omitempty"`

	Keycode *uint32 `json:"keycode,omitempty"`
	Pressed *bool   `json:"pressed,omitempty"`
}

// MarshalJSON encodes the action as a type-tagged object.
func (a Action) MarshalJSON() ([]byte, error) {
	out := actionJSON{Type: a.Kind.String()}
	switch a.Kind {
	case ActionWait:
		out.Ms = &a.Ms
	case ActionModifiers:
		out.ModsDepressed = &a.ModsDepressed
		out.ModsLatched = &a.ModsLatched
		out.ModsLocked = &a.ModsLocked
		out.Group = &a.Group
	case ActionKey:
		code := uint32(a.Keycode)
		out.Keycode = &code
		out.Pressed = &a.Pressed
	default:
		return nil, fmt.Errorf("cannot encode action kind %d", a.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a type-tagged action object.
func (a *Action) UnmarshalJSON(data []byte) error {
	var in actionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Type {
	case "wait":
		if in.Ms == nil {
			return fmt.Errorf("wait action missing ms")
		}
		*a = Wait(*in.Ms)
	case "modifiers":
		if in.ModsDepressed == nil || in.ModsLatched == nil || in.ModsLocked == nil || in.Group == nil {
			return fmt.Errorf("modifiers action missing fields")
		}
		*a = Modifiers(*in.ModsDepressed, *in.ModsLatched, *in.ModsLocked, *in.Group)
	case "key":
		if in.Keycode == nil || in.Pressed == nil {
			return fmt.Errorf("key action missing fields")
		}
		*a = Action{Kind: ActionKey, Keycode: keymap.Keycode(*in.Keycode), Pressed: *in.Pressed}
	default:
		return fmt.Errorf("unknown action type %q", in.Type)
	}
	return nil
}

// Encode serializes the plan as indented JSON.
func Encode(p *Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Decode parses a serialized plan.
func Decode(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}
