package plan

// ConfigEcho is the resolved planner configuration recorded in the plan
// header. It is a snapshot: mutating it does not affect the planner.
type ConfigEcho struct {
	WPMMin           uint32  `json:"wpm_min"`
	WPMMax           uint32  `json:"wpm_max"`
	ErrorRate        float64 `json:"error_rate"`
	ImmediateFixRate float64 `json:"immediate_fix_rate"`
	WordNavProfile   string  `json:"word_nav_profile"`
	Seed             uint64  `json:"seed"`
}

// Header carries plan identity and the data playback needs besides the
// action stream.
type Header struct {
	// ID identifies this plan. It is derived from the draft and the seed
	// only, so plans built from the same draft and seed share it.
	ID string `json:"id"`

	// Keymap is the opaque XKB keymap payload the playback backend
	// uploads before replaying. The planner never interprets it.
	Keymap string `json:"keymap"`

	// Config echoes the resolved planner configuration.
	Config ConfigEcho `json:"config"`

	// SmartQuotes records whether the plan assumes editor quote
	// auto-substitution.
	SmartQuotes bool `json:"smart_quotes"`
}

// Plan is the complete precomputed action stream.
type Plan struct {
	Header  Header   `json:"header"`
	Actions []Action `json:"actions"`
}

// Keys returns the number of key actions in the plan.
func (p *Plan) Keys() int {
	n := 0
	for _, a := range p.Actions {
		if a.Kind == ActionKey {
			n++
		}
	}
	return n
}

// Duration returns the sum of all waits in milliseconds, a lower bound
// on replay time.
func (p *Plan) Duration() uint64 {
	var total uint64
	for _, a := range p.Actions {
		if a.Kind == ActionWait {
			total += uint64(a.Ms)
		}
	}
	return total
}
