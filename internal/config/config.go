package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/drafter/internal/plan"
)

// Alternative-validation policies.
const (
	// PolicyFallback drops a paragraph's suggestions on validation
	// failure and continues planning.
	PolicyFallback = "fallback"
	// PolicyError aborts planning on the first invalid suggestion.
	PolicyError = "error"
)

// Word-navigation profile names. Parsing happens in the editor package;
// config only checks membership.
const (
	ProfileChrome     = "chrome"
	ProfileCompatible = "compatible"
)

// Config is the planner's run configuration.
type Config struct {
	// WPMMin and WPMMax bound the typing speed drawn at run start.
	WPMMin uint32 `toml:"wpm_min"`
	WPMMax uint32 `toml:"wpm_max"`

	// ErrorRate is the per-word probability of a deliberate divergence.
	ErrorRate float64 `toml:"error_rate"`

	// ImmediateFixRate is the probability a divergence is corrected
	// right away instead of after a delayed horizon.
	ImmediateFixRate float64 `toml:"immediate_fix_rate"`

	// WordNavProfile selects Ctrl+Arrow prediction: "chrome" or
	// "compatible".
	WordNavProfile string `toml:"word_nav_profile"`

	// Seed seeds the PRNG. Equal inputs and seed produce a
	// byte-identical plan.
	Seed uint64 `toml:"seed"`

	// OnInvalidAlternatives is "fallback" or "error".
	OnInvalidAlternatives string `toml:"on_invalid_alternatives"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		WPMMin:                45,
		WPMMax:                75,
		ErrorRate:             0.08,
		ImmediateFixRate:      0.6,
		WordNavProfile:        ProfileChrome,
		Seed:                  0,
		OnInvalidAlternatives: PolicyFallback,
	}
}

// Load reads a TOML configuration file over the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, &ParseError{Path: path, Err: err}
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks every setting and returns the first failure.
func (c Config) Validate() error {
	if c.WPMMin < 10 || c.WPMMin > 300 {
		return &ValidationError{Setting: "wpm_min", Message: "must be in [10, 300]", Value: c.WPMMin, Code: ErrCodeOutOfRange}
	}
	if c.WPMMax < 10 || c.WPMMax > 300 {
		return &ValidationError{Setting: "wpm_max", Message: "must be in [10, 300]", Value: c.WPMMax, Code: ErrCodeOutOfRange}
	}
	if c.WPMMin > c.WPMMax {
		return &ValidationError{Setting: "wpm_min", Message: "must not exceed wpm_max", Value: c.WPMMin, Code: ErrCodeInconsistent}
	}
	if c.ErrorRate < 0 || c.ErrorRate > 1 {
		return &ValidationError{Setting: "error_rate", Message: "must be in [0, 1]", Value: c.ErrorRate, Code: ErrCodeOutOfRange}
	}
	if c.ImmediateFixRate < 0 || c.ImmediateFixRate > 1 {
		return &ValidationError{Setting: "immediate_fix_rate", Message: "must be in [0, 1]", Value: c.ImmediateFixRate, Code: ErrCodeOutOfRange}
	}
	switch c.WordNavProfile {
	case ProfileChrome, ProfileCompatible:
	default:
		return &ValidationError{Setting: "word_nav_profile", Message: "must be chrome or compatible", Value: c.WordNavProfile, Code: ErrCodeInvalidEnum}
	}
	switch c.OnInvalidAlternatives {
	case PolicyFallback, PolicyError:
	default:
		return &ValidationError{Setting: "on_invalid_alternatives", Message: "must be fallback or error", Value: c.OnInvalidAlternatives, Code: ErrCodeInvalidEnum}
	}
	return nil
}

// Echo returns the snapshot recorded in a plan header.
func (c Config) Echo() plan.ConfigEcho {
	return plan.ConfigEcho{
		WPMMin:           c.WPMMin,
		WPMMax:           c.WPMMax,
		ErrorRate:        c.ErrorRate,
		ImmediateFixRate: c.ImmediateFixRate,
		WordNavProfile:   c.WordNavProfile,
		Seed:             c.Seed,
	}
}
