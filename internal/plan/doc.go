// Package plan defines the precomputed keyboard action stream the
// planner emits and the playback backends consume.
//
// A plan is a header plus an ordered list of actions. Actions form a
// closed variant set: timed waits, modifier-state updates, and key
// press/release events carrying Linux evdev codes. The package also
// implements plan validation (allowlist, press/release alternation,
// modifier balance) and replay against a fresh editor model, which is
// how a finished plan is verified bit-exact against its draft before
// anything is sent to a real input surface.
package plan
