// Package assembler builds the complete keyboard action plan for a
// draft.
//
// The assembler walks the draft token by token, pushing key events and
// waits onto the plan while mirroring every effect on a live editor
// model. The variation engine injects deliberate divergences; each one
// is tracked as an outstanding correction and repaired either
// immediately or after a delayed horizon, with cursor navigation
// predicted against the live model. A review pass clears whatever is
// left, and the finished plan is verified by replaying it against a
// fresh model before it is accepted.
//
// All mutable state for a run (model, correction queue, modifier state,
// PRNG) is owned by one Assembler instance; planning is strictly
// single-threaded and, for a fixed seed, byte-deterministic.
package assembler
