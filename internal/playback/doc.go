// Package playback defines the contract a plan consumer honors and two
// in-repo players: a JSON-lines trace writer and a tcell terminal
// preview that rehearses a plan without touching a real input surface.
//
// The real compositor and X11 backends live outside this repository;
// they consume the same contract. Actions replay in strict list order, a
// wait sleeps at least its duration, and an aborted replay must restore
// a neutral modifier state before returning.
package playback
