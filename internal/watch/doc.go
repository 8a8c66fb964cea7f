// Package watch monitors the draft and alternatives files so watch mode
// can replan when either changes.
//
// Events are debounced: editors often emit several writes in quick
// succession for one save, and replanning is cheap but not free.
package watch
