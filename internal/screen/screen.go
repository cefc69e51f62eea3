// Package screen implements the state machines behind each screen of the
// application: watchlist summary, stock details, the watchlist editor and
// ticker search.
//
// Each screen owns a slice of view state and reduces events against it one
// at a time: user intents are exported methods, completed network effects
// re-enter through unexported appliers, and both mutate state only while
// holding the screen's reduction lock. Effects themselves run concurrently
// in goroutines and never block a reduction. Completion order within a
// fan-out is unconstrained, so every applier is idempotent on its identity
// (symbol or channel).
package screen

import "sync"

// reducer serializes state reductions for one screen instance. No two
// reductions for the same screen run concurrently.
type reducer struct {
	mu sync.Mutex
}

func (r *reducer) lock()   { r.mu.Lock() }
func (r *reducer) unlock() { r.mu.Unlock() }
