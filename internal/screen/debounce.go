package screen

import (
	"context"
	"sync"
	"time"
)

// debouncer is a single-slot effect scheduler. Scheduling a new effect
// supersedes the previous one: a pending timer is stopped and an in-flight
// run's context is cancelled, so a superseded effect never delivers a
// result. The slot is fixed, which keeps overlapping effects from
// interleaving.
type debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window}
}

// Schedule arranges for fn to run once the idle window elapses without
// another Schedule call. fn receives a context that is cancelled when a
// later Schedule or Cancel supersedes it; fn must check it before applying
// results.
func (d *debouncer) Schedule(fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		fn(ctx)
	})
}

// Cancel discards any pending or in-flight effect.
func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *debouncer) cancelLocked() {
	if d.timer != nil {
		if d.timer.Stop() {
			// Timer never fired, so fn will not run.
			d.wg.Done()
		}
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Wait blocks until every scheduled effect has either run or been
// discarded before firing.
func (d *debouncer) Wait() {
	d.wg.Wait()
}
