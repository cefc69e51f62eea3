package screen

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerRunsOnlyLastScheduled(t *testing.T) {
	d := newDebouncer(testDebounce)

	var first, second atomic.Int32
	d.Schedule(func(ctx context.Context) { first.Add(1) })
	d.Schedule(func(ctx context.Context) { second.Add(1) })
	d.Wait()

	if first.Load() != 0 {
		t.Error("superseded effect ran")
	}
	if second.Load() != 1 {
		t.Error("last effect did not run")
	}
}

func TestDebouncerCancelDiscardsPending(t *testing.T) {
	d := newDebouncer(testDebounce)

	var ran atomic.Int32
	d.Schedule(func(ctx context.Context) { ran.Add(1) })
	d.Cancel()
	d.Wait()

	if ran.Load() != 0 {
		t.Error("cancelled effect ran")
	}
}

func TestDebouncerCancelsInFlightContext(t *testing.T) {
	d := newDebouncer(time.Millisecond)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	d.Schedule(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})

	<-started
	d.Cancel()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight context not cancelled")
	}
	d.Wait()
}
