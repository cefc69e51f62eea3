package market

import (
	"context"
	"fmt"
	"sync"

	"stockscout/internal/models"
)

// Fake implements the Client interface with per-operation function fields
// for tests and offline use. Operations without a configured function fail.
// Every call is recorded and can be inspected afterwards.
type Fake struct {
	DailyFunc         func(ctx context.Context, ticker string) (models.Daily, error)
	MovingAverageFunc func(ctx context.Context, ticker string) ([]models.MovingAverage, error)
	TickerDetailsFunc func(ctx context.Context, ticker string) (models.Ticker, error)
	SearchFunc        func(ctx context.Context, query string) ([]models.Stock, error)

	mu    sync.Mutex
	calls []Call
}

// Call records one operation invocation.
type Call struct {
	Op  string
	Arg string
}

func (f *Fake) record(op, arg string) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Op: op, Arg: arg})
	f.mu.Unlock()
}

// Calls returns a copy of all recorded calls in invocation order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsFor returns the arguments of all recorded calls for one operation.
func (f *Fake) CallsFor(op string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c.Op == op {
			out = append(out, c.Arg)
		}
	}
	return out
}

// GetDaily calls DailyFunc.
func (f *Fake) GetDaily(ctx context.Context, ticker string) (models.Daily, error) {
	f.record("daily", ticker)
	if f.DailyFunc == nil {
		return models.Daily{}, fmt.Errorf("fake: GetDaily not configured")
	}
	return f.DailyFunc(ctx, ticker)
}

// GetMovingAverage calls MovingAverageFunc.
func (f *Fake) GetMovingAverage(ctx context.Context, ticker string) ([]models.MovingAverage, error) {
	f.record("sma", ticker)
	if f.MovingAverageFunc == nil {
		return nil, fmt.Errorf("fake: GetMovingAverage not configured")
	}
	return f.MovingAverageFunc(ctx, ticker)
}

// GetTickerDetails calls TickerDetailsFunc.
func (f *Fake) GetTickerDetails(ctx context.Context, ticker string) (models.Ticker, error) {
	f.record("details", ticker)
	if f.TickerDetailsFunc == nil {
		return models.Ticker{}, fmt.Errorf("fake: GetTickerDetails not configured")
	}
	return f.TickerDetailsFunc(ctx, ticker)
}

// SearchStocks calls SearchFunc.
func (f *Fake) SearchStocks(ctx context.Context, query string) ([]models.Stock, error) {
	f.record("search", query)
	if f.SearchFunc == nil {
		return nil, fmt.Errorf("fake: SearchStocks not configured")
	}
	return f.SearchFunc(ctx, query)
}
