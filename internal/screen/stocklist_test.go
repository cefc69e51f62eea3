package screen

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"stockscout/internal/market"
	"stockscout/internal/models"
)

func newTestStockList(t *testing.T, fake *market.Fake, stocks ...models.Stock) *StockList {
	t.Helper()
	if fake == nil {
		fake = &market.Fake{}
	}
	return NewStockList(StockListConfig{
		Store:    testStore(t, stocks...),
		Client:   fake,
		Debounce: testDebounce,
		Logger:   zerolog.Nop(),
	})
}

func TestSearchSelectionAddsStock(t *testing.T) {
	l := newTestStockList(t, nil)

	search := l.OpenAddStock()
	if l.ActiveSearch() != search {
		t.Fatal("search child not presented")
	}

	search.Select(models.Stock{Name: "Apple Inc.", Ticker: "AAPL"})

	if l.ActiveSearch() != nil {
		t.Error("search child still presented after selection")
	}
	got := l.Stocks()
	if len(got) != 1 || got[0].Ticker != "AAPL" {
		t.Errorf("Stocks = %v, want AAPL entry", got)
	}
}

func TestSearchSelectionDedupesByTicker(t *testing.T) {
	existing := models.Stock{Name: "Apple Inc.", Ticker: "AAPL"}
	l := newTestStockList(t, nil, existing)

	// Same ticker, different display name: still the same identity.
	l.OpenAddStock().Select(models.Stock{Name: "Apple", Ticker: "AAPL"})

	got := l.Stocks()
	if len(got) != 1 {
		t.Fatalf("Stocks = %v, want single entry", got)
	}
	if got[0] != existing {
		t.Errorf("existing entry replaced: %v", got[0])
	}
}

func TestDeleteAt(t *testing.T) {
	stocks := []models.Stock{
		{Name: "Apple", Ticker: "AAPL"},
		{Name: "Microsoft", Ticker: "MSFT"},
		{Name: "Alphabet", Ticker: "GOOG"},
		{Name: "Amazon", Ticker: "AMZN"},
	}

	tests := []struct {
		name    string
		indices []int
		want    []string
	}{
		{"single", []int{1}, []string{"AAPL", "GOOG", "AMZN"}},
		{"multiple at once", []int{0, 2}, []string{"MSFT", "AMZN"}},
		{"unordered indices", []int{3, 0}, []string{"MSFT", "GOOG"}},
		{"out of range ignored", []int{1, 99, -1}, []string{"AAPL", "GOOG", "AMZN"}},
		{"all", []int{0, 1, 2, 3}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestStockList(t, nil, stocks...)
			if err := l.DeleteAt(tt.indices...); err != nil {
				t.Fatalf("DeleteAt: %v", err)
			}

			got := make([]string, 0)
			for _, s := range l.Stocks() {
				got = append(got, s.Ticker)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("after delete %v: %v, want %v", tt.indices, got, tt.want)
			}
		})
	}
}

func TestDismissSignalsParentAndClosesSearch(t *testing.T) {
	dismissed := false
	l := NewStockList(StockListConfig{
		Store:     testStore(t),
		Client:    &market.Fake{},
		Debounce:  testDebounce,
		Logger:    zerolog.Nop(),
		OnDismiss: func() { dismissed = true },
	})

	l.OpenAddStock()
	l.Dismiss()

	if !dismissed {
		t.Error("parent not signalled")
	}
	if l.ActiveSearch() != nil {
		t.Error("search child survived dismiss")
	}
}

func TestAddStockFlowThroughSearch(t *testing.T) {
	fake := &market.Fake{
		SearchFunc: func(_ context.Context, query string) ([]models.Stock, error) {
			return []models.Stock{{Name: "Apple Inc.", Ticker: "AAPL"}}, nil
		},
	}
	l := newTestStockList(t, fake)

	search := l.OpenAddStock()
	search.SetQuery("apple")
	search.Wait()

	results := search.State().Results
	if len(results) != 1 {
		t.Fatalf("Results = %v, want one", results)
	}
	search.Select(results[0])

	got := l.Stocks()
	if len(got) != 1 || got[0].Ticker != "AAPL" {
		t.Errorf("Stocks = %v, want AAPL", got)
	}
}
