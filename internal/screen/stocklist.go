package screen

import (
	"time"

	"github.com/rs/zerolog"

	"stockscout/internal/market"
	"stockscout/internal/models"
	"stockscout/internal/watchlist"
)

// StockListConfig holds dependencies for the watchlist editor screen.
type StockListConfig struct {
	Store    *watchlist.Store
	Client   market.Client
	Debounce time.Duration
	Logger   zerolog.Logger

	// OnDismiss is the parent's handler for closing this screen.
	OnDismiss func()
}

// StockList is the watchlist editor: it lists the tracked stocks, removes
// entries, and owns at most one ticker search child whose selection is
// appended to the shared watchlist.
type StockList struct {
	base     reducer
	store    *watchlist.Store
	client   market.Client
	debounce time.Duration
	logger   zerolog.Logger

	onDismiss func()

	search *Search
}

// NewStockList creates the watchlist editor screen.
func NewStockList(cfg StockListConfig) *StockList {
	return &StockList{
		store:     cfg.Store,
		client:    cfg.Client,
		debounce:  cfg.Debounce,
		logger:    cfg.Logger,
		onDismiss: cfg.OnDismiss,
	}
}

// Stocks returns the tracked stocks in display order.
func (l *StockList) Stocks() []models.Stock {
	return l.store.Read()
}

// OpenAddStock presents the ticker search child and returns it.
func (l *StockList) OpenAddStock() *Search {
	l.base.lock()
	defer l.base.unlock()

	l.search = NewSearch(SearchConfig{
		Client:    l.client,
		Debounce:  l.debounce,
		Logger:    l.logger,
		OnSelect:  l.searchSelected,
		OnDismiss: l.closeSearch,
	})
	return l.search
}

// ActiveSearch returns the presented search child, or nil.
func (l *StockList) ActiveSearch() *Search {
	l.base.lock()
	defer l.base.unlock()
	return l.search
}

// searchSelected closes the search child and appends the picked stock to
// the shared watchlist unless a stock with the same ticker is already
// tracked. Adding an existing ticker is a no-op.
func (l *StockList) searchSelected(stock models.Stock) {
	l.closeSearch()

	err := l.store.Mutate(func(cur []models.Stock) []models.Stock {
		for _, existing := range cur {
			if existing.Ticker == stock.Ticker {
				return cur
			}
		}
		return append(cur, stock)
	})
	if err != nil {
		l.logger.Error().Err(err).Str("ticker", stock.Ticker).Msg("adding stock failed")
	}
}

func (l *StockList) closeSearch() {
	l.base.lock()
	defer l.base.unlock()
	l.search = nil
}

// DeleteAt removes the entries at the given display positions as one
// atomic mutation. Out-of-range positions are ignored; later entries shift
// up.
func (l *StockList) DeleteAt(indices ...int) error {
	return l.store.Mutate(func(cur []models.Stock) []models.Stock {
		doomed := make(map[int]bool, len(indices))
		for _, i := range indices {
			if i >= 0 && i < len(cur) {
				doomed[i] = true
			}
		}
		if len(doomed) == 0 {
			return cur
		}

		kept := cur[:0]
		for i, stock := range cur {
			if !doomed[i] {
				kept = append(kept, stock)
			}
		}
		return kept
	})
}

// Dismiss signals the parent to close this screen, discarding any search
// child still presented.
func (l *StockList) Dismiss() {
	l.base.lock()
	child := l.search
	l.search = nil
	l.base.unlock()

	if child != nil {
		child.debounce.Cancel()
	}
	if l.onDismiss != nil {
		l.onDismiss()
	}
}
