package screen

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"stockscout/internal/errors"
	"stockscout/internal/logging"
	"stockscout/internal/market"
	"stockscout/internal/models"
	"stockscout/internal/watchlist"
)

// Destination identifies the summary screen's active child screen. At most
// one child is presented at a time.
type Destination int

const (
	DestinationNone Destination = iota
	DestinationDetails
	DestinationStocks
)

// SummaryState is the view state of the watchlist summary screen.
type SummaryState struct {
	Stocks      []models.Stock
	Dailies     []models.Daily
	Alert       string
	Destination Destination
}

// Daily returns the loaded snapshot for one symbol, if any. The view shows
// a placeholder for symbols still loading.
func (s SummaryState) Daily(symbol string) (models.Daily, bool) {
	for _, d := range s.Dailies {
		if d.Symbol == symbol {
			return d, true
		}
	}
	return models.Daily{}, false
}

// SummaryConfig holds dependencies for the summary screen.
type SummaryConfig struct {
	Store    *watchlist.Store
	Client   market.Client
	Debounce time.Duration // search debounce handed down to the editor child
	Logger   zerolog.Logger
}

// Summary is the entry screen: one row per tracked stock with its daily
// price change. Refresh fans out one snapshot fetch per stock; all fetches
// start together, complete in any order, and reconcile incrementally into
// the snapshot list. One symbol's failure never blocks the others.
type Summary struct {
	base     reducer
	store    *watchlist.Store
	client   market.Client
	debounce time.Duration
	logger   zerolog.Logger

	dailies     []models.Daily
	alert       string
	destination Destination
	details     *Details
	editor      *StockList

	effects sync.WaitGroup
}

// NewSummary creates the summary screen over the shared watchlist store.
// The screen subscribes to the store for its lifetime so edits made
// anywhere are reflected here without a refresh.
func NewSummary(cfg SummaryConfig) *Summary {
	s := &Summary{
		store:    cfg.Store,
		client:   cfg.Client,
		debounce: cfg.Debounce,
		logger:   logging.WithScreen(cfg.Logger, "summary"),
	}
	s.store.Subscribe(s.watchlistChanged)
	return s
}

// watchlistChanged prunes snapshots for symbols that are no longer
// tracked, so a row removed on the editor cannot linger in the list.
func (s *Summary) watchlistChanged(stocks []models.Stock) {
	tracked := make(map[string]bool, len(stocks))
	for _, stock := range stocks {
		tracked[stock.Ticker] = true
	}

	s.base.lock()
	defer s.base.unlock()

	kept := s.dailies[:0]
	for _, daily := range s.dailies {
		if tracked[daily.Symbol] {
			kept = append(kept, daily)
		}
	}
	s.dailies = kept
}

// State returns a snapshot of the current view state. Stocks come straight
// from the shared store so edits made on other screens are always visible.
func (s *Summary) State() SummaryState {
	s.base.lock()
	defer s.base.unlock()
	return SummaryState{
		Stocks:      s.store.Read(),
		Dailies:     append([]models.Daily(nil), s.dailies...),
		Alert:       s.alert,
		Destination: s.destination,
	}
}

// Refresh clears the alert and fetches the daily snapshot for every
// tracked stock concurrently. Triggered on view entry, pull-to-refresh,
// and when the watchlist editor closes.
func (s *Summary) Refresh(ctx context.Context) {
	s.base.lock()
	s.alert = ""
	s.base.unlock()

	stocks := s.store.Read()
	s.logger.Debug().Int("count", len(stocks)).Msg("refreshing dailies")

	for _, stock := range stocks {
		s.effects.Add(1)
		go func(ticker string) {
			defer s.effects.Done()
			daily, err := s.client.GetDaily(ctx, ticker)
			s.applyDaily(daily, err)
		}(stock.Ticker)
	}
}

// applyDaily reconciles one completed snapshot fetch. Completions arrive in
// any order; a snapshot whose symbol is already present is ignored, which
// makes re-delivery and stale completions harmless. A failure overwrites
// the alert, so the user sees the most recent error.
func (s *Summary) applyDaily(daily models.Daily, err error) {
	s.base.lock()
	defer s.base.unlock()

	if err != nil {
		s.alert = errors.DisplayMessage(err)
		s.logger.Warn().Err(err).Msg("daily fetch failed")
		return
	}

	for _, existing := range s.dailies {
		if existing.Symbol == daily.Symbol {
			return
		}
	}
	s.dailies = append(s.dailies, daily)
}

// Select presents the details screen for one tracked stock and returns it.
func (s *Summary) Select(stock models.Stock) *Details {
	s.base.lock()
	defer s.base.unlock()

	s.details = NewDetails(DetailsConfig{
		Stock:  stock,
		Client: s.client,
		Logger: s.logger,
	})
	s.editor = nil
	s.destination = DestinationDetails
	return s.details
}

// OpenStocks presents the watchlist editor and returns it. When the editor
// is dismissed the summary refreshes so edits show up immediately.
func (s *Summary) OpenStocks() *StockList {
	s.base.lock()
	defer s.base.unlock()

	s.editor = NewStockList(StockListConfig{
		Store:     s.store,
		Client:    s.client,
		Debounce:  s.debounce,
		Logger:    s.logger,
		OnDismiss: s.stocksClosed,
	})
	s.details = nil
	s.destination = DestinationStocks
	return s.editor
}

// ActiveDetails returns the presented details child, or nil.
func (s *Summary) ActiveDetails() *Details {
	s.base.lock()
	defer s.base.unlock()
	return s.details
}

// ActiveStocks returns the presented editor child, or nil.
func (s *Summary) ActiveStocks() *StockList {
	s.base.lock()
	defer s.base.unlock()
	return s.editor
}

// CloseDetails pops the details screen.
func (s *Summary) CloseDetails() {
	s.base.lock()
	defer s.base.unlock()
	s.details = nil
	s.destination = DestinationNone
}

// stocksClosed is the editor child's dismiss signal: close the sheet and
// re-sync the summary against the edited watchlist.
func (s *Summary) stocksClosed() {
	s.base.lock()
	s.editor = nil
	s.destination = DestinationNone
	s.base.unlock()

	s.Refresh(context.Background())
}

// Wait blocks until every in-flight snapshot fetch has reconciled. Used by
// the presentation layer and tests.
func (s *Summary) Wait() {
	s.effects.Wait()
}
