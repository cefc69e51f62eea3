package screen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"stockscout/internal/errors"
	"stockscout/internal/market"
	"stockscout/internal/models"
)

// DefaultDebounce is the idle window before a typed query is dispatched.
const DefaultDebounce = 500 * time.Millisecond

// SearchState is the view state of the ticker search screen.
type SearchState struct {
	Query   string
	Results []models.Stock
	Err     string
}

// SearchConfig holds dependencies for the search screen.
type SearchConfig struct {
	Client   market.Client
	Debounce time.Duration // zero uses DefaultDebounce
	Logger   zerolog.Logger

	// OnSelect is the parent's handler for a picked result. Selection is a
	// pure signal upward; it changes no local state.
	OnSelect func(models.Stock)
	// OnDismiss is the parent's handler for closing this screen.
	OnDismiss func()
}

// Search drives debounced free-text ticker search. At most one search
// effect is in flight at a time; a newer query invalidates the previous
// effect's eventual result.
type Search struct {
	base     reducer
	client   market.Client
	debounce *debouncer
	logger   zerolog.Logger

	onSelect  func(models.Stock)
	onDismiss func()

	state SearchState
}

// NewSearch creates the search screen.
func NewSearch(cfg SearchConfig) *Search {
	window := cfg.Debounce
	if window == 0 {
		window = DefaultDebounce
	}
	return &Search{
		client:    cfg.Client,
		debounce:  newDebouncer(window),
		logger:    cfg.Logger,
		onSelect:  cfg.OnSelect,
		onDismiss: cfg.OnDismiss,
	}
}

// State returns a snapshot of the current view state.
func (s *Search) State() SearchState {
	s.base.lock()
	defer s.base.unlock()
	out := s.state
	out.Results = append([]models.Stock(nil), s.state.Results...)
	return out
}

// SetQuery records the typed text and schedules a search effect. An empty
// query clears the results synchronously and schedules nothing; it also
// discards any still-pending effect so stale results cannot surface after
// the field was cleared.
func (s *Search) SetQuery(text string) {
	s.base.lock()
	s.state.Query = text
	if text == "" {
		s.state.Results = nil
		s.base.unlock()
		s.debounce.Cancel()
		return
	}
	s.base.unlock()

	s.debounce.Schedule(func(ctx context.Context) {
		stocks, err := s.client.SearchStocks(ctx, text)
		s.applySearch(ctx, stocks, err)
	})
}

// applySearch reduces a completed search effect. Results from a superseded
// effect are discarded.
func (s *Search) applySearch(ctx context.Context, stocks []models.Stock, err error) {
	if ctx.Err() != nil {
		return
	}

	s.base.lock()
	defer s.base.unlock()

	if err != nil {
		s.state.Err = errors.DisplayMessage(err)
		s.logger.Warn().Err(err).Str("query", s.state.Query).Msg("search failed")
		return
	}
	// One query's full result set; replace wholesale.
	s.state.Results = stocks
}

// Select signals the parent that the user picked a result.
func (s *Search) Select(stock models.Stock) {
	if s.onSelect != nil {
		s.onSelect(stock)
	}
}

// Dismiss signals the parent to close this screen.
func (s *Search) Dismiss() {
	s.debounce.Cancel()
	if s.onDismiss != nil {
		s.onDismiss()
	}
}

// Wait blocks until any scheduled search effect has settled. Used by the
// presentation layer and tests.
func (s *Search) Wait() {
	s.debounce.Wait()
}
