// Package watchlist provides the shared, durable store of tracked stocks.
package watchlist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"stockscout/internal/models"
)

// Store is the single source of truth for the user's tracked stocks. It is
// shared by every screen: reads return the current value, mutations are
// applied atomically under the store lock, persisted before returning, and
// announced synchronously to every subscriber.
type Store struct {
	mu          sync.Mutex
	path        string
	stocks      []models.Stock
	subscribers map[int]func([]models.Stock)
	nextSubID   int
	logger      zerolog.Logger
}

// Open loads the watchlist document at path. A missing or corrupt document
// degrades to an empty watchlist; it is never a hard failure.
func Open(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path:        path,
		subscribers: make(map[int]func([]models.Stock)),
		logger:      logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("watchlist unreadable, starting empty")
		}
		return s
	}

	var stocks []models.Stock
	if err := json.Unmarshal(data, &stocks); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("watchlist corrupt, starting empty")
		return s
	}

	s.stocks = stocks
	return s
}

// Read returns a copy of the current watchlist in display order.
func (s *Store) Read() []models.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() []models.Stock {
	out := make([]models.Stock, len(s.stocks))
	copy(out, s.stocks)
	return out
}

// Mutate applies fn to the current watchlist and persists the result before
// returning. The read-modify-write is atomic with respect to other writers
// in the process, and every subscriber is notified synchronously after a
// successful mutation.
func (s *Store) Mutate(fn func([]models.Stock) []models.Stock) error {
	s.mu.Lock()

	next := fn(s.snapshot())
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.stocks = next

	subs := make([]func([]models.Stock), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return nil
}

// persist writes the watchlist document atomically via temp file + rename.
func (s *Store) persist(stocks []models.Stock) error {
	if stocks == nil {
		stocks = []models.Stock{}
	}
	data, err := json.MarshalIndent(stocks, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".stocks-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	s.logger.Debug().Int("count", len(stocks)).Msg("watchlist persisted")
	return nil
}

// Subscribe registers fn to be called with the new watchlist after every
// successful mutation. The returned cancel function removes the
// subscription.
func (s *Store) Subscribe(fn func([]models.Stock)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Contains reports whether a stock with the given ticker is tracked.
func (s *Store) Contains(ticker string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stock := range s.stocks {
		if stock.Ticker == ticker {
			return true
		}
	}
	return false
}
