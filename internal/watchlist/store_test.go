package watchlist

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"stockscout/internal/models"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "stocks.json")
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s := Open(tempPath(t), zerolog.Nop())
	if got := s.Read(); len(got) != 0 {
		t.Errorf("Read() = %v, want empty", got)
	}
}

func TestOpenCorruptFileIsEmpty(t *testing.T) {
	path := tempPath(t)
	if err := os.WriteFile(path, []byte(`{"not": "a list"`), 0644); err != nil {
		t.Fatal(err)
	}
	s := Open(path, zerolog.Nop())
	if got := s.Read(); len(got) != 0 {
		t.Errorf("Read() = %v, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	path := tempPath(t)
	stocks := []models.Stock{
		{Name: "Apple Inc.", Ticker: "AAPL"},
		{Name: "Microsoft Corp.", Ticker: "MSFT"},
		{Name: "Alphabet Inc.", Ticker: "GOOG"},
	}

	s := Open(path, zerolog.Nop())
	err := s.Mutate(func([]models.Stock) []models.Stock { return stocks })
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	// A fresh store over the same document sees the same entries in the
	// same order.
	reloaded := Open(path, zerolog.Nop())
	if got := reloaded.Read(); !reflect.DeepEqual(got, stocks) {
		t.Errorf("reloaded = %v, want %v", got, stocks)
	}
}

func TestMutateNotifiesSubscribersSynchronously(t *testing.T) {
	s := Open(tempPath(t), zerolog.Nop())

	var notified [][]models.Stock
	cancel := s.Subscribe(func(stocks []models.Stock) {
		notified = append(notified, stocks)
	})
	defer cancel()

	stock := models.Stock{Name: "Apple Inc.", Ticker: "AAPL"}
	if err := s.Mutate(func(cur []models.Stock) []models.Stock {
		return append(cur, stock)
	}); err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	// Notification happens before Mutate returns.
	if len(notified) != 1 || len(notified[0]) != 1 || notified[0][0] != stock {
		t.Errorf("notified = %v, want one notification with %v", notified, stock)
	}

	cancel()
	if err := s.Mutate(func(cur []models.Stock) []models.Stock { return cur }); err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if len(notified) != 1 {
		t.Error("cancelled subscriber still notified")
	}
}

func TestMutateIsAtomicAcrossWriters(t *testing.T) {
	s := Open(tempPath(t), zerolog.Nop())

	// Concurrent read-modify-write appends must not lose updates.
	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Mutate(func(cur []models.Stock) []models.Stock {
				return append(cur, models.Stock{
					Name:   "Stock",
					Ticker: string(rune('A' + i)),
				})
			})
		}(i)
	}
	wg.Wait()

	if got := len(s.Read()); got != writers {
		t.Errorf("len(Read()) = %d, want %d", got, writers)
	}
}

func TestReadReturnsCopy(t *testing.T) {
	s := Open(tempPath(t), zerolog.Nop())
	if err := s.Mutate(func([]models.Stock) []models.Stock {
		return []models.Stock{{Name: "Apple Inc.", Ticker: "AAPL"}}
	}); err != nil {
		t.Fatal(err)
	}

	got := s.Read()
	got[0].Ticker = "MUTATED"
	if s.Read()[0].Ticker != "AAPL" {
		t.Error("Read() exposed internal slice")
	}
}

func TestContains(t *testing.T) {
	s := Open(tempPath(t), zerolog.Nop())
	if err := s.Mutate(func([]models.Stock) []models.Stock {
		return []models.Stock{{Name: "Apple Inc.", Ticker: "AAPL"}}
	}); err != nil {
		t.Fatal(err)
	}

	if !s.Contains("AAPL") {
		t.Error("Contains(AAPL) = false, want true")
	}
	// Identity is case-sensitive.
	if s.Contains("aapl") {
		t.Error("Contains(aapl) = true, want false")
	}
}
