package screen

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"stockscout/internal/models"
)

// Property: adding a stock already tracked by ticker is a no-op, so adding
// twice equals adding once and list order is preserved.
func TestProperty_AddIsIdempotentByTicker(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	// Generator for pre-existing list size (0-6) and the insertion point of
	// the candidate's ticker within it (-1 means not present).
	sizeGen := gen.IntRange(0, 6)
	presentAtGen := gen.IntRange(-1, 5)

	properties.Property("add(add(list, s), s) == add(list, s)", prop.ForAll(
		func(size int, presentAt int) bool {
			stocks := make([]models.Stock, 0, size)
			for i := 0; i < size; i++ {
				stocks = append(stocks, models.Stock{
					Name:   fmt.Sprintf("Company %d", i),
					Ticker: fmt.Sprintf("SYM%d", i),
				})
			}
			candidate := models.Stock{Name: "Candidate", Ticker: "CAND"}
			if presentAt >= 0 && presentAt < size {
				stocks[presentAt].Ticker = candidate.Ticker
			}

			l := newTestStockList(t, nil, stocks...)

			l.OpenAddStock().Select(candidate)
			once := l.Stocks()

			l.OpenAddStock().Select(candidate)
			twice := l.Stocks()

			if !reflect.DeepEqual(once, twice) {
				return false
			}

			// Exactly one entry with the candidate ticker, and the prior
			// entries kept their order.
			count := 0
			for _, s := range twice {
				if s.Ticker == candidate.Ticker {
					count++
				}
			}
			if count != 1 {
				return false
			}
			return reflect.DeepEqual(twice[:size], stocks)
		},
		sizeGen,
		presentAtGen,
	))

	properties.TestingRun(t)
}
