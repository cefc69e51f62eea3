// Package market provides market data provider interfaces and implementations.
package market

import (
	"context"

	"stockscout/internal/models"
)

// Client defines the interface for market data operations. All operations
// hit the network and may fail; failures against the provider's error
// envelope surface as *errors.ProviderError, everything else as a generic
// transport error.
type Client interface {
	// GetDaily fetches the open/close snapshot for the prior calendar day.
	GetDaily(ctx context.Context, ticker string) (models.Daily, error)

	// GetMovingAverage fetches up to the 10 most recent daily samples of a
	// 50-day simple moving average. The provider returns them in descending
	// order but no order is part of the contract; callers sort when order
	// matters.
	GetMovingAverage(ctx context.Context, ticker string) ([]models.MovingAverage, error)

	// GetTickerDetails fetches reference details for one symbol.
	GetTickerDetails(ctx context.Context, ticker string) (models.Ticker, error)

	// SearchStocks searches active tickers by free text, up to 100 matches.
	SearchStocks(ctx context.Context, query string) ([]models.Stock, error)
}
