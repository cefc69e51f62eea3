package screen

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"stockscout/internal/errors"
	"stockscout/internal/logging"
	"stockscout/internal/market"
	"stockscout/internal/models"
)

// DetailsState is the view state of the stock details screen.
// MovingAverages is kept in delivery order; rendering sorts by timestamp
// before charting.
type DetailsState struct {
	Stock          models.Stock
	Daily          *models.Daily
	MovingAverages []models.MovingAverage
	Ticker         *models.Ticker
	Alert          string
}

// DetailsConfig holds dependencies for the details screen.
type DetailsConfig struct {
	Stock  models.Stock
	Client market.Client
	Logger zerolog.Logger
}

// Details shows fundamentals, a moving-average series and the daily
// snapshot for one stock. Load fetches the three resources concurrently;
// each completion updates only its own slice of state, in any order.
type Details struct {
	base   reducer
	stock  models.Stock
	client market.Client
	logger zerolog.Logger

	daily          *models.Daily
	movingAverages []models.MovingAverage
	ticker         *models.Ticker
	alert          string

	effects sync.WaitGroup
}

// NewDetails creates the details screen scoped to one stock.
func NewDetails(cfg DetailsConfig) *Details {
	return &Details{
		stock:  cfg.Stock,
		client: cfg.Client,
		logger: logging.WithSymbol(logging.WithScreen(cfg.Logger, "details"), cfg.Stock.Ticker),
	}
}

// State returns a snapshot of the current view state.
func (d *Details) State() DetailsState {
	d.base.lock()
	defer d.base.unlock()

	out := DetailsState{
		Stock:          d.stock,
		MovingAverages: append([]models.MovingAverage(nil), d.movingAverages...),
		Alert:          d.alert,
	}
	if d.daily != nil {
		daily := *d.daily
		out.Daily = &daily
	}
	if d.ticker != nil {
		ticker := *d.ticker
		out.Ticker = &ticker
	}
	return out
}

// Load fetches the three resources concurrently. The fetches are fully
// independent: none waits on another, and each failure surfaces on the
// shared alert without blocking the other two.
func (d *Details) Load(ctx context.Context) {
	ticker := d.stock.Ticker

	d.effects.Add(3)
	go func() {
		defer d.effects.Done()
		details, err := d.client.GetTickerDetails(ctx, ticker)
		d.applyTicker(details, err)
	}()
	go func() {
		defer d.effects.Done()
		samples, err := d.client.GetMovingAverage(ctx, ticker)
		d.applyMovingAverage(samples, err)
	}()
	go func() {
		defer d.effects.Done()
		daily, err := d.client.GetDaily(ctx, ticker)
		d.applyDaily(daily, err)
	}()
}

func (d *Details) applyTicker(ticker models.Ticker, err error) {
	d.base.lock()
	defer d.base.unlock()
	if err != nil {
		d.fail(err)
		return
	}
	d.ticker = &ticker
}

func (d *Details) applyMovingAverage(samples []models.MovingAverage, err error) {
	d.base.lock()
	defer d.base.unlock()
	if err != nil {
		d.fail(err)
		return
	}
	d.movingAverages = samples
}

func (d *Details) applyDaily(daily models.Daily, err error) {
	d.base.lock()
	defer d.base.unlock()
	if err != nil {
		d.fail(err)
		return
	}
	d.daily = &daily
}

// fail records a channel failure. The alert is shared across all three
// channels; the last failure observed wins. Callers hold the lock.
func (d *Details) fail(err error) {
	d.alert = errors.DisplayMessage(err)
	d.logger.Warn().Err(err).Msg("details fetch failed")
}

// Wait blocks until all three fetches have reconciled.
func (d *Details) Wait() {
	d.effects.Wait()
}
