package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"stockscout/internal/errors"
	"stockscout/internal/models"
)

// Polygon implements the Client interface against the Polygon.io REST API.
type Polygon struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  zerolog.Logger

	// now is swapped in tests to pin the prior-day date.
	now func() time.Time
}

// PolygonConfig holds configuration for the Polygon client.
type PolygonConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewPolygon creates a new Polygon market data client.
func NewPolygon(cfg PolygonConfig) *Polygon {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.polygon.io"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Polygon{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		logger:  cfg.Logger,
		now:     time.Now,
	}
}

// providerEnvelope is the provider's error response shape. Any body that
// decodes to it with an error status is raised in preference to the success
// shape, since the provider reports failures inside 200 responses as well.
type providerEnvelope struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// get performs one API call and returns the raw body after envelope checks.
func (p *Polygon) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", p.apiKey)

	u := p.baseURL + path + "?" + query.Encode()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.NewRequestError(endpoint, "", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewRequestError(endpoint, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewRequestError(endpoint, "", err)
	}

	p.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("provider call completed")

	var envelope providerEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.Status == "ERROR" && envelope.Error != "" {
		return nil, errors.NewProviderError(envelope.Status, envelope.Error)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRequestError(endpoint, "",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return body, nil
}

// GetDaily fetches the open/close snapshot for the prior calendar day.
func (p *Polygon) GetDaily(ctx context.Context, ticker string) (models.Daily, error) {
	day := p.now().AddDate(0, 0, -1).Format("2006-01-02")
	path := fmt.Sprintf("/v1/open-close/%s/%s", url.PathEscape(ticker), day)

	query := url.Values{}
	query.Set("adjusted", "true")

	body, err := p.get(ctx, "open-close", path, query)
	if err != nil {
		return models.Daily{}, err
	}

	var daily models.Daily
	if err := json.Unmarshal(body, &daily); err != nil {
		return models.Daily{}, errors.NewRequestError("open-close", ticker, err)
	}
	return daily, nil
}

// GetMovingAverage fetches the 50-day SMA series, 10 most recent daily
// samples, computed over the high series.
func (p *Polygon) GetMovingAverage(ctx context.Context, ticker string) ([]models.MovingAverage, error) {
	path := fmt.Sprintf("/v1/indicators/sma/%s", url.PathEscape(ticker))

	query := url.Values{}
	query.Set("timespan", "day")
	query.Set("adjusted", "true")
	query.Set("window", "50")
	query.Set("series_type", "high")
	query.Set("order", "desc")
	query.Set("limit", "10")

	body, err := p.get(ctx, "sma", path, query)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Results struct {
			Values []models.MovingAverage `json:"values"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, errors.NewRequestError("sma", ticker, err)
	}
	return wrapper.Results.Values, nil
}

// GetTickerDetails fetches reference details for one symbol.
func (p *Polygon) GetTickerDetails(ctx context.Context, ticker string) (models.Ticker, error) {
	path := fmt.Sprintf("/v3/reference/tickers/%s", url.PathEscape(ticker))

	body, err := p.get(ctx, "ticker-details", path, nil)
	if err != nil {
		return models.Ticker{}, err
	}

	var wrapper struct {
		Results models.Ticker `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return models.Ticker{}, errors.NewRequestError("ticker-details", ticker, err)
	}
	return wrapper.Results, nil
}

// SearchStocks searches active tickers by free text.
func (p *Polygon) SearchStocks(ctx context.Context, text string) ([]models.Stock, error) {
	query := url.Values{}
	query.Set("search", text)
	query.Set("active", "true")
	query.Set("limit", "100")

	body, err := p.get(ctx, "ticker-search", "/v3/reference/tickers", query)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Results []models.Stock `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, errors.NewRequestError("ticker-search", "", err)
	}
	return wrapper.Results, nil
}
