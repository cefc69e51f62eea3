// Package models provides domain models for the stock tracking application.
package models

import (
	"time"
)

// Stock is a tracked ticker symbol on the user's watchlist.
// Identity is the Ticker field; two stocks are the same entry when their
// tickers match exactly (case-sensitive).
type Stock struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

// Daily is the open/close snapshot for one symbol on one trading day.
// All numeric fields are optional: the provider omits them when there was
// no trading that day, so absence must be distinguishable from zero.
type Daily struct {
	Symbol     string   `json:"symbol"`
	Open       *float64 `json:"open,omitempty"`
	Close      *float64 `json:"close,omitempty"`
	High       *float64 `json:"high,omitempty"`
	Low        *float64 `json:"low,omitempty"`
	PreMarket  *float64 `json:"preMarket,omitempty"`
	AfterHours *float64 `json:"afterHours,omitempty"`
	Volume     *int64   `json:"volume,omitempty"`
}

// Change returns close minus open. The second return value is false when
// either side is missing.
func (d Daily) Change() (float64, bool) {
	if d.Open == nil || d.Close == nil {
		return 0, false
	}
	return *d.Close - *d.Open, true
}

// MovingAverage is one sample of a simple-moving-average series.
// Timestamp is milliseconds since the epoch and identifies the sample.
type MovingAverage struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Date converts the sample's millisecond timestamp to a time.Time.
func (m MovingAverage) Date() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// Ticker holds reference details for one symbol.
type Ticker struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MarketCap   float64 `json:"market_cap"`
}

// Float64 returns a pointer to v. Convenience for optional snapshot fields.
func Float64(v float64) *float64 { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }
