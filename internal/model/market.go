package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds the bars of one symbol over one (period, interval) window.
type PriceSeries struct {
	Symbol    string
	Period    string // trailing range, e.g. "1mo"
	Interval  string // bar size, e.g. "15m"
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes returns the close prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }
