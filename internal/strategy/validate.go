package strategy

import (
	"math"

	"IntradayScope/internal/model"
)

// ValidateSeries checks that timestamps are set and strictly increasing and
// that every close is a finite number. An empty series is reported as
// ErrInsufficientData.
func ValidateSeries(series *model.PriceSeries) error {
	if series == nil || len(series.Bars) == 0 {
		return ErrInsufficientData
	}
	for i, b := range series.Bars {
		if b.Time.IsZero() {
			return &MalformedSeriesError{Symbol: series.Symbol, Index: i, Reason: "missing timestamp"}
		}
		if math.IsNaN(b.Close) || math.IsInf(b.Close, 0) {
			return &MalformedSeriesError{Symbol: series.Symbol, Index: i, Reason: "missing close"}
		}
		if i == 0 {
			continue
		}
		prev := series.Bars[i-1].Time
		switch {
		case b.Time.Equal(prev):
			return &MalformedSeriesError{Symbol: series.Symbol, Index: i, Reason: "duplicate timestamp " + b.Time.Format("2006-01-02 15:04:05")}
		case b.Time.Before(prev):
			return &MalformedSeriesError{Symbol: series.Symbol, Index: i, Reason: "timestamps not increasing"}
		}
	}
	return nil
}
