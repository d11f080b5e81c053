package model

import "math"

// IndicatorSnapshot holds the latest indicator values. A nil field means the
// value is not available (warm-up window not reached or numerically undefined).
type IndicatorSnapshot struct {
	RSI       *float64 `json:"rsi"`
	MACD      *float64 `json:"macd"`
	Signal    *float64 `json:"signal"`
	Histogram *float64 `json:"histogram"`
}

// Value converts a computed value into a snapshot field, mapping NaN and
// infinities to nil.
func Value(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Complete reports whether RSI, MACD and Signal are all available.
func (s IndicatorSnapshot) Complete() bool {
	return s.RSI != nil && s.MACD != nil && s.Signal != nil
}
