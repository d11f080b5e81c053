package model

import "time"

// Suggestion is the trading label derived from the latest indicator values.
type Suggestion string

const (
	SuggestionBuy  Suggestion = "Buy"
	SuggestionSell Suggestion = "Sell"
	SuggestionHold Suggestion = "Hold"
)

// ClosePoint is one point of the close-price chart.
type ClosePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// Analysis is the output of one engine run for one symbol.
type Analysis struct {
	Symbol     string            `json:"symbol"`
	Period     string            `json:"period"`
	Interval   string            `json:"interval"`
	Bars       int               `json:"bars"`
	Snapshot   IndicatorSnapshot `json:"indicators"`
	Suggestion Suggestion        `json:"suggestion"`
	LastClose  *float64          `json:"last_close"`
	ChangePct  *float64          `json:"change_pct"`
	High       *float64          `json:"high"`
	Low        *float64          `json:"low"`
	Closes     []ClosePoint      `json:"closes"`
	AnalyzedAt time.Time         `json:"analyzed_at"`
}

// ScanResult pairs a symbol with its analysis or the error that prevented it.
type ScanResult struct {
	Symbol   string
	Analysis *Analysis
	Err      error
}
