package web

import (
	"time"

	"IntradayScope/internal/model"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SymbolsResponse lists the configured universe.
type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
}

// ScanRow is one symbol of a scan.
type ScanRow struct {
	Symbol     string           `json:"symbol"`
	Suggestion model.Suggestion `json:"suggestion,omitempty"`
	RSI        *float64         `json:"rsi"`
	MACD       *float64         `json:"macd"`
	Signal     *float64         `json:"signal"`
	LastClose  *float64         `json:"last_close"`
	ChangePct  *float64         `json:"change_pct"`
	Error      string           `json:"error,omitempty"`
}

// ScanResponse is the latest universe scan.
type ScanResponse struct {
	ScannedAt *time.Time `json:"scanned_at"`
	Results   []ScanRow  `json:"results"`
}

func toScanResponse(results []model.ScanResult, at time.Time) ScanResponse {
	resp := ScanResponse{Results: make([]ScanRow, 0, len(results))}
	if !at.IsZero() {
		resp.ScannedAt = &at
	}
	for _, r := range results {
		row := ScanRow{Symbol: r.Symbol}
		if r.Err != nil {
			row.Error = r.Err.Error()
		} else if a := r.Analysis; a != nil {
			row.Suggestion = a.Suggestion
			row.RSI = a.Snapshot.RSI
			row.MACD = a.Snapshot.MACD
			row.Signal = a.Snapshot.Signal
			row.LastClose = a.LastClose
			row.ChangePct = a.ChangePct
		}
		resp.Results = append(resp.Results, row)
	}
	return resp
}
