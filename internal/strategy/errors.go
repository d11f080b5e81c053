package strategy

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData marks a series with no bars. Evaluate recovers it
	// as a Hold with every indicator unavailable.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMalformedSeries matches any *MalformedSeriesError.
	ErrMalformedSeries = errors.New("malformed series")

	// ErrInvalidParams wraps a Params.Validate failure.
	ErrInvalidParams = errors.New("invalid indicator params")
)

// MalformedSeriesError reports the first bar that breaks the series contract.
type MalformedSeriesError struct {
	Symbol string
	Index  int
	Reason string
}

func (e *MalformedSeriesError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("malformed series at bar %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("malformed series %s at bar %d: %s", e.Symbol, e.Index, e.Reason)
}

func (e *MalformedSeriesError) Is(target error) bool {
	return target == ErrMalformedSeries
}
