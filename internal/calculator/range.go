package calculator

import (
	"errors"
	"math"

	"IntradayScope/internal/model"
)

// WindowRange scans every bar and returns the highest high and lowest low.
func WindowRange(bars []model.OHLCV) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// ChangePercent returns the percentage move from the first to the last close.
func ChangePercent(bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	first := bars[0].Close
	if first == 0 {
		return 0, errors.New("first close is zero")
	}
	return (bars[len(bars)-1].Close - first) / first * 100, nil
}
