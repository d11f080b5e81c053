package collector

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"IntradayScope/internal/model"
)

// ErrProviderUnavailable wraps every failure to obtain bars from a provider.
var ErrProviderUnavailable = errors.New("price provider unavailable")

// Window selects the trailing period and bar size to fetch.
type Window struct {
	Period   string // e.g. "1mo"
	Interval string // e.g. "15m"
}

func (w Window) String() string { return w.Period + "/" + w.Interval }

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol string, w Window) ([]model.OHLCV, error)
	Name() string
}

// IntervalDuration parses a bar interval such as "15m", "1h", "1d" or "1wk".
func IntervalDuration(interval string) (time.Duration, error) {
	units := []struct {
		suffix string
		unit   time.Duration
	}{
		{"wk", 7 * 24 * time.Hour},
		{"mo", 30 * 24 * time.Hour},
		{"m", time.Minute},
		{"h", time.Hour},
		{"d", 24 * time.Hour},
	}
	for _, u := range units {
		if !strings.HasSuffix(interval, u.suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(interval, u.suffix))
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid interval %q", interval)
		}
		return time.Duration(n) * u.unit, nil
	}
	return 0, fmt.Errorf("invalid interval %q", interval)
}
