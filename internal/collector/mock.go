package collector

import (
	"context"
	"hash/fnv"
	"math"
	"time"

	"IntradayScope/internal/model"
)

// MockFetcher returns controllable deterministic data for development and testing.
type MockFetcher struct {
	Bars  map[string][]model.OHLCV // fixed bars per symbol, takes precedence
	Err   error
	Count int       // generated bars per symbol, 0 means 500
	End   time.Time // timestamp of the last generated bar, zero means now
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(ctx context.Context, symbol string, w Window) ([]model.OHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	step, err := IntervalDuration(w.Interval)
	if err != nil {
		return nil, err
	}
	count := m.Count
	if count == 0 {
		count = 500
	}
	end := m.End
	if end.IsZero() {
		end = time.Now().UTC().Truncate(step)
	}
	return generateMockBars(symbol, end, step, count), nil
}

// generateMockBars builds a noisy wave whose shape depends only on symbol.
func generateMockBars(symbol string, end time.Time, step time.Duration, count int) []model.OHLCV {
	h := fnv.New32a()
	_, _ = h.Write([]byte(symbol))
	seed := float64(h.Sum32()%1000) / 1000

	base := 100 + seed*2900
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		x := float64(i)
		p := base * (1 + 0.03*math.Sin(x/40+seed*6) + 0.01*math.Sin(x/7+seed*13) + 0.0002*(x-float64(count)/2)*(seed-0.5))
		bars[i] = model.OHLCV{
			Time:   end.Add(-time.Duration(count-1-i) * step),
			Open:   p * 0.999,
			High:   p * 1.004,
			Low:    p * 0.996,
			Close:  p,
			Volume: 10000 + math.Floor(5000*(1+math.Sin(x/3))),
		}
	}
	return bars
}
