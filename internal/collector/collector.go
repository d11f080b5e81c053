package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"IntradayScope/internal/metrics"
	"IntradayScope/internal/model"
	"IntradayScope/internal/strategy"
)

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
	Window  Window
	Params  strategy.Params
	Workers int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, w Window, p strategy.Params, workers int) *Collector {
	if workers <= 0 {
		workers = 1
	}
	return &Collector{Fetcher: fetcher, Window: w, Params: p.WithDefaults(), Workers: workers}
}

// Fetch retrieves the price series for symbol. Provider failures are wrapped
// with ErrProviderUnavailable.
func (c *Collector) Fetch(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	start := time.Now()
	bars, err := c.Fetcher.FetchBars(ctx, symbol, c.Window)
	metrics.ObserveFetch(c.Fetcher.Name(), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", symbol, ErrProviderUnavailable, err)
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Period:    c.Window.Period,
		Interval:  c.Window.Interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// Analyze fetches symbol and runs the indicator engine over it.
func (c *Collector) Analyze(ctx context.Context, symbol string) (*model.Analysis, error) {
	series, err := c.Fetch(ctx, symbol)
	if err != nil {
		metrics.RecordAnalysisError("provider")
		return nil, err
	}
	if series.Len() < c.Params.WarmupBars() {
		log.Warn().Str("symbol", symbol).Int("bars", series.Len()).Int("warmup", c.Params.WarmupBars()).
			Msg("short series, indicators may be unavailable or unstable")
	}

	a, err := strategy.Evaluate(series, c.Params)
	if err != nil {
		metrics.RecordAnalysisError(errorReason(err))
		return nil, err
	}
	metrics.RecordAnalysis(string(a.Suggestion))
	log.Debug().Str("symbol", symbol).Int("bars", a.Bars).Str("suggestion", string(a.Suggestion)).Msg("analysis done")
	return a, nil
}

// AnalyzeAll analyzes every symbol concurrently with at most Workers in
// flight. Results keep the input order; a failing symbol only sets its Err.
func (c *Collector) AnalyzeAll(ctx context.Context, symbols []string) []model.ScanResult {
	results := make([]model.ScanResult, len(symbols))
	var g errgroup.Group
	g.SetLimit(c.Workers)
	for i, sym := range symbols {
		g.Go(func() error {
			a, err := c.Analyze(ctx, sym)
			if err != nil {
				log.Error().Err(err).Str("symbol", sym).Msg("analysis failed")
			}
			results[i] = model.ScanResult{Symbol: sym, Analysis: a, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, strategy.ErrMalformedSeries):
		return "malformed"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider"
	case errors.Is(err, strategy.ErrInvalidParams):
		return "params"
	default:
		return "other"
	}
}
