package collector

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"IntradayScope/internal/model"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	Client    *resty.Client
	Limiter   *rate.Limiter
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. An empty baseURL uses
// the public endpoint; rps <= 0 disables client-side throttling.
func NewYahooFetcher(baseURL, proxyURL string, rps float64) *YahooFetcher {
	if baseURL == "" {
		baseURL = yahooBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0").
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return &YahooFetcher{
		Client:  client,
		Limiter: limiter,
		SymbolMap: map[string]string{
			"NIFTY50":   "^NSEI",
			"NIFTY":     "^NSEI",
			"BANKNIFTY": "^NSEBANK",
			"SENSEX":    "^BSESN",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Quote arrays carry nulls for bars without trades.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchBars downloads the chart for symbol over the window. Bars without a
// close are periods with no trades and are skipped; the order is kept as
// served.
func (f *YahooFetcher) FetchBars(ctx context.Context, symbol string, w Window) ([]model.OHLCV, error) {
	if err := f.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("yahoo rate limit: %w", err)
	}

	var chart yahooChart
	resp, err := f.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    w.Period,
			"interval": w.Interval,
		}).
		SetResult(&chart).
		SetError(&chart).
		Get("/v8/finance/chart/" + url.PathEscape(f.yahooSymbol(symbol)))
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		c := at(quote.Close, i)
		if c == nil {
			continue // no trades in this bar
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   valueOr(at(quote.Open, i), *c),
			High:   valueOr(at(quote.High, i), *c),
			Low:    valueOr(at(quote.Low, i), *c),
			Close:  *c,
			Volume: valueOr(at(quote.Volume, i), 0),
		})
	}
	return bars, nil
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
