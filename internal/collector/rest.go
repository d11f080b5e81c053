package collector

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"

	"IntradayScope/internal/model"
)

// RESTFetcher implements Fetcher against a plain JSON bars API:
//
//	GET {base}/api/v1/bars?symbol=TCS.NS&period=1mo&interval=15m
type RESTFetcher struct {
	Client *resty.Client
}

// NewRESTFetcher creates a new fetcher with optional API key and proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &RESTFetcher{Client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars API.
type restBar struct {
	Timestamp int64    `json:"timestamp"`
	Open      float64  `json:"open"`
	High      float64  `json:"high"`
	Low       float64  `json:"low"`
	Close     *float64 `json:"close"`
	Volume    float64  `json:"volume"`
}

func (f *RESTFetcher) FetchBars(ctx context.Context, symbol string, w Window) ([]model.OHLCV, error) {
	var raw []restBar
	resp, err := f.Client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"period":   w.Period,
			"interval": w.Interval,
		}).
		SetResult(&raw).
		Get("/api/v1/bars")
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	// Bars are passed on as served. A null close becomes NaN and ordering
	// problems are left for series validation to reject.
	bars := make([]model.OHLCV, 0, len(raw))
	for _, rb := range raw {
		c := math.NaN()
		if rb.Close != nil {
			c = *rb.Close
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0).UTC(),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  c,
			Volume: rb.Volume,
		})
	}
	return bars, nil
}
