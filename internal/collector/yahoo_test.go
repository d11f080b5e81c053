package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntradayScope/internal/strategy"
)

const yahooFixture = `{"chart":{"result":[{"timestamp":[1717399800,1717400700,1717401600,1717402500],
"indicators":{"quote":[{
"open":[100.0,101.0,null,103.0],
"high":[101.0,102.5,null,104.0],
"low":[99.5,100.5,null,102.0],
"close":[100.5,102.0,null,103.5],
"volume":[1000,1200,null,null]}]}}],"error":null}}`

const yahooUnorderedFixture = `{"chart":{"result":[{"timestamp":[1717400700,1717399800,1717401600],
"indicators":{"quote":[{
"open":[101.0,100.0,102.0],
"high":[102.5,101.0,103.0],
"low":[100.5,99.5,101.0],
"close":[102.0,100.5,102.5],
"volume":[1200,1000,900]}]}}],"error":null}}`

func TestYahooFetcher_FetchBars(t *testing.T) {
	var gotPath, gotRange, gotInterval string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(yahooFixture))
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "", 0)
	bars, err := f.FetchBars(context.Background(), "TCS.NS", Window{Period: "1mo", Interval: "15m"})
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/TCS.NS", gotPath)
	assert.Equal(t, "1mo", gotRange)
	assert.Equal(t, "15m", gotInterval)

	// no-trade bar dropped
	require.Len(t, bars, 3)
	assert.Equal(t, time.Unix(1717399800, 0).UTC(), bars[0].Time)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 102.0, bars[1].Close)
	assert.Equal(t, 1200.0, bars[1].Volume)
	assert.Equal(t, 103.5, bars[2].Close)
	assert.Equal(t, 0.0, bars[2].Volume)
	assert.Equal(t, "yahoo", f.Name())
}

func TestYahooFetcher_SymbolAlias(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(yahooFixture))
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "", 0)
	_, err := f.FetchBars(context.Background(), "NIFTY50", Window{Period: "5d", Interval: "5m"})
	require.NoError(t, err)
	assert.Equal(t, "/v8/finance/chart/%5ENSEI", gotPath)
}

func TestYahooFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "", 0)
	_, err := f.FetchBars(context.Background(), "NOPE.NS", Window{Period: "1mo", Interval: "15m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symbol may be delisted")
}

func TestYahooFetcher_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "", 0)
	_, err := f.FetchBars(context.Background(), "TCS.NS", Window{Period: "1mo", Interval: "15m"})
	assert.Error(t, err)
}

func TestYahooFetcher_CancelledContext(t *testing.T) {
	f := NewYahooFetcher("http://127.0.0.1:1", "", 0.001)
	// drain the single token so Wait has to block
	f.Limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.FetchBars(ctx, "TCS.NS", Window{Period: "1mo", Interval: "15m"})
	assert.Error(t, err)
}

func TestYahooFetcher_UnorderedRejectedByAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(yahooUnorderedFixture))
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "", 0)
	bars, err := f.FetchBars(context.Background(), "TCS.NS", Window{Period: "1mo", Interval: "15m"})
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.Equal(t, time.Unix(1717400700, 0).UTC(), bars[0].Time)

	_, err = newTestCollector(f).Analyze(context.Background(), "TCS.NS")
	assert.ErrorIs(t, err, strategy.ErrMalformedSeries)
}
