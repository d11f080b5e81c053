package collector

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntradayScope/internal/strategy"
)

func TestRESTFetcher_FetchBars(t *testing.T) {
	var auth, symbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		symbol = r.URL.Query().Get("symbol")
		assert.Equal(t, "/api/v1/bars", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"timestamp":1717399800,"open":9,"high":10,"low":8,"close":9.5,"volume":7},
			{"timestamp":1717400700,"open":10,"high":11,"low":9,"close":10.5,"volume":5}
		]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	bars, err := f.FetchBars(context.Background(), "INFY.NS", Window{Period: "1mo", Interval: "15m"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "INFY.NS", symbol)
	require.Len(t, bars, 2)
	assert.Equal(t, time.Unix(1717399800, 0).UTC(), bars[0].Time)
	assert.Equal(t, 9.5, bars[0].Close)
	assert.Equal(t, 10.5, bars[1].Close)
}

func TestRESTFetcher_KeepsBarsAsServed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"timestamp":1717401600,"open":10,"high":11,"low":9,"close":10.5,"volume":5},
			{"timestamp":1717399800,"open":9,"high":10,"low":8,"close":9.5,"volume":7},
			{"timestamp":1717400700,"open":10,"high":11,"low":9,"close":null,"volume":0}
		]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	bars, err := f.FetchBars(context.Background(), "INFY.NS", Window{Period: "1mo", Interval: "15m"})
	require.NoError(t, err)

	require.Len(t, bars, 3)
	assert.Equal(t, time.Unix(1717401600, 0).UTC(), bars[0].Time)
	assert.True(t, math.IsNaN(bars[2].Close))
}

func TestRESTFetcher_BadBarsRejectedByAnalyze(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null close", `[
			{"timestamp":1717399800,"open":9,"high":10,"low":8,"close":9.5,"volume":7},
			{"timestamp":1717400700,"open":10,"high":11,"low":9,"close":null,"volume":0}
		]`},
		{"out of order", `[
			{"timestamp":1717400700,"open":10,"high":11,"low":9,"close":10.5,"volume":5},
			{"timestamp":1717399800,"open":9,"high":10,"low":8,"close":9.5,"volume":7}
		]`},
		{"duplicate timestamp", `[
			{"timestamp":1717399800,"open":9,"high":10,"low":8,"close":9.5,"volume":7},
			{"timestamp":1717399800,"open":10,"high":11,"low":9,"close":10.5,"volume":5}
		]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestCollector(NewRESTFetcher(srv.URL, "", ""))
			a, err := c.Analyze(context.Background(), "INFY.NS")
			assert.Nil(t, a)
			require.ErrorIs(t, err, strategy.ErrMalformedSeries)

			var mse *strategy.MalformedSeriesError
			require.ErrorAs(t, err, &mse)
			assert.Equal(t, 1, mse.Index)
		})
	}
}

func TestRESTFetcher_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	_, err := f.FetchBars(context.Background(), "INFY.NS", Window{Period: "1mo", Interval: "15m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
