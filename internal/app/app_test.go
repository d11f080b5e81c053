package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IntradayScope/internal/config"
	"IntradayScope/internal/model"
	"IntradayScope/internal/strategy"
)

func testConfig(provider string) *config.Config {
	cfg := &config.Config{Symbols: []string{"TCS.NS"}}
	cfg.DataSource.Provider = provider
	cfg.DataSource.BaseURL = "http://127.0.0.1:1"
	cfg.DataSource.Period = "1mo"
	cfg.DataSource.Interval = "15m"
	cfg.DataSource.RateLimit = 2
	cfg.Indicators = strategy.DefaultParams()
	cfg.Scan.Workers = 2
	return cfg
}

func TestNewFetcher(t *testing.T) {
	for _, p := range []string{"yahoo", "rest", "mock"} {
		f, err := NewFetcher(testConfig(p))
		require.NoError(t, err, p)
		assert.Equal(t, p, f.Name())
	}

	_, err := NewFetcher(testConfig("bloomberg"))
	assert.Error(t, err)
}

func TestNewCacheDefaultsToMemory(t *testing.T) {
	c, closeFn := NewCache(testConfig("mock"))
	assert.Equal(t, "memory", c.Name())
	assert.NoError(t, closeFn())
}

func TestNewCollectorWithMock(t *testing.T) {
	col, closeFn, err := NewCollector(testConfig("mock"))
	require.NoError(t, err)
	defer closeFn()

	a, err := col.Analyze(context.Background(), "TCS.NS")
	require.NoError(t, err)
	assert.Equal(t, 500, a.Bars)
	assert.True(t, a.Snapshot.Complete())
	assert.Contains(t, []model.Suggestion{model.SuggestionBuy, model.SuggestionSell, model.SuggestionHold}, a.Suggestion)
}
