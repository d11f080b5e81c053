// Package app builds the runtime components shared by the binaries from a
// loaded configuration.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"IntradayScope/internal/collector"
	"IntradayScope/internal/config"
)

// SetupLogger configures the global zerolog logger.
func SetupLogger(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// LoadConfig reads CONFIG_PATH (default configs/config.yaml) and validates it.
func LoadConfig() (*config.Config, error) {
	path := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// NewFetcher picks the data provider named in the config.
func NewFetcher(cfg *config.Config) (collector.Fetcher, error) {
	ds := cfg.DataSource
	switch ds.Provider {
	case "yahoo":
		return collector.NewYahooFetcher(ds.BaseURL, cfg.Proxy, ds.RateLimit), nil
	case "rest":
		return collector.NewRESTFetcher(ds.BaseURL, ds.APIKey, cfg.Proxy), nil
	case "mock":
		return &collector.MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", ds.Provider)
	}
}

// NewCache returns a Redis cache when an address is configured and an
// in-process cache otherwise. The returned close func releases the client.
func NewCache(cfg *config.Config) (collector.BarCache, func() error) {
	if cfg.Cache.RedisAddr == "" {
		return collector.NewMemoryCache(cfg.Cache.TTL), func() error { return nil }
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr, DB: cfg.Cache.RedisDB})
	return collector.NewRedisCache(rdb), rdb.Close
}

// NewCollector wires fetcher, cache and engine parameters into a Collector.
func NewCollector(cfg *config.Config) (*collector.Collector, func() error, error) {
	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return nil, nil, err
	}
	cache, closeCache := NewCache(cfg)
	log.Info().
		Str("provider", fetcher.Name()).
		Str("cache", cache.Name()).
		Dur("ttl", cfg.Cache.TTL).
		Msg("data source ready")

	cached := collector.NewCachingFetcher(fetcher, cache, cfg.Cache.TTL)
	w := collector.Window{Period: cfg.DataSource.Period, Interval: cfg.DataSource.Interval}
	return collector.NewCollector(cached, w, cfg.Indicators, cfg.Scan.Workers), closeCache, nil
}
