package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"IntradayScope/internal/metrics"
	"IntradayScope/internal/model"
)

// BarCache stores fetched bars for a short time.
type BarCache interface {
	Get(ctx context.Context, key string) ([]model.OHLCV, bool)
	Set(ctx context.Context, key string, bars []model.OHLCV, ttl time.Duration)
	Name() string
}

// MemoryCache is an in-process BarCache.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a MemoryCache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(ttl, 2*ttl)}
}

func (m *MemoryCache) Name() string { return "memory" }

func (m *MemoryCache) Get(_ context.Context, key string) ([]model.OHLCV, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	bars, ok := v.([]model.OHLCV)
	return bars, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, bars []model.OHLCV, ttl time.Duration) {
	m.c.Set(key, bars, ttl)
}

// RedisCache is a BarCache shared through Redis, values stored as JSON.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps an existing client.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (r *RedisCache) Name() string { return "redis" }

func (r *RedisCache) Get(ctx context.Context, key string) ([]model.OHLCV, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var bars []model.OHLCV
	if err := json.Unmarshal(b, &bars); err != nil {
		// Delete corrupted cache entry
		_ = r.rdb.Del(ctx, key).Err()
		return nil, false
	}
	return bars, true
}

func (r *RedisCache) Set(ctx context.Context, key string, bars []model.OHLCV, ttl time.Duration) {
	b, err := json.Marshal(bars)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache write failed")
	}
}

// CachingFetcher decorates a Fetcher with a BarCache.
type CachingFetcher struct {
	inner     Fetcher
	cache     BarCache
	ttl       time.Duration
	namespace string
}

// NewCachingFetcher decorates inner with cache. If ttl is 0, it defaults to
// 5 minutes.
func NewCachingFetcher(inner Fetcher, cache BarCache, ttl time.Duration) *CachingFetcher {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingFetcher{inner: inner, cache: cache, ttl: ttl, namespace: "bars"}
}

func (c *CachingFetcher) Name() string { return c.inner.Name() }

func (c *CachingFetcher) FetchBars(ctx context.Context, symbol string, w Window) ([]model.OHLCV, error) {
	key := c.cacheKey(symbol, w)
	if bars, ok := c.cache.Get(ctx, key); ok {
		metrics.RecordCacheLookup(c.cache.Name(), true)
		return bars, nil
	}
	metrics.RecordCacheLookup(c.cache.Name(), false)

	bars, err := c.inner.FetchBars(ctx, symbol, w)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		c.cache.Set(ctx, key, bars, c.ttl)
	}
	return bars, nil
}

func (c *CachingFetcher) cacheKey(symbol string, w Window) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", c.namespace, c.inner.Name(), safe(symbol), safe(w.Period), safe(w.Interval))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
