package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

// responseCache wraps the optional cache repository. Cache failures are
// logged and treated as misses; they never fail a request.
type responseCache struct {
	repo    repository.CacheRepository
	metrics *metrics.Metrics
	log     *zap.Logger
	flight  singleflight.Group
}

func newResponseCache(repo repository.CacheRepository, m *metrics.Metrics, log *zap.Logger) *responseCache {
	return &responseCache{repo: repo, metrics: m, log: log}
}

func (c *responseCache) enabled() bool {
	return c != nil && c.repo != nil
}

func (c *responseCache) get(ctx context.Context, endpoint, key string, dst interface{}) bool {
	if !c.enabled() {
		return false
	}
	raw, ok, err := c.repo.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.IncCacheLookup(endpoint, "error")
		c.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	case !ok:
		c.metrics.IncCacheLookup(endpoint, "miss")
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.metrics.IncCacheLookup(endpoint, "error")
		c.log.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	c.metrics.IncCacheLookup(endpoint, "hit")
	return true
}

func (c *responseCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !c.enabled() || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.repo.Set(ctx, key, raw, ttl); err != nil {
		c.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// loadOrBuild returns the cached value under key, or runs build and caches
// its result. Failed builds are never cached. Concurrent misses on one key
// share a single build, which runs detached from the caller's cancellation.
func loadOrBuild[T any](ctx context.Context, c *responseCache, endpoint, key string, ttl time.Duration, build func(context.Context) (T, error)) (T, error) {
	var zero, cached T
	if c.get(ctx, endpoint, key, &cached) {
		return cached, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (interface{}, error) {
		value, err := build(detached)
		if err != nil {
			return nil, err
		}
		c.set(detached, key, value, ttl)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		value, _ := res.Val.(T)
		return value, nil
	}
}
