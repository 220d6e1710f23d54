package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/catalog-service/pkg/utils"
)

const cacheKeyPrefix = "catalog:"

// CacheRepoImpl provides a concrete implementation for the CacheRepository interface using Redis.
type CacheRepoImpl struct {
	client *redis.Client
}

// NewCacheRepo creates a new instance of CacheRepoImpl.
func NewCacheRepo(client *redis.Client) *CacheRepoImpl {
	return &CacheRepoImpl{client: client}
}

// generateKey hashes the logical key so arbitrary query strings stay short and safe.
func (r *CacheRepoImpl) generateKey(key string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, utils.HashKey(key))
}

// Get returns the stored response. An absent or expired key is a miss, not an error.
func (r *CacheRepoImpl) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores value with an expiry.
func (r *CacheRepoImpl) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// SETEX is atomic and sets the key with an expiry.
	return r.client.SetEx(ctx, r.generateKey(key), value, ttl).Err()
}

// Ping checks the connection, used by the health check.
func (r *CacheRepoImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
