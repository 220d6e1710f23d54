package repository

import (
	"context"
	"time"
)

// CacheRepository stores assembled responses under a derived string key.
type CacheRepository interface {
	// Get returns the stored value and true, or false on a miss or expiry.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl, measured from now.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
