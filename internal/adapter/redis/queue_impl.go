package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const warmQueueKey = cacheKeyPrefix + "warm-queue"

// QueueRepoImpl provides a concrete implementation for the WarmQueueRepository interface using Redis Lists.
type QueueRepoImpl struct {
	client *redis.Client
}

// NewQueueRepo creates a new instance of QueueRepoImpl.
func NewQueueRepo(client *redis.Client) *QueueRepoImpl {
	return &QueueRepoImpl{client: client}
}

// Push adds slugs to the left side of the Redis list (acting as a queue).
func (r *QueueRepoImpl) Push(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}
	values := make([]interface{}, len(slugs))
	for i, s := range slugs {
		values[i] = s
	}
	return r.client.LPush(ctx, warmQueueKey, values...).Err()
}

// Pop removes a slug from the right side of the list. An empty list is not an error.
func (r *QueueRepoImpl) Pop(ctx context.Context) (string, bool, error) {
	slug, err := r.client.RPop(ctx, warmQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slug, true, nil
}

// Size returns the current number of items in the queue.
func (r *QueueRepoImpl) Size(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, warmQueueKey).Result()
}
