package repository

import "context"

// WarmQueueRepository is a FIFO of product slugs waiting for a cache warm.
type WarmQueueRepository interface {
	Push(ctx context.Context, slugs ...string) error
	// Pop removes the oldest slug. ok is false when the queue is empty.
	Pop(ctx context.Context) (slug string, ok bool, err error)
	Size(ctx context.Context) (int64, error)
}
