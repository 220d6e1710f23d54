package repository

import (
	"context"

	"github.com/user/catalog-service/internal/entity"
)

// FetchFailureRepository records upstream fetches that failed.
type FetchFailureRepository interface {
	// SaveOrUpdate creates or updates a record for a failed URL.
	SaveOrUpdate(ctx context.Context, failure *entity.FetchFailure) error
	// FindRecent retrieves the most recently failed URLs.
	FindRecent(ctx context.Context, limit int) ([]*entity.FetchFailure, error)
	// Delete removes a record, typically after a successful fetch.
	Delete(ctx context.Context, url string) error
}
