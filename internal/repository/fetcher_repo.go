package repository

import (
	"context"

	"github.com/user/catalog-service/internal/entity"
)

// PageFetcher defines the contract for retrieving a rendered marketing page.
type PageFetcher interface {
	// Fetch performs one GET of url. A non-success status is reported as a
	// *FetchError carrying that status.
	Fetch(ctx context.Context, url string) (*entity.RawDocument, error)
}
