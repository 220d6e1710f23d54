package repository

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/user/catalog-service/internal/entity"
)

// CatalogRepository defines the structured upstream catalog API.
type CatalogRepository interface {
	ListProducts(ctx context.Context, params url.Values) (*entity.CatalogProductPage, error)
	// Relay performs a GET of path with params and returns the raw JSON body.
	Relay(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	SubmitContact(ctx context.Context, msg *entity.ContactMessage) (json.RawMessage, error)
}
