package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

var videoURLRe = regexp.MustCompile(`(?i)\.(mp4|webm|mov|m4v)(\?.*)?$`)

// productFilterParams are forwarded to the product listing as given.
var productFilterParams = []string{"page_size", "category", "root_category", "is_featured", "search", "ordering"}

// Relay serves the structured catalog API, mapped to front-end shapes where
// the front end expects them.
type Relay interface {
	Products(ctx context.Context, query url.Values) (*entity.ProductList, error)
	Categories(ctx context.Context, query url.Values) (json.RawMessage, error)
	RootCategories(ctx context.Context) (json.RawMessage, error)
	Blogs(ctx context.Context) (json.RawMessage, error)
	Contact(ctx context.Context, msg *entity.ContactMessage) (json.RawMessage, error)
}

type relayUseCase struct {
	catalog repository.CatalogRepository
	cache   *responseCache
	ttl     time.Duration
}

// NewRelayUseCase creates the relay use case. cache may be nil.
func NewRelayUseCase(
	catalog repository.CatalogRepository,
	cache repository.CacheRepository,
	m *metrics.Metrics,
	log *zap.Logger,
	ttl time.Duration,
) Relay {
	return &relayUseCase{
		catalog: catalog,
		cache:   newResponseCache(cache, m, log),
		ttl:     ttl,
	}
}

func (uc *relayUseCase) Products(ctx context.Context, query url.Values) (*entity.ProductList, error) {
	page := parsePage(query.Get("page"))
	params := url.Values{"page": {strconv.Itoa(page)}}
	for _, name := range productFilterParams {
		if v := query.Get(name); v != "" {
			params.Set(name, v)
		}
	}

	return loadOrBuild(ctx, uc.cache, "products", cacheKeyProducts(params), uc.ttl,
		func(ctx context.Context) (*entity.ProductList, error) {
			data, err := uc.catalog.ListProducts(ctx, params)
			if err != nil {
				return nil, err
			}
			return MapProductPage(data, page), nil
		})
}

func (uc *relayUseCase) Categories(ctx context.Context, query url.Values) (json.RawMessage, error) {
	params := url.Values{}
	for _, name := range []string{"page", "page_size"} {
		if v := query.Get(name); v != "" {
			params.Set(name, v)
		}
	}
	return loadOrBuild(ctx, uc.cache, "categories", cacheKeyProductCategories(params), uc.ttl,
		func(ctx context.Context) (json.RawMessage, error) {
			return uc.catalog.Relay(ctx, "/api/products/categories/", params)
		})
}

func (uc *relayUseCase) RootCategories(ctx context.Context) (json.RawMessage, error) {
	return loadOrBuild(ctx, uc.cache, "root-categories", cacheKeyRootCategories(), uc.ttl,
		func(ctx context.Context) (json.RawMessage, error) {
			return uc.catalog.Relay(ctx, "/api/products/root-categories/", nil)
		})
}

func (uc *relayUseCase) Blogs(ctx context.Context) (json.RawMessage, error) {
	return loadOrBuild(ctx, uc.cache, "blogs", cacheKeyBlogs(), uc.ttl,
		func(ctx context.Context) (json.RawMessage, error) {
			return uc.catalog.Relay(ctx, "/api/blogs/", nil)
		})
}

func (uc *relayUseCase) Contact(ctx context.Context, msg *entity.ContactMessage) (json.RawMessage, error) {
	return uc.catalog.SubmitContact(ctx, msg)
}

// MapProductPage converts one upstream listing page to the front-end shape.
func MapProductPage(data *entity.CatalogProductPage, page int) *entity.ProductList {
	items := make([]entity.ProductListItem, 0, len(data.Results))
	for _, p := range data.Results {
		items = append(items, entity.ProductListItem{
			Title:      p.Title,
			Href:       "/products/" + url.PathEscape(p.Slug),
			Image:      listingImage(p),
			Slug:       p.Slug,
			Categories: categoryRefs(p.Categories),
		})
	}
	return &entity.ProductList{
		Page:     page,
		Items:    items,
		HasNext:  data.Next != nil && *data.Next != "",
		Sections: []entity.ProductSection{},
	}
}

// listingImage prefers the hero image over the primary image. Video URLs are
// not usable as thumbnails.
func listingImage(p entity.CatalogProduct) string {
	img := p.HeroImage
	if img == "" {
		img = coerceImageURL(p.PrimaryImage)
	}
	if img == "" || videoURLRe.MatchString(img) {
		return ""
	}
	return img
}

// coerceImageURL accepts the primary image as a bare URL or as {"url": ...}.
func coerceImageURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	return ""
}

func categoryRefs(categories []entity.CatalogCategory) []entity.ProductCategoryRef {
	var refs []entity.ProductCategoryRef
	for _, c := range categories {
		if c.Name == "" || c.Slug == "" {
			continue
		}
		ref := entity.ProductCategoryRef{Name: c.Name, Slug: c.Slug}
		if c.RootCategory != nil {
			ref.RootName = c.RootCategory.Name
			ref.RootSlug = c.RootCategory.Slug
		}
		refs = append(refs, ref)
	}
	return refs
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
