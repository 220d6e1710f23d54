package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/internal/scrape"
	"github.com/user/catalog-service/pkg/metrics"
	"github.com/user/catalog-service/pkg/utils"
)

var ErrSlugRequired = errors.New("slug is required")

// Catalog serves the pages scraped from the marketing site.
type Catalog interface {
	Product(ctx context.Context, slug string) (*entity.ProductDetail, error)
	BlogPost(ctx context.Context, slug string) (*entity.BlogPostDetail, error)
	Category(ctx context.Context, slug string, page int) (*entity.CategoryDetail, error)
	Featured(ctx context.Context) ([]entity.FeaturedProduct, error)
}

type catalogUseCase struct {
	fetcher  repository.PageFetcher
	failures repository.FetchFailureRepository
	cache    *responseCache
	metrics  *metrics.Metrics
	log      *zap.Logger
	site     *url.URL
	ttl      time.Duration
}

// NewCatalogUseCase creates the scraping use case. cache and failures may be
// nil, which disables response caching and the fetch-failure log.
func NewCatalogUseCase(
	fetcher repository.PageFetcher,
	cache repository.CacheRepository,
	failures repository.FetchFailureRepository,
	m *metrics.Metrics,
	log *zap.Logger,
	siteURL string,
	ttl time.Duration,
) (Catalog, error) {
	site, err := url.Parse(strings.TrimRight(siteURL, "/"))
	if err != nil || site.Scheme == "" || site.Host == "" {
		return nil, fmt.Errorf("invalid site base URL %q", siteURL)
	}
	return &catalogUseCase{
		fetcher:  fetcher,
		failures: failures,
		cache:    newResponseCache(cache, m, log),
		metrics:  m,
		log:      log,
		site:     site,
		ttl:      ttl,
	}, nil
}

func (uc *catalogUseCase) Product(ctx context.Context, slug string) (*entity.ProductDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	return loadOrBuild(ctx, uc.cache, "product", cacheKeyProductDetail(slug), uc.ttl,
		func(ctx context.Context) (*entity.ProductDetail, error) {
			page, err := uc.fetchPage(ctx, "product", utils.JoinPath(uc.site, "products", slug))
			if err != nil {
				return nil, err
			}
			d := AssembleProduct(page, slug)
			uc.recordMisses("product", map[string]string{
				"price":       d.Price,
				"image":       d.Image,
				"description": d.Description,
				"category":    d.Category,
			})
			return d, nil
		})
}

func (uc *catalogUseCase) BlogPost(ctx context.Context, slug string) (*entity.BlogPostDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	return loadOrBuild(ctx, uc.cache, "blog", cacheKeyBlogDetail(slug), uc.ttl,
		func(ctx context.Context) (*entity.BlogPostDetail, error) {
			page, err := uc.fetchPage(ctx, "blog", utils.JoinPath(uc.site, "blog", slug))
			if err != nil {
				return nil, err
			}
			d := AssembleBlogPost(page, slug)
			uc.recordMisses("blog", map[string]string{
				"image":       d.Image,
				"description": d.Description,
				"content":     d.ContentHTML,
			})
			return d, nil
		})
}

func (uc *catalogUseCase) Category(ctx context.Context, slug string, page int) (*entity.CategoryDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if page < 1 {
		page = 1
	}
	return loadOrBuild(ctx, uc.cache, "category", cacheKeyProductCategory(slug, page), uc.ttl,
		func(ctx context.Context) (*entity.CategoryDetail, error) {
			target := utils.JoinPath(uc.site, "product-category", slug)
			if page > 1 {
				target = utils.JoinPath(uc.site, "product-category", slug, "page", strconv.Itoa(page))
			}
			p, err := uc.fetchPage(ctx, "category", target)
			if err != nil {
				return nil, err
			}
			d := AssembleCategory(p, uc.site, slug, page)
			uc.recordMisses("category", map[string]string{
				"description": d.Description,
				"image":       d.Image,
			})
			return d, nil
		})
}

func (uc *catalogUseCase) Featured(ctx context.Context) ([]entity.FeaturedProduct, error) {
	return loadOrBuild(ctx, uc.cache, "featured", cacheKeyFeaturedProducts(), uc.ttl,
		func(ctx context.Context) ([]entity.FeaturedProduct, error) {
			page, err := uc.fetchPage(ctx, "featured", uc.site.String()+"/")
			if err != nil {
				return nil, err
			}
			products := AssembleFeatured(page.HTML, uc.site)
			if len(products) == 0 {
				uc.metrics.IncExtractionMiss("featured.products")
			}
			return products, nil
		})
}

// fetchPage retrieves target and keeps the fetch-failure log in step with
// the outcome. The log is best effort.
func (uc *catalogUseCase) fetchPage(ctx context.Context, endpoint, target string) (*scrape.Page, error) {
	doc, err := uc.fetcher.Fetch(ctx, target)
	if err != nil {
		uc.log.Error("Page fetch failed", zap.String("endpoint", endpoint), zap.String("url", target), zap.Error(err))
		uc.recordFailure(ctx, endpoint, target, err)
		return nil, err
	}

	uc.log.Debug("Page fetched",
		zap.String("endpoint", endpoint),
		zap.String("url", target),
		zap.Int64("duration_ms", doc.FetchedIn.Milliseconds()),
	)
	if uc.failures != nil {
		if err := uc.failures.Delete(ctx, target); err != nil {
			uc.log.Warn("Failed to clear fetch failure record", zap.String("url", target), zap.Error(err))
		}
	}
	return scrape.NewPage(target, doc.HTML), nil
}

func (uc *catalogUseCase) recordFailure(ctx context.Context, endpoint, target string, fetchErr error) {
	if uc.failures == nil {
		return
	}
	failure := &entity.FetchFailure{
		URL:                  target,
		Endpoint:             endpoint,
		FailureReason:        fetchErr.Error(),
		LastAttemptTimestamp: time.Now(),
	}
	var fe *repository.FetchError
	if errors.As(fetchErr, &fe) {
		failure.HTTPStatusCode = fe.StatusCode
	}
	if err := uc.failures.SaveOrUpdate(ctx, failure); err != nil {
		uc.log.Warn("Failed to record fetch failure", zap.String("url", target), zap.Error(err))
	}
}

func (uc *catalogUseCase) recordMisses(endpoint string, fields map[string]string) {
	for name, value := range fields {
		if value == "" {
			uc.metrics.IncExtractionMiss(endpoint + "." + name)
		}
	}
}
