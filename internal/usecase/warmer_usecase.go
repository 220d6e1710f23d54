package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

// Warmer primes the product detail cache from a shared queue of slugs.
type Warmer interface {
	// Submit queues slugs for warming. With no slugs it queues the products
	// currently featured on the home page.
	Submit(ctx context.Context, slugs []string) (int, error)
	// ProcessNext warms a single queued slug and reports whether the queue
	// had one.
	ProcessNext(ctx context.Context) (bool, error)
}

type warmerUseCase struct {
	queue   repository.WarmQueueRepository
	catalog Catalog
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewWarmerUseCase creates a new instance of the cache warmer use case.
func NewWarmerUseCase(
	queue repository.WarmQueueRepository,
	catalog Catalog,
	m *metrics.Metrics,
	log *zap.Logger,
) Warmer {
	return &warmerUseCase{
		queue:   queue,
		catalog: catalog,
		metrics: m,
		log:     log,
	}
}

func (uc *warmerUseCase) Submit(ctx context.Context, slugs []string) (int, error) {
	if len(slugs) == 0 {
		featured, err := uc.catalog.Featured(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load featured products: %w", err)
		}
		for _, p := range featured {
			slugs = append(slugs, productSlug(p.Href))
		}
	}

	seen := make(map[string]bool, len(slugs))
	queued := make([]string, 0, len(slugs))
	for _, s := range slugs {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		queued = append(queued, s)
	}

	if err := uc.queue.Push(ctx, queued...); err != nil {
		return 0, fmt.Errorf("failed to push slugs to warm queue: %w", err)
	}
	uc.log.Info("Slugs queued for cache warming", zap.Int("count", len(queued)))
	return len(queued), nil
}

func (uc *warmerUseCase) ProcessNext(ctx context.Context) (bool, error) {
	slug, ok, err := uc.queue.Pop(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to pop slug from warm queue: %w", err)
	}
	if !ok {
		return false, nil
	}

	// Fetch failures are already recorded by the catalog use case.
	if _, err := uc.catalog.Product(ctx, slug); err != nil {
		uc.metrics.IncCacheWarm("failure")
		uc.log.Warn("Cache warm failed", zap.String("slug", slug), zap.Error(err))
		return true, nil
	}
	uc.metrics.IncCacheWarm("success")
	uc.log.Debug("Product cache warmed", zap.String("slug", slug))
	return true, nil
}

// productSlug returns the slug of a /products/<slug>/ link, or "".
func productSlug(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "products" {
		return ""
	}
	return parts[1]
}
