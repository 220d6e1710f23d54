package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/delivery/http/handler"
	"github.com/user/catalog-service/internal/delivery/http/middleware"
	"github.com/user/catalog-service/pkg/metrics"
)

const requestTimeout = 60 * time.Second

func New(h *handler.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, l *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(l))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	// Prometheus metrics endpoint
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HandleHealthCheck)

		r.Get("/products", h.HandleListProducts)
		r.Get("/products/categories", h.HandleListCategories)
		r.Get("/products/categories/{slug}", h.HandleGetCategory)
		r.Get("/products/root-categories", h.HandleListRootCategories)
		r.Get("/products/{slug}", h.HandleGetProduct)
		r.Get("/featured-products", h.HandleGetFeaturedProducts)

		r.Get("/blogs", h.HandleListBlogs)
		r.Get("/blog/{slug}", h.HandleGetBlogPost)

		r.Post("/contact", h.HandleSubmitContact)

		r.Post("/cache/warm", h.HandleSubmitWarm)
		r.Get("/fetch-failures", h.HandleListFetchFailures)
	})

	return r
}
