package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/delivery/http/request"
	"github.com/user/catalog-service/internal/delivery/http/response"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/internal/usecase"
)

const (
	healthCheckTimeout  = 2 * time.Second
	defaultFailureLimit = 50
	maxFailureLimit     = 500
)

// Pinger is a dependency the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	catalog  usecase.Catalog
	relay    usecase.Relay
	warmer   usecase.Warmer
	failures repository.FetchFailureRepository
	checks   map[string]Pinger
	logger   *zap.Logger
}

// NewHandler wires the use cases into HTTP handlers. warmer and failures may
// be nil. checks names the optional dependencies reported by the health check.
func NewHandler(
	catalog usecase.Catalog,
	relay usecase.Relay,
	warmer usecase.Warmer,
	failures repository.FetchFailureRepository,
	checks map[string]Pinger,
	l *zap.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		relay:    relay,
		warmer:   warmer,
		failures: failures,
		checks:   checks,
		logger:   l,
	}
}

func (h *Handler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slugParam(w, r)
	if !ok {
		return
	}
	detail, err := h.catalog.Product(r.Context(), slug)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) HandleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slugParam(w, r)
	if !ok {
		return
	}
	detail, err := h.catalog.BlogPost(r.Context(), slug)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug, ok := h.slugParam(w, r)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	detail, err := h.catalog.Category(r.Context(), slug, page)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) HandleGetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Featured(r.Context())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.relay.Products(r.Context(), r.URL.Query())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	body, err := h.relay.Categories(r.Context(), r.URL.Query())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) HandleListRootCategories(w http.ResponseWriter, r *http.Request) {
	body, err := h.relay.RootCategories(r.Context())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) HandleListBlogs(w http.ResponseWriter, r *http.Request) {
	body, err := h.relay.Blogs(r.Context())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) HandleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := req.Decode(r.Body); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	body, err := h.relay.Contact(r.Context(), req.ToEntity())
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) HandleSubmitWarm(w http.ResponseWriter, r *http.Request) {
	if h.warmer == nil {
		h.writeJSONError(w, "Cache warming requires REDIS_ADDR", http.StatusServiceUnavailable)
		return
	}

	var req request.WarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeJSONError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	queued, err := h.warmer.Submit(r.Context(), req.Slugs)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	resp := response.SubmitWarmResponse{
		Status:  "success",
		Message: "Slugs queued for cache warming",
		Queued:  queued,
	}
	h.writeJSON(w, http.StatusAccepted, resp)
}

func (h *Handler) HandleListFetchFailures(w http.ResponseWriter, r *http.Request) {
	if h.failures == nil {
		h.writeJSONError(w, "Fetch failure log is not configured", http.StatusNotFound)
		return
	}

	limit := defaultFailureLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxFailureLimit)
	}

	failures, err := h.failures.FindRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list fetch failures", zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, response.NewFetchFailureResponses(failures))
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := response.HealthResponse{Status: "ok"}
	if len(h.checks) > 0 {
		resp.Dependencies = make(map[string]string, len(h.checks))
	}
	for name, dep := range h.checks {
		if err := dep.Ping(ctx); err != nil {
			h.logger.Error("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Dependencies[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "healthy"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, resp)
}

// slugParam returns the slug path segment decoded exactly once. chi matches
// against the escaped path when the request spelled it non-canonically, for
// example with the lowercase hex WordPress permalinks use.
func (h *Handler) slugParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	slug := chi.URLParam(r, "slug")
	if r.URL.RawPath == "" {
		return slug, true
	}
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		h.writeJSONError(w, "Invalid slug encoding", http.StatusBadRequest)
		return "", false
	}
	return decoded, true
}

// writeUseCaseError maps use case and upstream errors to a status and an
// error-only body.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var fetchErr *repository.FetchError
	switch {
	case errors.Is(err, usecase.ErrSlugRequired):
		h.writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrAPIBaseURLNotConfigured):
		h.logger.Error("Catalog API is not configured", zap.String("path", r.URL.Path))
		h.writeJSONError(w, err.Error(), http.StatusInternalServerError)
	case errors.As(err, &fetchErr):
		status := fetchErr.HTTPStatus()
		h.logger.Warn("Upstream request failed",
			zap.String("path", r.URL.Path),
			zap.String("upstream", fetchErr.URL),
			zap.Int("status", status),
			zap.Error(err),
		)
		h.writeJSONError(w, fmt.Sprintf("Upstream request failed (%d)", status), status)
	default:
		h.logger.Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, response.ErrorResponse{Error: message})
}
