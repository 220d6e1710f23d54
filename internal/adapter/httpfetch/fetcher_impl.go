package httpfetch

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

const source = "http"

// Fetcher retrieves marketing pages with plain HTTP GETs.
type Fetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewFetcher creates a fetcher that sends userAgent on every request and
// issues at most ratePerSecond requests per second (0 means unlimited).
// Requests are not retried: a failure is reported to the caller at once.
func NewFetcher(userAgent string, timeout time.Duration, ratePerSecond float64, m *metrics.Metrics, l *zap.Logger) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "fa-IR,fa;q=0.9,en;q=0.8")

	return &Fetcher{
		client:  client,
		limiter: newLimiter(ratePerSecond),
		metrics: m,
		logger:  l,
	}
}

func newLimiter(ratePerSecond float64) *rate.Limiter {
	if ratePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(ratePerSecond), burst)
}

// Fetch performs one GET of url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*entity.RawDocument, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &repository.FetchError{URL: url, Cause: err}
	}

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(url)
	elapsed := time.Since(start)

	if err != nil {
		f.metrics.ObserveFetch(source, "network", elapsed.Seconds())
		f.logger.Warn("Page request failed", zap.String("url", url), zap.Error(err))
		return nil, &repository.FetchError{URL: url, Cause: err}
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		f.metrics.ObserveFetch(source, "status", elapsed.Seconds())
		f.logger.Warn("Page request returned non-success status", zap.String("url", url), zap.Int("status", status))
		return nil, &repository.FetchError{URL: url, StatusCode: status}
	}

	f.metrics.ObserveFetch(source, "success", elapsed.Seconds())
	return &entity.RawDocument{
		URL:        url,
		HTML:       resp.String(),
		StatusCode: status,
		FetchedIn:  elapsed,
	}, nil
}
