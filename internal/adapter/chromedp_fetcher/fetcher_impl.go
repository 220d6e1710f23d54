package chromedp_fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

const source = "browser"

var extraHeaders = network.Headers{
	"Accept-Language": "fa-IR,fa;q=0.9,en;q=0.8",
}

var errNoResponse = errors.New("navigation produced no document response")

// ChromedpFetcher renders pages in a shared headless Chrome. Each Fetch opens
// its own tab.
type ChromedpFetcher struct {
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	timeout       time.Duration
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewChromedpFetcher starts a headless browser. Call Close to shut it down.
func NewChromedpFetcher(userAgent string, pageLoadTimeout time.Duration, m *metrics.Metrics, l *zap.Logger) (*ChromedpFetcher, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Tabs opened later share this browser; cancelling a tab must not close it.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &ChromedpFetcher{
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		timeout:       pageLoadTimeout,
		metrics:       m,
		logger:        l,
	}, nil
}

// Fetch navigates to url and returns the rendered document.
func (c *ChromedpFetcher) Fetch(ctx context.Context, url string) (*entity.RawDocument, error) {
	taskCtx, cancel := chromedp.NewContext(c.browserCtx, chromedp.WithLogf(c.logger.Sugar().Debugf))
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, c.timeout)
	defer cancelTimeout()

	start := time.Now()
	err := chromedp.Run(taskCtx, network.Enable(), network.SetExtraHTTPHeaders(extraHeaders))
	var resp *network.Response
	if err == nil {
		resp, err = chromedp.RunResponse(taskCtx, chromedp.Navigate(url))
	}
	if err == nil && resp == nil {
		err = errNoResponse
	}
	if err != nil {
		c.metrics.ObserveFetch(source, "network", time.Since(start).Seconds())
		c.logger.Warn("Browser navigation failed", zap.String("url", url), zap.Error(err))
		return nil, &repository.FetchError{URL: url, Cause: err}
	}

	status := int(resp.Status)
	if status < 200 || status >= 300 {
		c.metrics.ObserveFetch(source, "status", time.Since(start).Seconds())
		c.logger.Warn("Browser navigation returned non-success status", zap.String("url", url), zap.Int("status", status))
		return nil, &repository.FetchError{URL: url, StatusCode: status}
	}

	var html string
	if err := chromedp.Run(taskCtx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	); err != nil {
		c.metrics.ObserveFetch(source, "network", time.Since(start).Seconds())
		c.logger.Warn("Failed to read rendered document", zap.String("url", url), zap.Error(err))
		return nil, &repository.FetchError{URL: url, Cause: err}
	}

	elapsed := time.Since(start)
	c.metrics.ObserveFetch(source, "success", elapsed.Seconds())
	c.logger.Debug("Rendered page", zap.String("url", url), zap.Int("bytes", len(html)))

	return &entity.RawDocument{
		URL:        url,
		HTML:       html,
		StatusCode: status,
		FetchedIn:  elapsed,
	}, nil
}

// Close shuts down the browser.
func (c *ChromedpFetcher) Close() {
	c.cancelBrowser()
	c.cancelAlloc()
}
