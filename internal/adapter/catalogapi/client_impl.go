package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

const source = "api"

// Client talks to the structured catalog API.
type Client struct {
	baseURL string
	client  *resty.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewClient creates an API client. An empty baseURL is accepted; every call
// then fails with repository.ErrAPIBaseURLNotConfigured.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics, l *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		metrics: m,
		logger:  l,
	}
}

// ListProducts fetches one page of /api/products/.
func (c *Client) ListProducts(ctx context.Context, params url.Values) (*entity.CatalogProductPage, error) {
	raw, err := c.Relay(ctx, "/api/products/", params)
	if err != nil {
		return nil, err
	}
	var page entity.CatalogProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &repository.FetchError{URL: c.baseURL + "/api/products/", Cause: fmt.Errorf("decode product list: %w", err)}
	}
	return &page, nil
}

// Relay performs a GET of path and returns the body unchanged.
func (c *Client) Relay(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	target, err := c.endpoint(path, params)
	if err != nil {
		return nil, err
	}
	return c.do(c.client.R().SetContext(ctx), resty.MethodGet, target)
}

// SubmitContact posts the contact form body to /api/contact/ unchanged.
func (c *Client) SubmitContact(ctx context.Context, msg *entity.ContactMessage) (json.RawMessage, error) {
	target, err := c.endpoint("/api/contact/", nil)
	if err != nil {
		return nil, err
	}
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(msg.Body))
	return c.do(req, resty.MethodPost, target)
}

func (c *Client) endpoint(path string, params url.Values) (string, error) {
	if c.baseURL == "" {
		return "", repository.ErrAPIBaseURLNotConfigured
	}
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	return target, nil
}

func (c *Client) do(req *resty.Request, method, target string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := req.Execute(method, target)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		c.metrics.ObserveFetch(source, "network", elapsed)
		c.logger.Warn("Catalog API request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, &repository.FetchError{URL: target, Cause: err}
	}
	if !resp.IsSuccess() {
		c.metrics.ObserveFetch(source, "status", elapsed)
		c.logger.Warn("Catalog API returned non-success status",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &repository.FetchError{URL: target, StatusCode: resp.StatusCode()}
	}

	c.metrics.ObserveFetch(source, "success", elapsed)
	body := resp.Body()
	if !json.Valid(body) {
		return nil, &repository.FetchError{URL: target, Cause: fmt.Errorf("response is not JSON")}
	}
	return json.RawMessage(body), nil
}
