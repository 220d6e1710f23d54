package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
	"github.com/user/catalog-service/pkg/metrics"
)

type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	errs  map[string]error
	calls []string
	// gate, when set, holds every fetch until it is closed.
	gate chan struct{}
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{pages: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, target string) (*entity.RawDocument, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, target)
	if err, ok := f.errs[target]; ok {
		return nil, err
	}
	html, ok := f.pages[target]
	if !ok {
		return nil, &repository.FetchError{URL: target, StatusCode: 404}
	}
	return &entity.RawDocument{URL: target, HTML: html, StatusCode: 200, FetchedIn: time.Millisecond}, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

type fakeFailures struct {
	mu      sync.Mutex
	saved   []*entity.FetchFailure
	deleted []string
}

func (f *fakeFailures) SaveOrUpdate(_ context.Context, failure *entity.FetchFailure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, failure)
	return nil
}

func (f *fakeFailures) FindRecent(_ context.Context, limit int) ([]*entity.FetchFailure, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.saved) {
		limit = len(f.saved)
	}
	return f.saved[:limit], nil
}

func (f *fakeFailures) Delete(_ context.Context, target string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, target)
	return nil
}

type fakeCatalogAPI struct {
	page       *entity.CatalogProductPage
	listParams []url.Values
	relayed    map[string]json.RawMessage
	relayCalls []string
	contact    *entity.ContactMessage
	err        error
}

func (f *fakeCatalogAPI) ListProducts(_ context.Context, params url.Values) (*entity.CatalogProductPage, error) {
	f.listParams = append(f.listParams, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeCatalogAPI) Relay(_ context.Context, path string, params url.Values) (json.RawMessage, error) {
	call := path
	if len(params) > 0 {
		call += "?" + params.Encode()
	}
	f.relayCalls = append(f.relayCalls, call)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.relayed[path]
	if !ok {
		return nil, errors.New("unexpected path " + path)
	}
	return body, nil
}

func (f *fakeCatalogAPI) SubmitContact(_ context.Context, msg *entity.ContactMessage) (json.RawMessage, error) {
	f.contact = msg
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(`{"ok":true}`), nil
}

type fakeQueue struct {
	mu     sync.Mutex
	items  []string
	popErr error
}

func (q *fakeQueue) Push(_ context.Context, slugs ...string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, slugs...)
	return nil
}

func (q *fakeQueue) Pop(_ context.Context) (string, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.popErr != nil {
		return "", false, q.popErr
	}
	if len(q.items) == 0 {
		return "", false, nil
	}
	slug := q.items[0]
	q.items = q.items[1:]
	return slug, true, nil
}

func (q *fakeQueue) Size(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}

func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	return metrics.New(prometheus.NewRegistry())
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}
