package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestRelay_ProductsMapsAndCaches(t *testing.T) {
	api := &fakeCatalogAPI{page: &entity.CatalogProductPage{
		Count: 3,
		Next:  strPtr("https://api.example/api/products/?page=3"),
		Results: []entity.CatalogProduct{
			{
				Title:     "Deck oven",
				Slug:      "deck-oven",
				HeroImage: "https://cdn.example/hero.jpg",
				Categories: []entity.CatalogCategory{
					{Name: "Ovens", Slug: "ovens", RootCategory: &entity.CatalogRootSummary{Name: "Bakery", Slug: "bakery"}},
					{Name: "", Slug: "broken"},
				},
			},
			{Title: "Mixer", Slug: "میکسر", PrimaryImage: json.RawMessage(`{"url":"https://cdn.example/mixer.jpg","alt_text":"m"}`)},
			{Title: "Promo", Slug: "promo", HeroImage: "https://cdn.example/promo.MP4?x=1", PrimaryImage: json.RawMessage(`"https://cdn.example/p.jpg"`)},
		},
	}}
	cache := newMemCache()
	uc := NewRelayUseCase(api, cache, newTestMetrics(t), newTestLogger(), time.Minute)
	ctx := context.Background()

	query := url.Values{"page": {"2"}, "search": {"oven"}, "unknown": {"x"}, "ordering": {""}}
	list, err := uc.Products(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 2, list.Page)
	assert.True(t, list.HasNext)
	assert.NotNil(t, list.Sections)
	assert.Empty(t, list.Sections)
	require.Len(t, list.Items, 3)

	assert.Equal(t, entity.ProductListItem{
		Title: "Deck oven",
		Href:  "/products/deck-oven",
		Image: "https://cdn.example/hero.jpg",
		Slug:  "deck-oven",
		Categories: []entity.ProductCategoryRef{
			{Name: "Ovens", Slug: "ovens", RootName: "Bakery", RootSlug: "bakery"},
		},
	}, list.Items[0])
	assert.Equal(t, "/products/%D9%85%DB%8C%DA%A9%D8%B3%D8%B1", list.Items[1].Href)
	assert.Equal(t, "https://cdn.example/mixer.jpg", list.Items[1].Image)
	assert.Empty(t, list.Items[2].Image)

	require.Len(t, api.listParams, 1)
	assert.Equal(t, "page=2&search=oven", api.listParams[0].Encode())
	assert.Contains(t, cache.entries, "products:page=2&search=oven")

	_, err = uc.Products(ctx, url.Values{"search": {"oven"}, "page": {"2"}})
	require.NoError(t, err)
	assert.Len(t, api.listParams, 1)
}

func TestRelay_ProductsPageNormalization(t *testing.T) {
	for _, raw := range []string{"", "0", "-4", "abc"} {
		api := &fakeCatalogAPI{page: &entity.CatalogProductPage{}}
		uc := NewRelayUseCase(api, nil, newTestMetrics(t), newTestLogger(), time.Minute)

		list, err := uc.Products(context.Background(), url.Values{"page": {raw}})
		require.NoError(t, err, raw)
		assert.Equal(t, 1, list.Page, raw)
		assert.False(t, list.HasNext, raw)
		assert.NotNil(t, list.Items, raw)
		assert.Equal(t, "1", api.listParams[0].Get("page"), raw)
	}
}

func TestRelay_ProductsUpstreamError(t *testing.T) {
	api := &fakeCatalogAPI{err: &repository.FetchError{URL: "https://api.example/api/products/", StatusCode: 503}}
	cache := newMemCache()
	uc := NewRelayUseCase(api, cache, newTestMetrics(t), newTestLogger(), time.Minute)

	_, err := uc.Products(context.Background(), url.Values{})
	var fe *repository.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 503, fe.HTTPStatus())
	assert.Empty(t, cache.entries)
}

func TestRelay_CategoriesUsesCanonicalParams(t *testing.T) {
	api := &fakeCatalogAPI{relayed: map[string]json.RawMessage{
		"/api/products/categories/": json.RawMessage(`{"count":0,"next":null,"previous":null,"results":[]}`),
	}}
	cache := newMemCache()
	uc := NewRelayUseCase(api, cache, newTestMetrics(t), newTestLogger(), time.Minute)

	body, err := uc.Categories(context.Background(), url.Values{"page_size": {"20"}, "page": {"1"}, "x": {"y"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, string(body))
	assert.Equal(t, []string{"/api/products/categories/?page=1&page_size=20"}, api.relayCalls)
	assert.Contains(t, cache.entries, "product-categories:page=1&page_size=20")
}

func TestRelay_RootCategoriesAndBlogs(t *testing.T) {
	api := &fakeCatalogAPI{relayed: map[string]json.RawMessage{
		"/api/products/root-categories/": json.RawMessage(`[{"id":1,"name":"Bakery","slug":"bakery","categories":[]}]`),
		"/api/blogs/":                    json.RawMessage(`[{"id":7,"title":"Post","slug":"post"}]`),
	}}
	cache := newMemCache()
	uc := NewRelayUseCase(api, cache, newTestMetrics(t), newTestLogger(), time.Minute)
	ctx := context.Background()

	roots, err := uc.RootCategories(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Bakery","slug":"bakery","categories":[]}]`, string(roots))

	blogs, err := uc.Blogs(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7,"title":"Post","slug":"post"}]`, string(blogs))

	_, err = uc.Blogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/products/root-categories/", "/api/blogs/"}, api.relayCalls)
	assert.Contains(t, cache.entries, "product-root-categories")
	assert.Contains(t, cache.entries, "blogs")
}

func TestRelay_ContactIsForwarded(t *testing.T) {
	api := &fakeCatalogAPI{}
	uc := NewRelayUseCase(api, newMemCache(), newTestMetrics(t), newTestLogger(), time.Minute)
	msg := &entity.ContactMessage{Body: json.RawMessage(`{"full_name":"Sara","message":"Price list?"}`)}

	body, err := uc.Contact(context.Background(), msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Same(t, msg, api.contact)
}

func TestRelay_MissingAPIBaseURL(t *testing.T) {
	api := &fakeCatalogAPI{err: repository.ErrAPIBaseURLNotConfigured}
	uc := NewRelayUseCase(api, nil, newTestMetrics(t), newTestLogger(), time.Minute)

	_, err := uc.Blogs(context.Background())
	assert.ErrorIs(t, err, repository.ErrAPIBaseURLNotConfigured)
}
