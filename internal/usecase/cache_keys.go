package usecase

import (
	"net/url"
	"strconv"
)

// Cache keys. Each endpoint builds its key from the same normalized
// parameters on read and on write.

func cacheKeyProductDetail(slug string) string {
	return "product-detail:" + slug
}

func cacheKeyBlogDetail(slug string) string {
	return "blog-detail:" + slug
}

func cacheKeyProductCategory(slug string, page int) string {
	return "product-category:" + slug + ":page=" + strconv.Itoa(page)
}

func cacheKeyFeaturedProducts() string {
	return "featured-products"
}

// cacheKeyProducts takes the upstream parameter set; Encode sorts by key.
func cacheKeyProducts(params url.Values) string {
	return "products:" + params.Encode()
}

func cacheKeyProductCategories(params url.Values) string {
	return "product-categories:" + params.Encode()
}

func cacheKeyRootCategories() string {
	return "product-root-categories"
}

func cacheKeyBlogs() string {
	return "blogs"
}
