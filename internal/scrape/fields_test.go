package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/catalog-service/internal/entity"
)

func TestBreadcrumbCategory(t *testing.T) {
	base := mustURL(t, "https://mbico.ir/products/deck-oven/")
	html := `<header><a href="/">logo</a></header>` +
		`<nav class="woocommerce-breadcrumb" aria-label="Breadcrumb">` +
		`<a href="https://mbico.ir">Home</a> / ` +
		`<a href="/products/">Products</a> / ` +
		`<a href="/product-category/ovens/">Ovens</a> / Deck oven</nav>`

	crumbs := Breadcrumb(html, base)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Home", crumbs[0].Label)

	cat, ok := BreadcrumbCategory(html, base)
	require.True(t, ok)
	assert.Equal(t, "Ovens", cat.Label)
	assert.Equal(t, "https://mbico.ir/product-category/ovens/", cat.Href)
}

func TestBreadcrumbCategory_MissingContainer(t *testing.T) {
	_, ok := BreadcrumbCategory(`<nav class="menu"><a href="/">Home</a></nav>`, nil)
	assert.False(t, ok)
}

func TestPrice(t *testing.T) {
	sale := `<p class="price"><del><span>100,000</span></del> <ins><span class="amount">80,000&nbsp;تومان</span></ins></p>`
	assert.Equal(t, "80,000 تومان", Price(sale))

	plain := `<p class="price product-page-price"><span class="amount">95,000 تومان</span></p>`
	assert.Equal(t, "95,000 تومان", Price(plain))

	archive := `<span class="price"><span class="woocommerce-Price-amount amount"><bdi>95,000&nbsp;تومان</bdi></span></span>`
	assert.Equal(t, "95,000 تومان", Price(archive))

	archiveSale := `<span class="price"><del><span class="woocommerce-Price-amount amount">100,000</span></del>` +
		`<ins><span class="woocommerce-Price-amount amount">80,000</span></ins></span>`
	assert.Equal(t, "80,000", Price(archiveSale))

	assert.Empty(t, Price(`<p class="desc">no price</p>`))
	assert.Empty(t, Price(`<span class="price-label">Price</span>`))
}

func TestCartHref(t *testing.T) {
	base := mustURL(t, "https://mbico.ir/products/oven/")

	link := `<a href="?add-to-cart=123" class="button">Add</a>`
	assert.Equal(t, "https://mbico.ir/products/oven/?add-to-cart=123", CartHref(link, base))

	button := `<form class="cart"><button type="submit" name="add-to-cart" value="456" class="single_add_to_cart_button">Buy</button></form>`
	assert.Equal(t, "https://mbico.ir/products/oven/?add-to-cart=456", CartHref(button, base))

	assert.Empty(t, CartHref(`<a href="/contact/">Call</a>`, base))
}

func TestSpecDownloadHref(t *testing.T) {
	base := mustURL(t, "https://mbico.ir/products/oven/")
	html := `<a href="/about/">About</a><a class="btn" href="/wp-content/uploads/catalog.pdf">Catalog</a>`
	assert.Equal(t, "https://mbico.ir/wp-content/uploads/catalog.pdf", SpecDownloadHref(html, base))
	assert.Empty(t, SpecDownloadHref(`<a href="/x.jpg">x</a>`, base))
}

func TestFaqItems(t *testing.T) {
	html := `<div class="elementor-accordion">` +
		`<div class="elementor-accordion-item">` +
		`<a class="elementor-accordion-title" href=""><span>Warranty?</span></a>` +
		`<div class="elementor-tab-content"><p>Two <b>years</b>.</p></div></div>` +
		`<div class="elementor-accordion-item">` +
		`<a class="elementor-accordion-title" href="">No body</a></div>` +
		`<div class="elementor-accordion-item">` +
		`<a class="elementor-accordion-title" href=""><span>  WARRANTY? </span></a>` +
		`<div class="elementor-tab-content">Duplicate</div></div>` +
		`<div class="elementor-accordion-item">` +
		`<a class="accordion-title" href="">Delivery time</a>` +
		`<div class="accordion-body"><div><p>One week</p></div></div></div>` +
		`</div>`

	assert.Equal(t, []entity.FaqItem{
		{Question: "Warranty?", Answer: "Two years."},
		{Question: "Delivery time", Answer: "One week"},
	}, FaqItems(html))
}

func TestVideoGallery(t *testing.T) {
	base := mustURL(t, "https://mbico.ir/products/oven/")
	html := `<a class="open-video btn" href="https://aparat.com/v/x">1</a>` +
		`<a href="/v/y" class="open-video">2</a>` +
		`<a class="open-video" href="https://aparat.com/v/x">again</a>` +
		`<a class="open-video-link" href="/v/z">not a trigger</a>`

	assert.Equal(t, []string{"https://aparat.com/v/x", "https://mbico.ir/v/y"}, VideoGallery(html, base))
	assert.Nil(t, VideoGallery(`<a href="/v/z">x</a>`, base))
}

func TestNavItems(t *testing.T) {
	html := `<a href="#moarefi">Introduction</a><a href="#moarefi">Again</a>` +
		`<a href="#other">Other</a><a href="#faq"><i class="icon"></i></a>` +
		`<a href="#faq">Questions</a><a href="/page#videos">External</a>`
	ids := []string{"moarefi", "moshakhasat", "videos", "faq"}

	assert.Equal(t, []entity.NavItem{
		{ID: "moarefi", Label: "Introduction"},
		{ID: "faq", Label: "Questions"},
	}, NavItems(html, ids))
}

func TestElementTextAndHTML(t *testing.T) {
	html := `<div class="product-highlight"><p onclick="x()">Hot &amp; fresh<script>bad()</script></p></div>`

	assert.Equal(t, "Hot & fresh", ElementText(html, "product-highlight"))

	rich := ElementHTML(html, "div", "product-highlight")
	assert.Contains(t, rich, "<p>Hot &amp; fresh")
	assert.NotContains(t, rich, "onclick")
	assert.NotContains(t, rich, "bad()")

	assert.Empty(t, ElementText(html, "missing"))
	assert.Empty(t, ElementHTML(html, "div", "missing"))
}

func TestHasNextPage(t *testing.T) {
	assert.True(t, HasNextPage(`<head><link rel="next" href="/product-category/ovens/page/3/"></head>`))
	assert.True(t, HasNextPage(`<nav><a class="next page-numbers" href="/page/2/">»</a></nav>`))
	assert.False(t, HasNextPage(`<nav><a class="prev page-numbers" href="/">«</a><a class="next-slide">x</a></nav>`))
}

func TestBlogMetadataHelpers(t *testing.T) {
	base := mustURL(t, "https://mbico.ir/blog/post/")
	html := `<span class="byline"><a class="url fn" rel="author" href="/author/sara/">Sara &amp; Co</a></span>` +
		`<time class="entry-date" datetime="2024-03-01T10:00:00+03:30">March 1</time>` +
		`<img src="data:image/gif;base64,R0l"><img data-src="/up/cover.jpg" alt=" Cover  shot ">`

	assert.Equal(t, "Sara & Co", AuthorLink(html))
	assert.Equal(t, "2024-03-01T10:00:00+03:30", TimeDatetime(html))

	src, alt := FirstImage(html, base)
	assert.Equal(t, "https://mbico.ir/up/cover.jpg", src)
	assert.Equal(t, "Cover shot", alt)

	assert.Empty(t, AuthorLink(`<a href="/author/x/">x</a>`))
	assert.Empty(t, TimeDatetime(`<p>no time</p>`))
}
