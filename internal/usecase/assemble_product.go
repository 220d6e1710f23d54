package usecase

import (
	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/scrape"
)

const (
	productTitleClass    = "product_title"
	shortDescClass       = "woocommerce-product-details__short-description"
	galleryImageClass    = "woocommerce-product-gallery__image"
	productHighlight     = "product-highlight"
	productHeroSectionID = "product-hero"
)

// productAnchors are the in-page sections of a product page in priority
// order.
var productAnchors = []string{"moarefi", "moshakhasat", "videos", "faq"}

// AssembleProduct builds a ProductDetail from a fetched product page. Every
// field is extracted independently; a missing field is left empty.
func AssembleProduct(page *scrape.Page, slug string) *entity.ProductDetail {
	html := page.HTML
	shortDesc, _ := scrape.FindElement(html, "div", scrape.ClassAttr(shortDescClass))

	d := &entity.ProductDetail{
		Slug: slug,
		Href: pageHref(page),
		Title: scrape.FirstNonEmpty(
			func() string { return scrape.ElementText(html, productTitleClass) },
			func() string { return page.Meta("og:title") },
			scrape.Value(slug),
		),
		Description: scrape.FirstNonEmpty(
			func() string { return scrape.CleanText(shortDesc.Inner) },
			page.JSONLDProductDescription,
			func() string { return page.Meta("og:description") },
		),
		Image: scrape.FirstNonEmpty(
			func() string { return page.MetaURL("og:image") },
			func() string { return galleryImage(page) },
		),
		Price:         scrape.Price(html),
		CartHref:      scrape.CartHref(html, page.Base),
		Highlight:     scrape.ElementText(html, productHighlight),
		HighlightHTML: scrape.ElementHTML(html, "", productHighlight),
		SummaryHTML:   scrape.SanitizeHTML(shortDesc.Inner),
	}

	if crumb, ok := scrape.BreadcrumbCategory(html, page.Base); ok {
		d.Category = crumb.Label
		d.CategoryHref = crumb.Href
	}

	applyHero(page, d)

	segments := scrape.SegmentByAnchors(html, productAnchors)
	d.NavItems = scrape.NavItems(html, productAnchors)
	d.MoarefiBlocks = scrape.Tokenize(segments["moarefi"], page.Base)
	d.MoshakhasatBlocks = scrape.Tokenize(segments["moshakhasat"], page.Base)
	d.VideoBlocks = scrape.Tokenize(segments["videos"], page.Base)

	d.SpecModels = scrape.SpecModels(html)
	d.SpecDownloadHref = scrape.SpecDownloadHref(html, page.Base)
	d.VideoGallery = scrape.VideoGallery(html, page.Base)
	d.FaqItems = scrape.FaqItems(html)
	return d
}

func galleryImage(page *scrape.Page) string {
	gallery, ok := scrape.FindElement(page.HTML, "div", scrape.ClassAttr(galleryImageClass))
	if !ok {
		return ""
	}
	src, _ := scrape.FirstImage(gallery.Inner, page.Base)
	return src
}

// applyHero fills the hero banner fields from <section id="product-hero">.
func applyHero(page *scrape.Page, d *entity.ProductDetail) {
	hero, ok := scrape.FindElement(page.HTML, "section", scrape.IDAttr(productHeroSectionID))
	if !ok {
		return
	}
	inner := hero.Inner

	d.HeroImage, d.HeroAlt = scrape.FirstImage(inner, page.Base)
	d.HeroEnglish = scrape.ElementText(inner, "hero-english")
	d.HeroTagline = scrape.ElementText(inner, "hero-tagline")
	d.HeroTitle = scrape.FirstNonEmpty(
		func() string { return headingText(inner, "h1") },
		func() string { return headingText(inner, "h2") },
	)
	d.HeroVideo = heroVideo(page, inner)

	if link, ok := scrape.FindElement(inner, "a", scrape.ClassAttr("hero-catalog")); ok {
		d.HeroCatalogHref = page.Resolve(scrape.Attr(link.Outer[:link.InnerStart-link.Start], "href"))
		d.HeroCatalogLabel = scrape.CleanText(link.Inner)
	}
}

func headingText(html, tag string) string {
	h, ok := scrape.FindElement(html, tag, "")
	if !ok {
		return ""
	}
	return scrape.CleanText(h.Inner)
}

func heroVideo(page *scrape.Page, html string) string {
	for _, tag := range []string{"source", "video"} {
		el, ok := scrape.FindElement(html, tag, `\ssrc\s*=`)
		if !ok {
			continue
		}
		if src := page.Resolve(scrape.Attr(el.Outer, "src")); src != "" {
			return src
		}
	}
	return ""
}

func pageHref(page *scrape.Page) string {
	if page.Base == nil {
		return ""
	}
	return page.Base.String()
}
