package usecase

import (
	"net/url"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/scrape"
)

const (
	categoryTitleClass = "page-title"
	categoryDescClass  = "term-description"
)

// AssembleCategory builds one page of a product category archive. site is
// the marketing site root used to recognize product links.
func AssembleCategory(page *scrape.Page, site *url.URL, slug string, pageNum int) *entity.CategoryDetail {
	html := page.HTML
	return &entity.CategoryDetail{
		Slug: slug,
		Href: pageHref(page),
		Page: pageNum,
		Title: scrape.FirstNonEmpty(
			func() string { return scrape.ElementText(html, categoryTitleClass) },
			func() string { return page.Meta("og:title") },
			scrape.Value(slug),
		),
		Description: scrape.FirstNonEmpty(
			func() string { return scrape.ElementText(html, categoryDescClass) },
			func() string { return page.Meta("og:description") },
		),
		Image:    page.MetaURL("og:image"),
		Products: scrape.ProductCards(html, site, 0),
		HasNext:  scrape.HasNextPage(html),
	}
}
