package usecase

import (
	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/scrape"
)

const (
	blogTitleClass   = "entry-title"
	blogContentClass = "entry-content"
)

// AssembleBlogPost builds a BlogPostDetail from a fetched blog post page.
func AssembleBlogPost(page *scrape.Page, slug string) *entity.BlogPostDetail {
	html := page.HTML
	content, _ := scrape.FindElement(html, "div", scrape.ClassAttr(blogContentClass))
	blocks := scrape.Tokenize(content.Inner, page.Base)

	d := &entity.BlogPostDetail{
		Slug: slug,
		Href: pageHref(page),
		Title: scrape.FirstNonEmpty(
			func() string { return scrape.ElementText(html, blogTitleClass) },
			func() string { return page.Meta("og:title") },
			scrape.Value(slug),
		),
		Description: scrape.FirstNonEmpty(
			func() string { return page.Meta("og:description") },
			func() string { return firstBlock(blocks, entity.BlockParagraph).Text },
		),
		Image: scrape.FirstNonEmpty(
			func() string { return page.MetaURL("og:image") },
			func() string { return firstBlock(blocks, entity.BlockImage).Src },
		),
		ContentHTML:   scrape.SanitizeHTML(content.Inner),
		ContentBlocks: blocks,
		Author: scrape.FirstNonEmpty(
			func() string { return page.Meta("author") },
			func() string { return scrape.AuthorLink(html) },
		),
		PublishedAt: scrape.FirstNonEmpty(
			func() string { return page.Meta("article:published_time") },
			func() string { return scrape.TimeDatetime(html) },
		),
	}

	if crumb, ok := scrape.BreadcrumbCategory(html, page.Base); ok {
		d.Category = crumb.Label
		d.CategoryHref = crumb.Href
	}
	return d
}

func firstBlock(blocks []entity.ContentBlock, kind entity.BlockType) entity.ContentBlock {
	for _, b := range blocks {
		if b.Type == kind {
			return b
		}
	}
	return entity.ContentBlock{}
}
