package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one fetched document plus the lazily built DOM used for meta tag
// and JSON-LD lookups. A Page belongs to a single request.
type Page struct {
	HTML string
	Base *url.URL

	dom    *goquery.Document
	domErr error
	parsed bool
}

// NewPage wraps html fetched from rawURL. An unparsable rawURL leaves Base
// nil, so relative links stay relative.
func NewPage(rawURL, html string) *Page {
	base, err := url.Parse(rawURL)
	if err != nil {
		base = nil
	}
	return &Page{HTML: html, Base: base}
}

func (p *Page) document() (*goquery.Document, bool) {
	if !p.parsed {
		p.dom, p.domErr = goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
		p.parsed = true
	}
	return p.dom, p.domErr == nil
}

// Meta returns the content of the first <meta> whose property or name equals
// key, whitespace-normalized. Open Graph tags use property, others name.
func (p *Page) Meta(key string) string {
	doc, ok := p.document()
	if !ok {
		return ""
	}
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("property", "") != key && s.AttrOr("name", "") != key {
			return true
		}
		content = CollapseWhitespace(s.AttrOr("content", ""))
		return content == ""
	})
	return content
}

// MetaURL is Meta resolved against the page URL.
func (p *Page) MetaURL(key string) string {
	return ResolveURL(p.Base, p.Meta(key))
}

// Resolve absolutizes a URL found in this page's markup.
func (p *Page) Resolve(raw string) string {
	return ResolveURL(p.Base, raw)
}
