package scrape

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/user/catalog-service/internal/entity"
)

var (
	anchorRe       = regexp.MustCompile(`(?is)<a\b([^>]*)>(.*?)</a\s*>`)
	anchorOpenRe   = regexp.MustCompile(`(?is)<a\b[^>]*>`)
	spanRe         = regexp.MustCompile(`(?is)<span\b[^>]*>(.*?)</span\s*>`)
	priceRe        = regexp.MustCompile(`(?is)<p\b[^>]*\sclass\s*=\s*["'](?:[^"']*\s)?price(?:\s[^"']*)?["'][^>]*>(.*?)</p\s*>`)
	insRe          = regexp.MustCompile(`(?is)<ins\b[^>]*>(.*?)</ins\s*>`)
	cartHrefRe     = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']*[?&](?:amp;)?add-to-cart=\d+[^"']*)["']`)
	cartButtonRe   = regexp.MustCompile(`(?is)<button\b[^>]*\sname\s*=\s*["']add-to-cart["'][^>]*>`)
	pdfHrefRe      = regexp.MustCompile(`(?i)<a\b[^>]*\shref\s*=\s*["']([^"']+\.pdf(?:\?[^"']*)?)["']`)
	openVideoClass = regexp.MustCompile(`(?:^|\s)open-video(?:\s|$)`)
	nextRelRe      = regexp.MustCompile(`(?i)<link\b[^>]*\srel\s*=\s*["']next["']`)
	authorLinkRe   = regexp.MustCompile(`(?is)<a\b[^>]*\srel\s*=\s*["'](?:[^"']*\s)?author(?:\s[^"']*)?["'][^>]*>(.*?)</a\s*>`)
	timeOpenRe     = regexp.MustCompile(`(?i)<time\b[^>]*>`)
	imgOpenRe      = regexp.MustCompile(`(?i)<img\b[^>]*>`)
)

var breadcrumbClasses = []string{"woocommerce-breadcrumb", "rank-math-breadcrumb", "breadcrumb"}

// Crumb is one link of a breadcrumb trail.
type Crumb struct {
	Label string
	Href  string
}

// Breadcrumb returns the links of the page's breadcrumb navigation in order.
// Plain-text trail segments (usually the current page) are not links and are
// not returned.
func Breadcrumb(html string, base *url.URL) []Crumb {
	var nav Fragment
	found := false
	for _, class := range breadcrumbClasses {
		if nav, found = FindElement(html, "nav", ClassAttr(class)); found {
			break
		}
	}
	if !found {
		return nil
	}

	var crumbs []Crumb
	for _, m := range anchorRe.FindAllStringSubmatch(nav.Inner, -1) {
		label := CleanText(m[2])
		if label == "" {
			continue
		}
		crumbs = append(crumbs, Crumb{Label: label, Href: ResolveURL(base, Attr(m[1], "href"))})
	}
	return crumbs
}

// BreadcrumbCategory is the most specific crumb of the trail.
func BreadcrumbCategory(html string, base *url.URL) (Crumb, bool) {
	crumbs := Breadcrumb(html, base)
	if len(crumbs) == 0 {
		return Crumb{}, false
	}
	return crumbs[len(crumbs)-1], true
}

// Price returns the displayed price from <p class="price"> or, on archive and
// related-product markup, <span class="price">. When a sale is shown the
// current (inserted) amount is used.
func Price(html string) string {
	var inner string
	if m := priceRe.FindStringSubmatch(html); m != nil {
		inner = m[1]
	} else if frag, ok := FindElement(html, "span", ClassAttr("price")); ok {
		inner = frag.Inner
	} else {
		return ""
	}

	if ins := insRe.FindStringSubmatch(inner); ins != nil {
		inner = ins[1]
	} else if amount, ok := FindElement(inner, "span", ClassAttr("woocommerce-Price-amount")); ok {
		inner = amount.Inner
	}
	return CleanText(inner)
}

// CartHref returns the add-to-cart link of a product page. A form button
// carrying the product id is turned into the equivalent query link on
// pageURL.
func CartHref(html string, base *url.URL) string {
	if m := cartHrefRe.FindStringSubmatch(html); m != nil {
		return ResolveURL(base, m[1])
	}
	if m := cartButtonRe.FindString(html); m != "" {
		id := strings.TrimSpace(Attr(m, "value"))
		if id == "" || base == nil {
			return ""
		}
		u := *base
		u.RawQuery = url.Values{"add-to-cart": {id}}.Encode()
		u.Fragment = ""
		return u.String()
	}
	return ""
}

// SpecDownloadHref returns the first PDF link, typically the catalog sheet.
func SpecDownloadHref(html string, base *url.URL) string {
	m := pdfHrefRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return ResolveURL(base, m[1])
}

// FaqItems pairs each accordion title with the accordion body that follows
// it. Items with an empty question or answer are dropped; repeated questions
// keep their first answer.
func FaqItems(html string) []entity.FaqItem {
	titles := FindAllElements(html, "a", classAttrPattern(`(?:[\w-]*-)?accordion-title`))
	bodyPattern := classAttrPattern(`(?:[\w-]*-)?(?:accordion-body|tab-content)`)

	var items []entity.FaqItem
	seen := make(map[string]struct{})
	for i, title := range titles {
		limit := len(html)
		if i+1 < len(titles) {
			limit = titles[i+1].Start
		}
		body, ok := FindElement(html[title.End:limit], "div", bodyPattern)
		if !ok {
			continue
		}

		question := ""
		if m := spanRe.FindStringSubmatch(title.Inner); m != nil {
			question = CleanText(m[1])
		}
		if question == "" {
			question = CleanText(title.Inner)
		}
		answer := CleanText(body.Inner)
		if question == "" || answer == "" {
			continue
		}

		key := normalizeKey(question)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, entity.FaqItem{Question: question, Answer: answer})
	}
	return items
}

// VideoGallery returns the distinct absolute hrefs of every link carrying the
// open-video trigger class, sorted.
func VideoGallery(html string, base *url.URL) []string {
	set := make(map[string]struct{})
	for _, tag := range anchorOpenRe.FindAllString(html, -1) {
		if !openVideoClass.MatchString(Attr(tag, "class")) {
			continue
		}
		if href := ResolveURL(base, Attr(tag, "href")); href != "" {
			set[href] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for href := range set {
		out = append(out, href)
	}
	sort.Strings(out)
	return out
}

// NavItems collects in-page links (href="#id") that point at one of ids.
// Each id appears once, labelled by the first link to it that has text.
func NavItems(html string, ids []string) []entity.NavItem {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	var items []entity.NavItem
	seen := make(map[string]struct{})
	for _, m := range anchorRe.FindAllStringSubmatch(html, -1) {
		href := strings.TrimSpace(DecodeEntities(Attr(m[1], "href")))
		if !strings.HasPrefix(href, "#") {
			continue
		}
		id := href[1:]
		if unescaped, err := url.PathUnescape(id); err == nil {
			id = unescaped
		}
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		label := CleanText(m[2])
		if label == "" {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, entity.NavItem{ID: id, Label: label})
	}
	return items
}

// ElementText is the display text of the first element carrying class, or "".
func ElementText(html, class string) string {
	frag, ok := FindElement(html, "", ClassAttr(class))
	if !ok {
		return ""
	}
	return CleanText(frag.Inner)
}

// ElementHTML is the sanitized inner markup of the first element carrying
// class, or "".
func ElementHTML(html, tag, class string) string {
	frag, ok := FindElement(html, tag, ClassAttr(class))
	if !ok {
		return ""
	}
	return SanitizeHTML(frag.Inner)
}

// HasNextPage reports whether a paginated archive links to a following page,
// either through <link rel="next"> or a "next page-numbers" anchor.
func HasNextPage(html string) bool {
	if nextRelRe.MatchString(html) {
		return true
	}
	for _, tag := range anchorOpenRe.FindAllString(html, -1) {
		classes := strings.Fields(Attr(tag, "class"))
		if hasToken(classes, "next") && hasToken(classes, "page-numbers") {
			return true
		}
	}
	return false
}

func hasToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// AuthorLink is the text of the first rel="author" link.
func AuthorLink(html string) string {
	m := authorLinkRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return CleanText(m[1])
}

// TimeDatetime is the datetime attribute of the first <time> element.
func TimeDatetime(html string) string {
	tag := timeOpenRe.FindString(html)
	if tag == "" {
		return ""
	}
	return strings.TrimSpace(DecodeEntities(Attr(tag, "datetime")))
}

// FirstImage returns the resolved source and alt text of the first <img>
// that has a usable source.
func FirstImage(html string, base *url.URL) (src, alt string) {
	for _, tag := range imgOpenRe.FindAllString(html, -1) {
		if src = ResolveURL(base, ImageSource(tag)); src != "" {
			return src, CollapseWhitespace(DecodeEntities(Attr(tag, "alt")))
		}
	}
	return "", ""
}
