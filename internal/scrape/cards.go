package scrape

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/user/catalog-service/internal/entity"
)

// cardLookahead bounds how far after a product link its thumbnail is searched.
const cardLookahead = 3500

var (
	lazySrcRe     = regexp.MustCompile(`data-lazy-src\s*=\s*"([^"]+)"`)
	noscriptImgRe = regexp.MustCompile(`(?is)<noscript>\s*<img\b[^>]*\ssrc\s*=\s*"([^"]+)"`)
)

// ProductCards reads product links of the form
// <a href="{site}/products/..." aria-label="title"> and the thumbnail that
// follows each one. Links without a thumbnail are skipped; each href appears
// once. limit <= 0 means no limit.
func ProductCards(html string, site *url.URL, limit int) []entity.FeaturedProduct {
	linkRe := productLinkRegex(site)

	var cards []entity.FeaturedProduct
	seen := make(map[string]struct{})
	for _, loc := range linkRe.FindAllStringSubmatchIndex(html, -1) {
		if limit > 0 && len(cards) >= limit {
			break
		}
		href := DecodeEntities(html[loc[2]:loc[3]])
		if href == "" {
			continue
		}
		if _, dup := seen[href]; dup {
			continue
		}

		end := loc[0] + cardLookahead
		if end > len(html) {
			end = len(html)
		}
		img := cardImage(html[loc[0]:end])
		if img == "" {
			continue
		}

		seen[href] = struct{}{}
		cards = append(cards, entity.FeaturedProduct{
			Title: strings.TrimSpace(DecodeEntities(html[loc[4]:loc[5]])),
			Href:  href,
			Image: DecodeEntities(img),
		})
	}
	return cards
}

func productLinkRegex(site *url.URL) *regexp.Regexp {
	prefix := ""
	if site != nil {
		prefix = regexp.QuoteMeta(strings.TrimRight(site.String(), "/"))
	}
	return cachedRegex(`<a href="(` + prefix + `/products/[^"]+)"[^>]*aria-label="([^"]+)"`)
}

func cardImage(after string) string {
	if m := lazySrcRe.FindStringSubmatch(after); m != nil {
		return m[1]
	}
	if m := noscriptImgRe.FindStringSubmatch(after); m != nil {
		return m[1]
	}
	return ""
}
