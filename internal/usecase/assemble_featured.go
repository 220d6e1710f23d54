package usecase

import (
	"net/url"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/internal/scrape"
)

const (
	featuredMarker = "محصولات منتخب؛ راهکاری حرفه\u200cای برای نیازهای شما"
	featuredWindow = 200_000
	featuredLimit  = 12
)

// AssembleFeatured reads the featured products strip of the home page. A
// page without the strip yields an empty, non-nil list.
func AssembleFeatured(html string, site *url.URL) []entity.FeaturedProduct {
	window := scrape.MarkerWindow(html, featuredMarker, featuredWindow)
	if window == "" {
		return []entity.FeaturedProduct{}
	}
	cards := scrape.ProductCards(window, site, featuredLimit)
	if cards == nil {
		return []entity.FeaturedProduct{}
	}
	return cards
}
