package scrape

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const productTypeMarker = `"Product"`

// JSONLDProduct returns the first schema.org Product object embedded in the
// page. Blocks are tried in document order; a block that does not mention
// Product or does not parse is skipped. The first block that yields a
// Product wins even if later blocks hold other Products.
func (p *Page) JSONLDProduct() (map[string]interface{}, bool) {
	doc, ok := p.document()
	if !ok {
		return nil, false
	}

	var product map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if !strings.Contains(raw, productTypeMarker) {
			return true
		}
		var data interface{}
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return true
		}
		product = findProduct(data)
		return product == nil
	})
	return product, product != nil
}

// JSONLDProductDescription is the description of JSONLDProduct as display
// text.
func (p *Page) JSONLDProductDescription() string {
	product, ok := p.JSONLDProduct()
	if !ok {
		return ""
	}
	desc, _ := product["description"].(string)
	return CleanText(desc)
}

// findProduct looks for a Product-typed object at the top level, inside a
// top-level array, or inside an @graph array.
func findProduct(data interface{}) map[string]interface{} {
	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok && isProduct(obj) {
				return obj
			}
		}
	case map[string]interface{}:
		if isProduct(v) {
			return v
		}
		if graph, ok := v["@graph"].([]interface{}); ok {
			return findProduct(graph)
		}
	}
	return nil
}

func isProduct(obj map[string]interface{}) bool {
	switch t := obj["@type"].(type) {
	case string:
		return t == "Product"
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}
