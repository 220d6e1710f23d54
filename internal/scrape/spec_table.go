package scrape

import (
	"regexp"
	"strings"

	"github.com/user/catalog-service/internal/entity"
)

const (
	specRowClass  = "spec-models"
	specCardClass = "spec-model-card"
)

var (
	paragraphRe = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p\s*>`)
	emphasisRe  = regexp.MustCompile(`(?is)<(?:strong|b)\b[^>]*>(.*?)</(?:strong|b)\s*>`)
)

// SpecModels reads the per-model specification cards. The first paragraph of
// a card names the model; each later paragraph is one row whose value is the
// emphasized text and whose label is the inline span, or else whatever text
// remains once the value is removed.
func SpecModels(html string) []entity.SpecModel {
	row, ok := FindElement(html, "div", ClassAttr(specRowClass))
	if !ok {
		return nil
	}

	var models []entity.SpecModel
	for _, card := range FindAllElements(row.Inner, "div", ClassAttr(specCardClass)) {
		paragraphs := MatchChildren(card.Inner, paragraphRe)
		if len(paragraphs) == 0 {
			continue
		}
		model := entity.SpecModel{Name: CleanText(paragraphs[0]), Specs: []entity.SpecPair{}}
		for _, p := range paragraphs[1:] {
			if pair, ok := specPair(p); ok {
				model.Specs = append(model.Specs, pair)
			}
		}
		if model.Name == "" && len(model.Specs) == 0 {
			continue
		}
		models = append(models, model)
	}
	return models
}

func specPair(paragraph string) (entity.SpecPair, bool) {
	m := emphasisRe.FindStringSubmatch(paragraph)
	if m == nil {
		return entity.SpecPair{}, false
	}
	value := CleanText(m[1])
	if value == "" {
		return entity.SpecPair{}, false
	}

	label := ""
	if span := spanRe.FindStringSubmatch(paragraph); span != nil {
		label = CleanText(span[1])
	}
	if label == "" || label == value {
		label = CollapseWhitespace(strings.Replace(CleanText(paragraph), value, "", 1))
	}
	label = strings.TrimSpace(strings.TrimRight(label, ":：-–"))
	return entity.SpecPair{Label: label, Value: value}, true
}
