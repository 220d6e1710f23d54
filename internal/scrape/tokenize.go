package scrape

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/user/catalog-service/internal/entity"
	"github.com/user/catalog-service/pkg/utils"
)

// minParagraphRunes drops stray fragments such as a lone "." or an NBSP-only
// paragraph left behind by the page builder.
const minParagraphRunes = 2

var (
	blockOpenRe = regexp.MustCompile(`(?i)<(h[1-6]|p|ul|img|source)\b[^>]*>`)
	mediaOpenRe = regexp.MustCompile(`(?i)<(img|source)\b[^>]*>`)
	listItemRe  = regexp.MustCompile(`(?is)<li\b[^>]*>(.*?)</li\s*>`)

	// paragraphEndRe ends a <p> whose close tag is implied by the next block.
	paragraphEndRe = regexp.MustCompile(`(?i)</p\s*>|<(?:p|h[1-6]|ul|ol|div|section|table|blockquote|figure)\b[^>]*>`)
)

// seenSet is the de-duplication state of one Tokenize call.
type seenSet struct {
	text  map[string]struct{}
	media map[string]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{text: make(map[string]struct{}), media: make(map[string]struct{})}
}

func (s *seenSet) addText(key string) bool {
	if _, ok := s.text[key]; ok {
		return false
	}
	s.text[key] = struct{}{}
	return true
}

func (s *seenSet) addMedia(key string) bool {
	if _, ok := s.media[key]; ok {
		return false
	}
	s.media[key] = struct{}{}
	return true
}

// Tokenize converts an HTML fragment into ordered content blocks. Headings,
// paragraphs, lists, images and media sources are emitted in document order;
// repeated text and repeated media URLs are emitted once. Relative media URLs
// are resolved against base.
func Tokenize(fragment string, base *url.URL) []entity.ContentBlock {
	t := tokenizer{base: base, seen: newSeenSet()}
	t.walk(fragment)
	return t.blocks
}

type tokenizer struct {
	base   *url.URL
	seen   *seenSet
	blocks []entity.ContentBlock
}

func (t *tokenizer) walk(html string) {
	pos := 0
	for pos < len(html) {
		loc := blockOpenRe.FindStringSubmatchIndex(html[pos:])
		if loc == nil {
			return
		}
		start := pos + loc[0]
		openEnd := pos + loc[1]
		tag := strings.ToLower(html[pos+loc[2] : pos+loc[3]])

		switch {
		case tag == "img":
			t.image(html[start:openEnd])
			pos = openEnd
			continue
		case tag == "source":
			t.video(html[start:openEnd])
			pos = openEnd
			continue
		}

		frag, ok := BalancedFragment(html, start, tag)
		if !ok && tag == "p" {
			frag, ok = impliedParagraph(html, start, openEnd), true
		}
		if !ok {
			pos = openEnd
			continue
		}
		switch tag {
		case "p":
			t.paragraph(frag.Inner)
		case "ul":
			t.list(frag.Inner)
		default:
			t.heading(frag.Inner)
		}
		t.media(frag.Inner)
		pos = frag.End
	}
}

// impliedParagraph bounds an unclosed <p> at the next </p> or block-level
// opening tag, whichever comes first, or at the end of html.
func impliedParagraph(html string, start, openEnd int) Fragment {
	innerEnd, end := len(html), len(html)
	if loc := paragraphEndRe.FindStringIndex(html[openEnd:]); loc != nil {
		innerEnd = openEnd + loc[0]
		end = innerEnd
		if html[innerEnd+1] == '/' {
			end = openEnd + loc[1]
		}
	}
	return Fragment{
		Start:      start,
		End:        end,
		InnerStart: openEnd,
		InnerEnd:   innerEnd,
		Outer:      html[start:end],
		Inner:      html[openEnd:innerEnd],
	}
}

func (t *tokenizer) heading(inner string) {
	text := CleanText(inner)
	if text == "" || !t.seen.addText(text) {
		return
	}
	t.blocks = append(t.blocks, entity.Heading(text))
}

func (t *tokenizer) paragraph(inner string) {
	text := CleanText(inner)
	if utf8.RuneCountInString(text) < minParagraphRunes || !t.seen.addText(text) {
		return
	}
	t.blocks = append(t.blocks, entity.Paragraph(text))
}

func (t *tokenizer) list(inner string) {
	raws := make([]string, 0)
	for _, li := range FindAllElements(inner, "li", "") {
		raws = append(raws, li.Inner)
	}
	if len(raws) == 0 {
		raws = MatchChildren(inner, listItemRe)
	}

	var items []string
	for _, raw := range raws {
		if item := CleanText(raw); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 || !t.seen.addText("list\x00"+strings.Join(items, "\x00")) {
		return
	}
	t.blocks = append(t.blocks, entity.List(items))
}

// media emits images and sources nested in a text block, which the outer
// scan skips over.
func (t *tokenizer) media(inner string) {
	for _, m := range mediaOpenRe.FindAllStringSubmatch(inner, -1) {
		if strings.EqualFold(m[1], "img") {
			t.image(m[0])
		} else {
			t.video(m[0])
		}
	}
}

func (t *tokenizer) image(tag string) {
	src := t.resolve(ImageSource(tag))
	if src == "" || !t.seen.addMedia(src) {
		return
	}
	alt := CollapseWhitespace(DecodeEntities(Attr(tag, "alt")))
	t.blocks = append(t.blocks, entity.Image(src, alt))
}

func (t *tokenizer) video(tag string) {
	if strings.HasPrefix(strings.ToLower(Attr(tag, "type")), "image/") {
		return
	}
	src := t.resolve(Attr(tag, "src"))
	if src == "" || !t.seen.addMedia(src) {
		return
	}
	t.blocks = append(t.blocks, entity.Video(src))
}

func (t *tokenizer) resolve(raw string) string {
	return ResolveURL(t.base, raw)
}

// ImageSource picks the most specific source of an <img> tag: the lazy-load
// attribute first, then data-src, then src.
func ImageSource(tag string) string {
	for _, name := range []string{"data-lazy-src", "data-src", "src"} {
		if v := strings.TrimSpace(Attr(tag, name)); v != "" && !isDataURI(v) {
			return v
		}
	}
	return ""
}

// ResolveURL decodes and absolutizes a URL taken from markup. Data URIs and
// unparsable values resolve to "".
func ResolveURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(DecodeEntities(raw))
	if raw == "" || isDataURI(raw) {
		return ""
	}
	abs, err := utils.ToAbsoluteURL(base, raw)
	if err != nil {
		return ""
	}
	return abs
}

func isDataURI(v string) bool {
	return len(v) >= 5 && strings.EqualFold(v[:5], "data:")
}

// Attr returns the raw value of attribute name within a single tag.
func Attr(tag, name string) string {
	pattern := `(?is)(?:^|\s)` + regexp.QuoteMeta(name) + `\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`
	m := cachedRegex(pattern).FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, v := range m[1:] {
		if v != "" {
			return v
		}
	}
	return ""
}
