package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// entityTable is the fixed set of named entities the marketing site emits.
// Order matters for EncodeEntities: the first name listed for a rune is the
// one it encodes to.
var entityTable = []struct {
	Name string
	Rune rune
}{
	{"amp", '&'},
	{"quot", '"'},
	{"#039", '\''},
	{"lt", '<'},
	{"gt", '>'},
	{"nbsp", '\u00a0'},
	{"lsquo", '‘'},
	{"rsquo", '’'},
	{"ldquo", '“'},
	{"rdquo", '”'},
	{"hellip", '…'},
	{"ndash", '–'},
	{"mdash", '—'},
	{"zwnj", '\u200c'},
	{"apos", '\''},
}

var (
	namedEntities = func() map[string]rune {
		m := make(map[string]rune, len(entityTable))
		for _, e := range entityTable {
			if !strings.HasPrefix(e.Name, "#") {
				m[e.Name] = e.Rune
			}
		}
		return m
	}()

	encodeNames = func() map[rune]string {
		m := make(map[rune]string, len(entityTable))
		for _, e := range entityTable {
			if _, ok := m[e.Rune]; !ok {
				m[e.Rune] = e.Name
			}
		}
		return m
	}()

	rawTextRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`),
		regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`),
		regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript\s*>`),
	}

	entityRe     = regexp.MustCompile(`&(#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6}|[a-zA-Z][a-zA-Z0-9]{1,31});`)
	blockBreakRe = regexp.MustCompile(`(?i)<(?:br|/p|/div|/?ul|/?ol|/?li|/h[1-6]|/tr|/td|/th|/section)\b[^>]*>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
)

// DecodeEntities replaces named entities from the fixed table and numeric
// entities (&#NNN; and &#xHHH;) with their characters in a single pass.
// Unknown names and invalid code points are left as written.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityRe.ReplaceAllStringFunc(s, func(m string) string {
		body := m[1 : len(m)-1]
		if body[0] != '#' {
			if r, ok := namedEntities[body]; ok {
				return string(r)
			}
			return m
		}

		var (
			n   int64
			err error
		)
		if body[1] == 'x' || body[1] == 'X' {
			n, err = strconv.ParseInt(body[2:], 16, 32)
		} else {
			n, err = strconv.ParseInt(body[1:], 10, 32)
		}
		if err != nil || n <= 0 || !utf8.ValidRune(rune(n)) {
			return m
		}
		return string(rune(n))
	})
}

// EncodeEntities is the inverse of DecodeEntities for the characters of the
// fixed entity table. Other characters pass through.
func EncodeEntities(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if name, ok := encodeNames[r]; ok {
			b.WriteByte('&')
			b.WriteString(name)
			b.WriteByte(';')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripTags drops script, style and noscript blocks, then removes anything
// between angle brackets. Block-level boundaries become spaces so adjacent
// paragraphs do not run together.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	for _, re := range rawTextRes {
		s = re.ReplaceAllString(s, " ")
	}
	s = blockBreakRe.ReplaceAllString(s, " ")
	return tagRe.ReplaceAllString(s, "")
}

// CollapseWhitespace turns runs of whitespace, including non-breaking spaces,
// into a single space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanText converts an HTML fragment into display text.
func CleanText(s string) string {
	return CollapseWhitespace(DecodeEntities(StripTags(s)))
}

// normalizeKey is the comparison form used for de-duplication.
func normalizeKey(s string) string {
	return strings.ToLower(CollapseWhitespace(s))
}
