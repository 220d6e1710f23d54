package scrape

import (
	"regexp"
	"strings"
	"sync"
)

// Fragment is one element located in a document: Start..End spans the whole
// element including its tags, InnerStart..InnerEnd only its content.
type Fragment struct {
	Start, End           int
	InnerStart, InnerEnd int
	Outer, Inner         string
}

var regexCache sync.Map

// cachedRegex compiles pattern once per process. Patterns are built from
// constants in this package, so a compile failure is a programming error.
func cachedRegex(pattern string) *regexp.Regexp {
	if re, ok := regexCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	actual, _ := regexCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// ClassAttr matches a class attribute holding name as one of its tokens.
func ClassAttr(name string) string {
	return classAttrPattern(regexp.QuoteMeta(name))
}

func classAttrPattern(token string) string {
	return `\sclass\s*=\s*["'](?:[^"']*\s)?` + token + `(?:\s[^"']*)?["']`
}

// IDAttr matches an id attribute equal to id.
func IDAttr(id string) string {
	return `\sid\s*=\s*["']` + regexp.QuoteMeta(id) + `["']`
}

// MarkerWindow returns the budget characters starting at the first
// occurrence of marker, or "" when marker is absent.
func MarkerWindow(html, marker string, budget int) string {
	idx := strings.Index(html, marker)
	if idx == -1 {
		return ""
	}
	end := idx + budget
	if end > len(html) {
		end = len(html)
	}
	return html[idx:end]
}

// MatchChildren is the shallow extraction: the first capture group of every
// non-overlapping match of re. It cannot see through nested tags of the same
// kind and is only used where the markup has none.
func MatchChildren(html string, re *regexp.Regexp) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(html, -1) {
		if len(m) > 1 {
			out = append(out, m[1])
		}
	}
	return out
}

// FindElement locates the first <tag> whose attributes match attrPattern and
// returns it up to its matching close tag. An empty tag matches any element.
func FindElement(html, tag, attrPattern string) (Fragment, bool) {
	frags := findElements(html, tag, attrPattern, 1)
	if len(frags) == 0 {
		return Fragment{}, false
	}
	return frags[0], true
}

// FindAllElements returns every non-overlapping match of FindElement in
// document order.
func FindAllElements(html, tag, attrPattern string) []Fragment {
	return findElements(html, tag, attrPattern, -1)
}

func findElements(html, tag, attrPattern string, limit int) []Fragment {
	name := regexp.QuoteMeta(tag)
	if tag == "" {
		name = `[a-zA-Z][a-zA-Z0-9]*`
	}
	re := cachedRegex(`(?i)<(` + name + `)\b[^>]*?` + attrPattern + `[^>]*>`)

	var out []Fragment
	pos := 0
	for pos < len(html) && (limit < 0 || len(out) < limit) {
		loc := re.FindStringSubmatchIndex(html[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		elem := html[pos+loc[2] : pos+loc[3]]
		frag, ok := BalancedFragment(html, start, elem)
		if !ok {
			pos += loc[1]
			continue
		}
		out = append(out, frag)
		pos = frag.End
	}
	return out
}

// BalancedFragment scans forward from start for the first opening <tag> and
// returns the element up to the close tag that brings the nesting depth back
// to zero. It reports false if the document ends first.
func BalancedFragment(html string, start int, tag string) (Fragment, bool) {
	open := findOpenTag(html, start, tag)
	if open < 0 {
		return Fragment{}, false
	}
	openEnd, selfClosing := tagEnd(html, open)
	if openEnd < 0 {
		return Fragment{}, false
	}
	if selfClosing || isVoidElement(tag) {
		return newFragment(html, open, openEnd, openEnd, openEnd), true
	}

	depth := 1
	pos := openEnd
	for pos < len(html) {
		lt := strings.IndexByte(html[pos:], '<')
		if lt < 0 {
			break
		}
		i := pos + lt

		if strings.HasPrefix(html[i:], "<!--") {
			end := strings.Index(html[i+4:], "-->")
			if end < 0 {
				break
			}
			pos = i + 4 + end + 3
			continue
		}

		if closing, ok := tagNameAt(html, i, tag); ok {
			end, selfClosing := tagEnd(html, i)
			if end < 0 {
				break
			}
			switch {
			case closing:
				depth--
				if depth == 0 {
					return newFragment(html, open, end, openEnd, i), true
				}
			case !selfClosing:
				depth++
			}
			pos = end
			continue
		}

		// Skip raw-text elements so markup inside scripts is not counted.
		if skipTo := skipRawText(html, i, tag); skipTo > i {
			pos = skipTo
			continue
		}
		pos = i + 1
	}
	return Fragment{}, false
}

func newFragment(html string, start, end, innerStart, innerEnd int) Fragment {
	return Fragment{
		Start:      start,
		End:        end,
		InnerStart: innerStart,
		InnerEnd:   innerEnd,
		Outer:      html[start:end],
		Inner:      html[innerStart:innerEnd],
	}
}

// findOpenTag returns the offset of the first opening <tag at or after from.
func findOpenTag(html string, from int, tag string) int {
	pos := from
	for pos < len(html) {
		lt := strings.IndexByte(html[pos:], '<')
		if lt < 0 {
			return -1
		}
		i := pos + lt
		if closing, ok := tagNameAt(html, i, tag); ok && !closing {
			return i
		}
		pos = i + 1
	}
	return -1
}

// tagNameAt reports whether the '<' at i starts an opening or closing tag
// named tag. The name must be followed by a delimiter, so "div" does not
// match "<divider".
func tagNameAt(html string, i int, tag string) (closing, ok bool) {
	j := i + 1
	if j < len(html) && html[j] == '/' {
		closing = true
		j++
	}
	if j+len(tag) > len(html) || !strings.EqualFold(html[j:j+len(tag)], tag) {
		return false, false
	}
	k := j + len(tag)
	if k == len(html) {
		return closing, true
	}
	switch html[k] {
	case ' ', '\t', '\n', '\r', '\f', '>', '/':
		return closing, true
	}
	return false, false
}

// tagEnd returns the offset just past the '>' closing the tag that starts at
// i, skipping '>' inside quoted attribute values.
func tagEnd(html string, i int) (end int, selfClosing bool) {
	var quote byte
	for j := i + 1; j < len(html); j++ {
		c := html[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return j + 1, html[j-1] == '/'
		}
	}
	return -1, false
}

func skipRawText(html string, i int, tag string) int {
	for _, raw := range []string{"script", "style"} {
		if strings.EqualFold(raw, tag) {
			continue
		}
		if closing, ok := tagNameAt(html, i, raw); ok && !closing {
			return findCloseTag(html, i+1, raw)
		}
	}
	return -1
}

// findCloseTag returns the offset just past the next </tag>, or len(html).
func findCloseTag(html string, from int, tag string) int {
	pos := from
	for pos < len(html) {
		lt := strings.IndexByte(html[pos:], '<')
		if lt < 0 {
			break
		}
		i := pos + lt
		if closing, ok := tagNameAt(html, i, tag); ok && closing {
			if end, _ := tagEnd(html, i); end > 0 {
				return end
			}
			break
		}
		pos = i + 1
	}
	return len(html)
}

func isVoidElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "img", "source", "br", "hr", "input", "meta", "link", "wbr", "embed", "track":
		return true
	}
	return false
}

// SegmentByAnchors slices html into regions keyed by in-page anchor id. A
// region runs from its anchor element to the next anchor of the priority
// list found later in the document, or to the end of the document. Absent
// anchors produce no region.
func SegmentByAnchors(html string, ids []string) map[string]string {
	positions := make([]int, len(ids))
	for i, id := range ids {
		positions[i] = anchorPosition(html, id)
	}

	segments := make(map[string]string, len(ids))
	for i, id := range ids {
		start := positions[i]
		if start < 0 {
			continue
		}
		end := len(html)
		for _, next := range positions[i+1:] {
			if next > start {
				end = next
				break
			}
		}
		segments[id] = html[start:end]
	}
	return segments
}

func anchorPosition(html, id string) int {
	loc := cachedRegex(IDAttr(id)).FindStringIndex(html)
	if loc == nil {
		return -1
	}
	if lt := strings.LastIndexByte(html[:loc[0]], '<'); lt >= 0 {
		return lt
	}
	return loc[0]
}
