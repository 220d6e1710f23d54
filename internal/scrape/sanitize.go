package scrape

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy is built once; a finished policy is safe for concurrent use.
var ugcPolicy = sync.OnceValue(bluemonday.UGCPolicy)

// SanitizeHTML keeps the rich markup of a fragment for rendering while
// dropping scripts, event handlers and unsafe URLs.
func SanitizeHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	return strings.TrimSpace(ugcPolicy().Sanitize(fragment))
}
