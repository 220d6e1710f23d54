package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// HashKey creates a SHA256 hash of a string, for consistent, safe Redis keys.
func HashKey(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	return hex.EncodeToString(h.Sum(nil))
}

// ToAbsoluteURL converts a relative URL to an absolute URL given a base URL.
func ToAbsoluteURL(base *url.URL, relative string) (string, error) {
	relURL, err := url.Parse(strings.TrimSpace(relative))
	if err != nil {
		return "", err
	}
	if base == nil {
		return relURL.String(), nil
	}
	return base.ResolveReference(relURL).String(), nil
}

// JoinPath appends escaped path segments to base and keeps a trailing slash,
// matching the permalink style of the marketing site.
func JoinPath(base *url.URL, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + "/" + strings.Join(segments, "/") + "/"
	u.RawPath = strings.TrimRight(base.EscapedPath(), "/") + "/" + strings.Join(escaped, "/") + "/"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
