package scrape

import "strings"

// Candidate produces one possible value of a field; "" means unavailable.
type Candidate func() string

// FirstNonEmpty evaluates candidates in order and returns the first
// non-blank value. Later candidates are not evaluated.
func FirstNonEmpty(candidates ...Candidate) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(c()); v != "" {
			return v
		}
	}
	return ""
}

// Value wraps a precomputed value as a Candidate.
func Value(v string) Candidate {
	return func() string { return v }
}
