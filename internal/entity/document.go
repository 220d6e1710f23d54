package entity

import "time"

// RawDocument is a fetched HTML page. It lives only for the duration of one
// request.
type RawDocument struct {
	URL        string
	HTML       string
	StatusCode int
	FetchedIn  time.Duration
}
