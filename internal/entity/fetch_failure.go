package entity

import "time"

// FetchFailure mirrors the `fetch_failures` PostgreSQL table schema.
type FetchFailure struct {
	ID                   int64
	URL                  string
	Endpoint             string
	FailureReason        string
	HTTPStatusCode       int
	LastAttemptTimestamp time.Time
	AttemptCount         int
}
