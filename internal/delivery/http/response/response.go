package response

import (
	"time"

	"github.com/user/catalog-service/internal/entity"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SubmitWarmResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Queued  int    `json:"queued"`
}

// HealthResponse reports each configured dependency as "healthy" or
// "unhealthy". Dependencies that are not configured are omitted.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// FetchFailureResponse is a DTO for one audit log record, mirroring entity.FetchFailure
type FetchFailureResponse struct {
	URL                  string    `json:"url"`
	Endpoint             string    `json:"endpoint"`
	FailureReason        string    `json:"failure_reason"`
	HTTPStatusCode       int       `json:"http_status_code,omitempty"`
	LastAttemptTimestamp time.Time `json:"last_attempt_timestamp"`
	AttemptCount         int       `json:"attempt_count"`
}

func NewFetchFailureResponses(failures []*entity.FetchFailure) []FetchFailureResponse {
	out := make([]FetchFailureResponse, 0, len(failures))
	for _, f := range failures {
		out = append(out, FetchFailureResponse{
			URL:                  f.URL,
			Endpoint:             f.Endpoint,
			FailureReason:        f.FailureReason,
			HTTPStatusCode:       f.HTTPStatusCode,
			LastAttemptTimestamp: f.LastAttemptTimestamp,
			AttemptCount:         f.AttemptCount,
		})
	}
	return out
}
