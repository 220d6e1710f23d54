package repository

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAPIBaseURLNotConfigured = errors.New("API base URL is not configured, set API_BASE_URL")
)

// FetchError is returned by fetchers and API clients when an outbound request
// fails. StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch %s failed (%d)", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// HTTPStatus is the status an inbound request fails with for this error.
func (e *FetchError) HTTPStatus() int {
	if e.StatusCode == 0 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}
