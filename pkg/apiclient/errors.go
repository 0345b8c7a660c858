package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend rejects the bearer
	// token (or its absence).
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("apiclient: not found")

	// ErrInvalidBaseURL is returned when the configured base URL cannot
	// be used.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")
)

// APIError is a failure reported by the backend through the response
// envelope or status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("apiclient: %s (status %d)", e.Message, e.StatusCode)
}
