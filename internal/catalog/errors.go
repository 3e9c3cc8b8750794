package catalog

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when a provider needs credentials that were
// not supplied.
var ErrNotConfigured = errors.New("catalog: provider not configured")

// HTTPStatusError reports a non-2xx response from a provider.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Error wraps any failure of a single provider call.
type Error struct {
	Provider string // tmdb, tvmaze
	Stage    string // details, credits, show, seasons, episodes, crew
	ID       int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s %d: %v", e.Provider, e.Stage, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
