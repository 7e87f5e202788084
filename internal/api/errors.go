// Package api provides an HTTP client for the diagram service.
package api

import "fmt"

// APIError represents a non-2xx response from the diagram service.
// It preserves the HTTP status code for programmatic handling and carries
// whatever diagnostic message could be extracted from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("diagram service returned %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized returns true if the error is a 401 (bad or missing API key).
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsRateLimited returns true if the error is a 429.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
