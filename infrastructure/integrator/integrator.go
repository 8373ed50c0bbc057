// Package integrator holds types shared by the external partner API clients.
package integrator

import "fmt"

// APIError is a non-success response from a partner API. The status code and
// message are forwarded to the caller as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("partner API error (status %d): %s", e.StatusCode, e.Message)
}
