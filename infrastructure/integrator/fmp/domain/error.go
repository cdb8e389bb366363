package fmpdomain

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the FMP API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fmp: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed on a retry. Rate
// limiting and server-side failures are transient; everything else is not.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}
