// Package clients holds the instrumented HTTP client used to call the quotes
// API. The acl subpackage turns its responses into domain values.
package clients

import "errors"

// Transport-level failures. The acl package maps both to
// domain.ErrUnavailable.
var (
	// ErrCircuitOpen means the breaker rejected the request without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last error once retries are exhausted.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
