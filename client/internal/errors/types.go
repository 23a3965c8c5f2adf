// Package errors provides the error vocabulary of the client SDK.
//
// Every non-2xx backend response is surfaced as an *APIError carrying the
// HTTP status and the backend-provided message. The client never retries;
// Category only tells callers which failures are worth a "try again" hint.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCategory tells callers whether repeating the same request later could succeed.
type ErrorCategory int

const (
	// Recoverable failures may succeed later: 408, 429, 5xx and network errors.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail again unchanged: 400, 401, 403, 404, 409...
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// APIError is a backend rejection.
type APIError struct {
	Op         string // logical operation, e.g. "login"
	StatusCode int    // HTTP status code (0 for network failures)
	Message    string // backend "message" field, empty when the body had none
	Body       string // raw response body for debugging
	Underlying error  // network error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		msg := e.Message
		if msg == "" {
			msg = http.StatusText(e.StatusCode)
		}
		return fmt.Sprintf("%s failed: HTTP %d: %s", e.Op, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Underlying
}

// Category classifies the failure.
func (e *APIError) Category() ErrorCategory {
	if e.StatusCode == 0 {
		return Recoverable
	}
	return getHTTPErrorCategory(e.StatusCode)
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == code
}

// MessageOf returns the backend message carried by err, or fallback when err
// has none. It is the single place screens turn failures into inline text.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode > 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
