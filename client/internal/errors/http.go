package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// backendError mirrors the JSON error envelope of the blog backend.
type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError builds an *APIError from a non-2xx response body. Message is
// the JSON "message" field (or "error"); it stays empty when the body has
// neither, so callers fall back to their own text.
func NewHTTPError(op string, statusCode int, body []byte) *APIError {
	msg := ""
	var be backendError
	if len(body) > 0 && json.Unmarshal(body, &be) == nil {
		msg = strings.TrimSpace(be.Message)
		if msg == "" {
			msg = strings.TrimSpace(be.Error)
		}
	}
	return &APIError{
		Op:         op,
		StatusCode: statusCode,
		Message:    msg,
		Body:       string(body),
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(op string, err error) *APIError {
	return &APIError{
		Op:         op,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}
