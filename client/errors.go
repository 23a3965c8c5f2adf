package client

import (
	clienterrors "github.com/khushisingh18/Ai-blog-website/client/internal/errors"
	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
type (
	APIError      = clienterrors.APIError
	ShapeError    = types.ShapeError
	ErrorCategory = clienterrors.ErrorCategory
)

const (
	Recoverable   = clienterrors.Recoverable
	Irrecoverable = clienterrors.Irrecoverable
)

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) { return clienterrors.AsAPIError(err) }

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, code int) bool { return clienterrors.IsStatus(err, code) }

// MessageOf returns the backend's message for err, or fallback when the
// failure never reached the backend or carried no message.
func MessageOf(err error, fallback string) string { return clienterrors.MessageOf(err, fallback) }
