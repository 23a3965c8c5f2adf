package upload

import "fmt"

// Validation failure reasons.
const (
	ReasonInvalidType      = "invalid type"
	ReasonTooLarge         = "too large"
	ReasonNotAuthenticated = "not authenticated"
)

// ValidationError is a file rejected before any network call.
type ValidationError struct {
	Reason  string
	Message string // inline text for the user
}

func (e *ValidationError) Error() string { return fmt.Sprintf("upload rejected (%s): %s", e.Reason, e.Message) }

// Error is an upload the backend rejected or that never reached it.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return "upload failed: " + e.Message }

func (e *Error) Unwrap() error { return e.Err }
