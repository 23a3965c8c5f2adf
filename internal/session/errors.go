package session

import (
	"errors"
	"fmt"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// ErrNotAuthenticated is returned by operations that need a logged-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError is a login or registration rejected by the backend, or one that
// never reached it. Message is the text to show the user.
type AuthError struct {
	Op      string // "login" or "register"
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

func newAuthError(op, fallback string, err error) *AuthError {
	return &AuthError{Op: op, Message: client.MessageOf(err, fallback), Err: err}
}
