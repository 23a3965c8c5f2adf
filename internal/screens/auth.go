package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/session"
)

// Auth drives the login and register forms.
type Auth struct {
	Session Session
}

// Login signs in with email and password.
func (a *Auth) Login(ctx context.Context, email, password string) (*client.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &FailureError{Message: "Email and password are required"}
	}
	id, err := a.Session.Login(ctx, email, password)
	if err != nil {
		return nil, authFailure(err, "Failed to login")
	}
	return id, nil
}

// Register creates an account once the password passes every rule.
func (a *Auth) Register(ctx context.Context, name, email, password string) (*client.Identity, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, &FailureError{Message: "Name and email are required"}
	}
	if rules := client.CheckPassword(password); !rules.Valid() {
		return nil, &FailureError{Message: fmt.Sprintf("Password must contain %s", strings.Join(rules.Missing(), ", "))}
	}
	id, err := a.Session.Register(ctx, name, email, password)
	if err != nil {
		return nil, authFailure(err, "Failed to register")
	}
	return id, nil
}

// Logout ends the session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.Session.Logout(ctx)
}

func authFailure(err error, fallback string) error {
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		return &FailureError{Message: authErr.Message, Err: err}
	}
	return &FailureError{Message: fallback, Err: err}
}
