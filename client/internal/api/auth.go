package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// Register creates an account and returns the token plus identity snapshot.
func Register(ctx context.Context, httpClient HTTPClient, baseURL string, req types.RegisterRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	err := send(ctx, httpClient, call{
		op:     "register",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/auth/register", baseURL),
		in:     req,
		out:    &out,
		schema: types.SchemaAuth,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token plus identity snapshot.
func Login(ctx context.Context, httpClient HTTPClient, baseURL string, req types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	err := send(ctx, httpClient, call{
		op:     "login",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/auth/login", baseURL),
		in:     req,
		out:    &out,
		schema: types.SchemaAuth,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile returns the authenticated user's profile and stats.
func GetProfile(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.ProfileResponse, error) {
	var out types.ProfileResponse
	err := send(ctx, httpClient, call{
		op:     "get profile",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/auth/profile", baseURL),
		out:    &out,
		schema: types.SchemaProfile,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the editable profile fields and returns the new identity.
func UpdateProfile(ctx context.Context, httpClient HTTPClient, baseURL string, req types.UpdateProfileRequest) (*types.Identity, error) {
	var out types.Identity
	err := send(ctx, httpClient, call{
		op:     "update profile",
		method: http.MethodPut,
		url:    fmt.Sprintf("%s/auth/profile", baseURL),
		in:     req,
		out:    &out,
		schema: types.SchemaIdentity,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser returns another user's public profile and stats.
func GetUser(ctx context.Context, httpClient HTTPClient, baseURL, userID string) (*types.ProfileResponse, error) {
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return nil, err
	}
	var out types.ProfileResponse
	err := send(ctx, httpClient, call{
		op:     "get user",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/auth/user/%s", baseURL, url.PathEscape(userID)),
		out:    &out,
		schema: types.SchemaProfile,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
