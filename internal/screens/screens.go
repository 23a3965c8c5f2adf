// Package screens composes the API client, the session and the device
// controllers into the terminal client's pages. Each screen is a small
// struct whose methods perform one user action and return what to show.
package screens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// ErrLoginRequired is returned by actions that need an authenticated user.
var ErrLoginRequired = errors.New("please login to continue")

// Backend is the subset of *client.Client the screens call.
type Backend interface {
	GetProfile(ctx context.Context) (*client.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req client.UpdateProfileRequest) (*client.Identity, error)
	GetUser(ctx context.Context, userID string) (*client.ProfileResponse, error)

	ListBlogs(ctx context.Context, p client.ListBlogsParams) (*client.ListBlogsResponse, error)
	PersonalizedFeed(ctx context.Context) (*client.ListBlogsResponse, error)
	GetBlog(ctx context.Context, blogID string) (*client.BlogDetailResponse, error)
	CreateBlog(ctx context.Context, req client.CreateBlogRequest) (*client.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error
	ToggleLike(ctx context.Context, blogID string) (*client.LikeResponse, error)
	AddComment(ctx context.Context, blogID, content string) (*client.Comment, error)

	Translate(ctx context.Context, blogID, targetLanguage string) (*client.TranslateResponse, error)
	Leaderboard(ctx context.Context, limit int) ([]client.Identity, error)
	Badges(ctx context.Context) ([]client.Badge, error)
	CommunityStats(ctx context.Context) (*client.CommunityStats, error)
}

// Session is the subset of *session.Store the screens call.
type Session interface {
	Loading() bool
	IsAuthenticated() bool
	Identity() (client.Identity, bool)
	Login(ctx context.Context, email, password string) (*client.Identity, error)
	Register(ctx context.Context, name, email, password string) (*client.Identity, error)
	Logout(ctx context.Context) error
	UpdateIdentity(ctx context.Context, id client.Identity) error
	AwardPoints(ctx context.Context, n int) (int, error)
}

// Points awarded optimistically; the backend's own total is not re-read.
const (
	PointsPublish = 10
	PointsComment = 2
)

// FailureError carries the inline text a screen shows for a failed action.
// Retryable is set when repeating the action later could succeed.
type FailureError struct {
	Message   string
	Retryable bool
	Err       error
}

func (e *FailureError) Error() string { return e.Message }

func (e *FailureError) Unwrap() error { return e.Err }

// RetryHint is shown after a retryable failure.
const RetryHint = "Please try again in a moment."

func fail(err error, fallback string) error {
	return &FailureError{Message: client.MessageOf(err, fallback), Retryable: retryable(err), Err: err}
}

// retryable reports whether err is a network failure, timeout, rate limit
// or server error.
func retryable(err error) bool {
	apiErr, ok := client.AsAPIError(err)
	return ok && apiErr.Category() == client.Recoverable
}

// uniqueTrimmed trims each value, drops blanks and keeps the first
// occurrence of duplicates.
func uniqueTrimmed(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func userID(s Session) string {
	if id, ok := s.Identity(); ok {
		return id.ID
	}
	return ""
}

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 60))
}
