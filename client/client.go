package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/khushisingh18/Ai-blog-website/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the blogging backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	metrics *metrics
}

// TokenSource supplies the bearer token for each outgoing request. An empty
// token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// ErrEmptyBaseURL is returned by New when no backend URL is configured.
var ErrEmptyBaseURL = errors.New("baseURL cannot be empty")

// New constructs a Client for baseURL, e.g. "http://localhost:5000/api".
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	// No client timeout unless WithHTTPTimeout asks for one; callers bound
	// requests through their context.
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// BaseURL returns the normalised backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransport installs, outermost first: bearer auth, request id, metrics.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.metrics != nil {
		base = &metricsTransport{base: base, m: c.metrics}
	}
	base = &requestIDTransport{base: base}
	c.http.Transport = &bearerTransport{base: base, tokens: c.tokens}
}

// bearerTransport adds the Authorization header when a token is available.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.base.RoundTrip(req)
	}
	tok := t.tokens.Token()
	if tok == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

type requestIDTransport struct{ base http.RoundTripper }

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set(RequestIDHeader, uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return api.Register(ctx, c.http, c.baseURL, req)
}

// Login exchanges credentials for a bearer token and identity.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// GetProfile returns the authenticated user's profile and stats.
func (c *Client) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	return api.GetProfile(ctx, c.http, c.baseURL)
}

// UpdateProfile saves the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Identity, error) {
	return api.UpdateProfile(ctx, c.http, c.baseURL, req)
}

// GetUser returns another user's public profile.
func (c *Client) GetUser(ctx context.Context, userID string) (*ProfileResponse, error) {
	return api.GetUser(ctx, c.http, c.baseURL, userID)
}

// --------------------------------------------------------------------
// Blog operations - delegated to internal/api
// --------------------------------------------------------------------

// ListBlogs returns one page of blogs.
func (c *Client) ListBlogs(ctx context.Context, p ListBlogsParams) (*ListBlogsResponse, error) {
	return api.ListBlogs(ctx, c.http, c.baseURL, p)
}

// PersonalizedFeed returns blogs matching the caller's interests.
func (c *Client) PersonalizedFeed(ctx context.Context) (*ListBlogsResponse, error) {
	return api.PersonalizedFeed(ctx, c.http, c.baseURL)
}

// GetBlog returns a blog and its comments.
func (c *Client) GetBlog(ctx context.Context, blogID string) (*BlogDetailResponse, error) {
	return api.GetBlog(ctx, c.http, c.baseURL, blogID)
}

// CreateBlog publishes a blog.
func (c *Client) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	return api.CreateBlog(ctx, c.http, c.baseURL, req)
}

// DeleteBlog removes one of the caller's blogs.
func (c *Client) DeleteBlog(ctx context.Context, blogID string) error {
	return api.DeleteBlog(ctx, c.http, c.baseURL, blogID)
}

// ToggleLike flips the caller's like on a blog.
func (c *Client) ToggleLike(ctx context.Context, blogID string) (*LikeResponse, error) {
	return api.ToggleLike(ctx, c.http, c.baseURL, blogID)
}

// AddComment posts a comment on a blog.
func (c *Client) AddComment(ctx context.Context, blogID, content string) (*Comment, error) {
	return api.AddComment(ctx, c.http, c.baseURL, blogID, CommentRequest{Content: content})
}

// --------------------------------------------------------------------
// AI, community and upload operations
// --------------------------------------------------------------------

// Translate asks the backend to translate a blog.
func (c *Client) Translate(ctx context.Context, blogID, targetLanguage string) (*TranslateResponse, error) {
	return api.Translate(ctx, c.http, c.baseURL, TranslateRequest{BlogID: blogID, TargetLanguage: targetLanguage})
}

// Leaderboard returns the top users by points.
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]Identity, error) {
	return api.Leaderboard(ctx, c.http, c.baseURL, limit)
}

// Badges returns the badge catalogue.
func (c *Client) Badges(ctx context.Context) ([]Badge, error) {
	return api.Badges(ctx, c.http, c.baseURL)
}

// CommunityStats returns platform-wide counters.
func (c *Client) CommunityStats(ctx context.Context) (*CommunityStats, error) {
	return api.CommunityStats(ctx, c.http, c.baseURL)
}

// UploadImage uploads one image and returns its hosted URL.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	return api.UploadImage(ctx, c.http, c.baseURL, filename, contentType, content)
}
