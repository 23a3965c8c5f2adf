package cli

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushisingh18/Ai-blog-website/internal/screens"
)

type stubBackend struct {
	token   string
	created map[string]any
	likes   int
}

func (s *stubBackend) router(t *testing.T) http.Handler {
	t.Helper()
	r := mux.NewRouter()
	write := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	user := map[string]any{"_id": "u1", "name": "Ann", "email": "ann@example.com", "points": 7, "level": 1}
	blog := map[string]any{"_id": "b1", "title": "Hello Gophers", "content": "**Go** is fun", "tags": []string{"go"}, "author": map[string]any{"_id": "u1", "name": "Ann"}, "likes": []string{}}

	r.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "Secret#123" {
			write(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
			return
		}
		body := map[string]any{"token": s.token}
		for k, v := range user {
			body[k] = v
		}
		write(w, http.StatusOK, body)
	}).Methods(http.MethodPost)
	r.HandleFunc("/blog", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"blogs": []any{blog}, "totalPages": 1, "currentPage": 1, "total": 1})
	}).Methods(http.MethodGet)
	r.HandleFunc("/blog", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			write(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized"})
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&s.created)
		write(w, http.StatusCreated, map[string]any{"_id": "b9", "title": s.created["title"], "content": s.created["content"], "author": "u1"})
	}).Methods(http.MethodPost)
	r.HandleFunc("/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"blog": blog, "comments": []any{}})
	}).Methods(http.MethodGet)
	r.HandleFunc("/blog/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		s.likes++
		write(w, http.StatusOK, map[string]any{"isLiked": true, "likes": s.likes})
	}).Methods(http.MethodPost)
	return r
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

type cliEnv struct {
	url     string
	dataDir string
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := e.runWithStderr(t, args...)
	return out, err
}

func (e cliEnv) runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &strings.Builder{}, &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--api-url", e.url, "--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func newCLIEnv(t *testing.T) (cliEnv, *stubBackend) {
	t.Helper()
	sb := &stubBackend{token: signedToken(t, time.Now().Add(24*time.Hour))}
	srv := httptest.NewServer(sb.router(t))
	t.Cleanup(srv.Close)
	return cliEnv{url: srv.URL, dataDir: t.TempDir()}, sb
}

func TestCLI_LoginSessionSurvivesAcrossCommands(t *testing.T) {
	env, sb := newCLIEnv(t)

	out, err := env.run(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Guest\n", out)

	_, err = env.run(t, "login", "--email", "ann@example.com", "--password", "nope")
	var fe *screens.FailureError
	require.True(t, errors.As(err, &fe), "login unexpected: err=%v", err)
	assert.Equal(t, "Invalid email or password", fe.Message)

	out, err = env.run(t, "login", "--email", "ann@example.com", "--password", "Secret#123")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ann!")
	assert.Contains(t, out, "Ann · 7 pts", "navbar redrawn after login")

	out, err = env.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ann <ann@example.com>")
	assert.Contains(t, out, "7 points")
	assert.Contains(t, out, "token expires:")

	out, err = env.run(t, "create", "--title", "New", "--content", "Body", "--tag", "go", "--tag", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "b9")
	assert.Equal(t, []any{"go"}, sb.created["tags"])
	assert.Equal(t, false, sb.created["isAIGenerated"])

	out, err = env.run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "17 points")

	out, err = env.run(t, "blog", "like", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, `Liked "Hello Gophers" (1 likes)`)

	out, err = env.run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	_, err = env.run(t, "create", "--title", "x", "--content", "y")
	assert.ErrorIs(t, err, screens.ErrLoginRequired)
}

func TestCLI_FeedAndBlog(t *testing.T) {
	env, _ := newCLIEnv(t)

	out, err := env.run(t, "feed", "--search", "GOPHER")
	require.NoError(t, err)
	assert.Contains(t, out, "Explore Blogs")
	assert.Contains(t, out, "Hello Gophers  [b1]")

	out, err = env.run(t, "feed", "--search", "rust")
	require.NoError(t, err)
	assert.Contains(t, out, "No blogs found")

	out, err = env.run(t, "blog", "show", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, "Go is fun")

	_, err = env.run(t, "feed", "--personalized")
	assert.ErrorIs(t, err, screens.ErrLoginRequired)
}

func TestCLI_HomeAndTheme(t *testing.T) {
	env, _ := newCLIEnv(t)

	out, err := env.run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Guest")
	assert.Contains(t, out, "Hello Gophers")

	out, err = env.run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "Theme: light\n", out)

	out, err = env.run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "Theme: dark\n", out)

	out, err = env.run(t, "home")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
}

func TestCLI_GenerateWithoutKeyShowsHint(t *testing.T) {
	t.Setenv("INKWELL_AI_PROVIDER", "gemini")
	t.Setenv("INKWELL_GEMINI_API_KEY", "")
	env, _ := newCLIEnv(t)

	_, err := env.run(t, "generate", "tides")
	var fe *screens.FailureError
	require.True(t, errors.As(err, &fe), "generate unexpected: err=%v", err)
	assert.Contains(t, fe.Message, "API key")
}

func TestCLI_MetricsDump(t *testing.T) {
	env, _ := newCLIEnv(t)

	_, stderr, err := env.runWithStderr(t, "--metrics", "feed")
	require.NoError(t, err)
	assert.Contains(t, stderr, `inkwell_client_requests_total{code="200",op="list blogs"} 1`)
	assert.Contains(t, stderr, "inkwell_client_request_duration_seconds")

	_, stderr, err = env.runWithStderr(t, "feed")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "inkwell_client_requests_total")
}

func TestCLI_StateListAndReset(t *testing.T) {
	env, sb := newCLIEnv(t)

	out, err := env.run(t, "state")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing stored.")

	_, err = env.run(t, "login", "--email", "ann@example.com", "--password", "Secret#123")
	require.NoError(t, err)
	_, err = env.run(t, "theme", "toggle")
	require.NoError(t, err)

	out, err = env.run(t, "state")
	require.NoError(t, err)
	assert.Contains(t, out, "state.db")
	for _, key := range []string{"theme", "token", "user"} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, sb.token, "values are never printed")

	out, err = env.run(t, "state", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Local state cleared")

	out, err = env.run(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Guest\n", out)
	out, err = env.run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "Theme: light\n", out)
}
