package screens

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushisingh18/Ai-blog-website/internal/generator"
	"github.com/khushisingh18/Ai-blog-website/internal/localstate"
	"github.com/khushisingh18/Ai-blog-website/internal/session"
	"github.com/khushisingh18/Ai-blog-website/internal/theme"
)

func TestNavbar(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	var buf bytes.Buffer
	Navbar(&buf, h.session, theme.Light)
	assert.Contains(t, buf.String(), "Guest")
	assert.Contains(t, buf.String(), "light")

	h.login(t)
	buf.Reset()
	Navbar(&buf, h.session, theme.Dark)
	assert.Contains(t, buf.String(), "Ann · 5 pts")
	assert.Contains(t, buf.String(), "dark")
}

func TestNavbar_WhileSessionLoads(t *testing.T) {
	t.Parallel()
	kv, err := localstate.OpenStore(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	sess := session.New(kv, nil)

	var buf bytes.Buffer
	Navbar(&buf, sess, theme.Light)
	assert.Contains(t, buf.String(), "Loading...")

	require.NoError(t, sess.Initialize(context.Background()))
	buf.Reset()
	Navbar(&buf, sess, theme.Light)
	assert.Contains(t, buf.String(), "Guest")
}

func TestHome_Recent(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	home := &Home{API: h.api, Session: h.session}

	blogs, err := home.Recent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "limit=3&page=1", h.backend.lastListQuery)

	var buf bytes.Buffer
	RenderHome(&buf, h.session, blogs)
	assert.Contains(t, buf.String(), "inkwell register")
	assert.Contains(t, buf.String(), "Go Concurrency")
}

type fakeGenerator struct {
	prompt string
	text   string
	err    error
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestArticleGenerator(t *testing.T) {
	t.Parallel()
	g := &fakeGenerator{text: "A **bold** start"}
	a := &ArticleGenerator{Engine: g}

	out, err := a.Generate(context.Background(), " Tides ")
	require.NoError(t, err)
	assert.Equal(t, "A bold start", out)
	assert.Contains(t, g.prompt, "Tides")

	_, err = a.Generate(context.Background(), "  ")
	var ve *generator.ValidationError
	require.ErrorAs(t, err, &ve)

	g.err = &generator.EngineError{Provider: "fake", StatusCode: 429, Message: "quota"}
	_, err = a.Generate(context.Background(), "Tides")
	assert.Contains(t, failureMessage(t, err), "rate limit")

	g.err = errors.New("dial tcp: refused")
	_, err = a.Generate(context.Background(), "Tides")
	var fe *FailureError
	assert.False(t, errors.As(err, &fe))
}
