package screens

import (
	"context"
	"fmt"
	"io"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/theme"
)

// HomeFeatured is the number of recent blogs on the home page.
const HomeFeatured = 3

// Navbar renders the header line: the signed-in user or "Guest", and the
// theme indicator.
func Navbar(w io.Writer, s Session, mode theme.Mode) {
	who := "Guest"
	if s.Loading() {
		who = "Loading..."
	} else if id, ok := s.Identity(); ok {
		who = fmt.Sprintf("%s · %d pts", id.Name, id.Points)
	}
	icon := "☀"
	if mode == theme.Dark {
		icon = "☾"
	}
	fmt.Fprintf(w, "Inkwell  |  %s  |  %s %s\n", who, icon, mode)
}

// Home is the landing page.
type Home struct {
	API     Backend
	Session Session
}

// Recent returns the newest blogs for the landing page.
func (h *Home) Recent(ctx context.Context) ([]client.Blog, error) {
	resp, err := h.API.ListBlogs(ctx, client.ListBlogsParams{Page: 1, Limit: HomeFeatured})
	if err != nil {
		return nil, fail(err, "Failed to load blogs")
	}
	return resp.Blogs, nil
}

// RenderHome prints the landing page.
func RenderHome(w io.Writer, s Session, recent []client.Blog) {
	fmt.Fprintln(w, "Write, translate and listen to stories from around the world.")
	if !s.IsAuthenticated() {
		fmt.Fprintln(w, "Run `inkwell register` to start writing.")
	}
	fmt.Fprintln(w)
	if len(recent) == 0 {
		return
	}
	fmt.Fprintln(w, "Recent")
	rule(w)
	for _, b := range recent {
		RenderBlogCard(w, b)
	}
}
