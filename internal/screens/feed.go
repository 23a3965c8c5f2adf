package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// FeedPageSize is the number of blogs per page of the full feed.
const FeedPageSize = 10

// FeedMode selects the feed source.
type FeedMode string

const (
	FeedAll          FeedMode = "all"
	FeedPersonalized FeedMode = "personalized"
)

// FeedPage is one loaded page of the feed.
type FeedPage struct {
	Mode       FeedMode
	Blogs      []client.Blog
	Page       int
	TotalPages int
}

// Feed lists blogs.
type Feed struct {
	API     Backend
	Session Session
}

// Load fetches page (1-based, clamped to >= 1) of the feed. The personalized
// feed is unpaged and needs a logged-in user.
func (f *Feed) Load(ctx context.Context, mode FeedMode, page int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if mode == FeedPersonalized {
		if !f.Session.IsAuthenticated() {
			return nil, ErrLoginRequired
		}
		resp, err := f.API.PersonalizedFeed(ctx)
		if err != nil {
			return nil, fail(err, "Failed to load feed")
		}
		return &FeedPage{Mode: FeedPersonalized, Blogs: resp.Blogs, Page: 1, TotalPages: 1}, nil
	}

	resp, err := f.API.ListBlogs(ctx, client.ListBlogsParams{Page: page, Limit: FeedPageSize})
	if err != nil {
		return nil, fail(err, "Failed to load feed")
	}
	total := resp.TotalPages
	if total < 1 {
		total = 1
	}
	return &FeedPage{Mode: FeedAll, Blogs: resp.Blogs, Page: page, TotalPages: total}, nil
}

// Search keeps blogs whose title or any tag contains term, ignoring case.
// An empty term keeps everything.
func Search(blogs []client.Blog, term string) []client.Blog {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return blogs
	}
	var out []client.Blog
	for _, b := range blogs {
		if strings.Contains(strings.ToLower(b.Title), term) {
			out = append(out, b)
			continue
		}
		for _, tag := range b.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// RenderFeed prints a feed page.
func RenderFeed(w io.Writer, p *FeedPage, blogs []client.Blog) {
	if p.Mode == FeedPersonalized {
		fmt.Fprintln(w, "Your Personalized Feed")
	} else {
		fmt.Fprintln(w, "Explore Blogs")
	}
	rule(w)
	if len(blogs) == 0 {
		fmt.Fprintln(w, "No blogs found")
		return
	}
	for _, b := range blogs {
		RenderBlogCard(w, b)
	}
	if p.Mode == FeedAll && p.TotalPages > 1 {
		fmt.Fprintf(w, "Page %d of %d\n", p.Page, p.TotalPages)
	}
}

// RenderBlogCard prints a one-blog summary.
func RenderBlogCard(w io.Writer, b client.Blog) {
	fmt.Fprintf(w, "%s  [%s]\n", b.Title, b.ID)
	author := b.Author.Name
	if author == "" {
		author = b.Author.ID
	}
	fmt.Fprintf(w, "  by %s · %d min read · %d views · %d likes · %d comments\n",
		author, b.ReadTime, b.Views, len(b.Likes), b.CommentsCount)
	if len(b.Tags) > 0 {
		fmt.Fprintf(w, "  #%s\n", strings.Join(b.Tags, " #"))
	}
}
