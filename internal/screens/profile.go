package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// ProfileBlogsLimit caps the author's blog list on a profile.
const ProfileBlogsLimit = 20

// ProfileView is a loaded profile page.
type ProfileView struct {
	User  client.Identity
	Stats client.ProfileStats
	Blogs []client.Blog
	Own   bool
}

// Profile shows a user and their blogs.
type Profile struct {
	API     Backend
	Session Session
}

// Open loads the profile of id. An empty id means the current user.
// A failed blog list leaves Blogs empty.
func (p *Profile) Open(ctx context.Context, id string) (*ProfileView, error) {
	self := userID(p.Session)
	if id == "" {
		if self == "" {
			return nil, ErrLoginRequired
		}
		id = self
	}
	own := id == self

	var (
		resp *client.ProfileResponse
		err  error
	)
	if own {
		resp, err = p.API.GetProfile(ctx)
	} else {
		resp, err = p.API.GetUser(ctx, id)
	}
	if err != nil {
		if client.IsStatus(err, 404) {
			return nil, &FailureError{Message: "User not found", Err: err}
		}
		return nil, fail(err, "Failed to load profile")
	}

	v := &ProfileView{User: resp.User, Stats: resp.Stats, Own: own}
	blogs, err := p.API.ListBlogs(ctx, client.ListBlogsParams{Author: id, Limit: ProfileBlogsLimit})
	if err != nil {
		log.Error().Err(err).Str("user", id).Msg("fetch user blogs")
	} else {
		v.Blogs = blogs.Blogs
	}
	return v, nil
}

// Delete removes one of the viewer's own blogs and drops it from v.
func (p *Profile) Delete(ctx context.Context, v *ProfileView, blogID string) error {
	if !v.Own {
		return &FailureError{Message: "You can only delete your own blogs"}
	}
	if err := p.API.DeleteBlog(ctx, blogID); err != nil {
		return fail(err, "Failed to delete blog. Please try again.")
	}
	kept := v.Blogs[:0]
	for _, b := range v.Blogs {
		if b.ID != blogID {
			kept = append(kept, b)
		}
	}
	v.Blogs = kept
	return nil
}

// RenderProfile prints a profile page.
func RenderProfile(w io.Writer, v *ProfileView) {
	u := v.User
	fmt.Fprintf(w, "%s  (level %d · %d points)\n", u.Name, u.Level, u.Points)
	rule(w)
	if u.Bio != "" {
		fmt.Fprintln(w, u.Bio)
	}
	if len(u.Interests) > 0 {
		fmt.Fprintf(w, "Interests: %s\n", strings.Join(u.Interests, ", "))
	}
	fmt.Fprintf(w, "Blogs published: %d · Comments posted: %d\n", v.Stats.BlogsPublished, v.Stats.CommentsPosted)
	if len(u.Badges) > 0 {
		names := make([]string, 0, len(u.Badges))
		for _, b := range u.Badges {
			names = append(names, strings.TrimSpace(b.Icon+" "+b.Name))
		}
		fmt.Fprintf(w, "Badges: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintln(w)
	if len(v.Blogs) == 0 {
		fmt.Fprintln(w, "No blogs yet")
		return
	}
	for _, b := range v.Blogs {
		RenderBlogCard(w, b)
	}
}
