package screens

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// Draft is the content of the create form.
type Draft struct {
	Title      string
	Content    string
	CoverImage string
	Tags       []string
}

// Create publishes blogs.
type Create struct {
	API     Backend
	Session Session
}

// Publish validates and posts d, then awards publish points.
func (c *Create) Publish(ctx context.Context, d Draft) (*client.Blog, error) {
	if !c.Session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	title, content := strings.TrimSpace(d.Title), strings.TrimSpace(d.Content)
	if title == "" || content == "" {
		return nil, &FailureError{Message: "Title and content are required"}
	}
	tags := uniqueTrimmed(d.Tags)
	blog, err := c.API.CreateBlog(ctx, client.CreateBlogRequest{
		Title:         title,
		Content:       content,
		CoverImage:    strings.TrimSpace(d.CoverImage),
		Tags:          tags,
		SEOKeywords:   tags,
		IsAIGenerated: false,
	})
	if err != nil {
		return nil, fail(err, "Failed to publish blog. Please try again.")
	}
	if _, err := c.Session.AwardPoints(ctx, PointsPublish); err != nil {
		log.Warn().Err(err).Msg("award publish points")
	}
	return blog, nil
}
