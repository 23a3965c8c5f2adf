package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// ListBlogs returns a page of blogs, optionally filtered by author.
func ListBlogs(ctx context.Context, httpClient HTTPClient, baseURL string, p types.ListBlogsParams) (*types.ListBlogsResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Author != "" {
		q.Set("author", p.Author)
	}
	u := fmt.Sprintf("%s/blog", baseURL)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var out types.ListBlogsResponse
	if err := send(ctx, httpClient, call{op: "list blogs", method: http.MethodGet, url: u, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// PersonalizedFeed returns blogs matching the authenticated user's interests.
func PersonalizedFeed(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.ListBlogsResponse, error) {
	var out types.ListBlogsResponse
	err := send(ctx, httpClient, call{
		op:     "personalized feed",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/blog/feed/personalized", baseURL),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBlog returns a blog with its comments.
func GetBlog(ctx context.Context, httpClient HTTPClient, baseURL, blogID string) (*types.BlogDetailResponse, error) {
	if err := types.ValidateIDPresent(blogID, "blogId"); err != nil {
		return nil, err
	}
	var out types.BlogDetailResponse
	err := send(ctx, httpClient, call{
		op:     "get blog",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/blog/%s", baseURL, blogID),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog publishes a blog.
func CreateBlog(ctx context.Context, httpClient HTTPClient, baseURL string, req types.CreateBlogRequest) (*types.Blog, error) {
	var out types.Blog
	err := send(ctx, httpClient, call{
		op:     "create blog",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/blog", baseURL),
		in:     req,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlog removes a blog owned by the authenticated user.
func DeleteBlog(ctx context.Context, httpClient HTTPClient, baseURL, blogID string) error {
	if err := types.ValidateIDPresent(blogID, "blogId"); err != nil {
		return err
	}
	return send(ctx, httpClient, call{
		op:     "delete blog",
		method: http.MethodDelete,
		url:    fmt.Sprintf("%s/blog/%s", baseURL, blogID),
	})
}

// ToggleLike flips the authenticated user's like and returns the server state.
func ToggleLike(ctx context.Context, httpClient HTTPClient, baseURL, blogID string) (*types.LikeResponse, error) {
	if err := types.ValidateIDPresent(blogID, "blogId"); err != nil {
		return nil, err
	}
	var out types.LikeResponse
	err := send(ctx, httpClient, call{
		op:     "like blog",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/blog/%s/like", baseURL, blogID),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment posts a comment and returns it as stored.
func AddComment(ctx context.Context, httpClient HTTPClient, baseURL, blogID string, req types.CommentRequest) (*types.Comment, error) {
	if err := types.ValidateIDPresent(blogID, "blogId"); err != nil {
		return nil, err
	}
	var out types.Comment
	err := send(ctx, httpClient, call{
		op:     "comment blog",
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/blog/%s/comment", baseURL, blogID),
		in:     req,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
