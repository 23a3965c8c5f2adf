package types

import (
	"encoding/json"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Badge is an achievement, either earned by a user or listed in the catalogue.
type Badge struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

// Identity is the snapshot of a user as last known to the client.
type Identity struct {
	ID                string   `json:"_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email,omitempty"`
	Avatar            string   `json:"avatar,omitempty"`
	Points            int      `json:"points"`
	Level             int      `json:"level"`
	Badges            []Badge  `json:"badges,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	PreferredLanguage string   `json:"preferredLanguage,omitempty"`
}

// Author is the user embedded in blogs and comments. The backend sends
// either a populated object or a bare id string.
type Author struct {
	ID     string `json:"_id"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Level  int    `json:"level,omitempty"`
	Points int    `json:"points,omitempty"`
}

// UnmarshalJSON accepts both `"id"` and `{...}` forms.
func (a *Author) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*a = Author{ID: id}
		return nil
	}
	type plain Author
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Author(p)
	return nil
}

// Blog is a published article.
type Blog struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CoverImage    string    `json:"coverImage,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	SEOKeywords   []string  `json:"seoKeywords,omitempty"`
	IsAIGenerated bool      `json:"isAIGenerated"`
	Author        Author    `json:"author"`
	Likes         []string  `json:"likes,omitempty"`
	Views         int       `json:"views"`
	ReadTime      int       `json:"readTime"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// LikedBy reports whether userID appears in the blog's like list.
func (b Blog) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is a reader comment on a blog.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommunityStats are platform-wide counters.
type CommunityStats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalBlogs     int `json:"totalBlogs"`
	TotalLanguages int `json:"totalLanguages"`
	TotalViews     int `json:"totalViews"`
}

// ProfileStats are per-user counters shown on a profile.
type ProfileStats struct {
	BlogsPublished int `json:"blogsPublished"`
	CommentsPosted int `json:"commentsPosted"`
}
