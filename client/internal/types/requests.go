package types

// ------------------------------
// Request Types
// ------------------------------

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds credentials for a login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest holds the editable profile fields.
type UpdateProfileRequest struct {
	Name              string   `json:"name"`
	Bio               string   `json:"bio"`
	Avatar            string   `json:"avatar"`
	PreferredLanguage string   `json:"preferredLanguage"`
	Interests         []string `json:"interests"`
}

// CreateBlogRequest holds parameters for a new blog.
type CreateBlogRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	CoverImage    string   `json:"coverImage"`
	Tags          []string `json:"tags"`
	SEOKeywords   []string `json:"seoKeywords"`
	IsAIGenerated bool     `json:"isAIGenerated"`
}

// ListBlogsParams selects a page of blogs. Zero values are omitted.
type ListBlogsParams struct {
	Page   int
	Limit  int
	Author string
}

// CommentRequest holds a new comment body.
type CommentRequest struct {
	Content string `json:"content"`
}

// TranslateRequest asks the backend to translate a blog.
type TranslateRequest struct {
	BlogID         string `json:"blogId"`
	TargetLanguage string `json:"targetLanguage"`
}
