package client

import (
	"github.com/khushisingh18/Ai-blog-website/client/internal/api"
	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RegisterRequest      = types.RegisterRequest
	LoginRequest         = types.LoginRequest
	UpdateProfileRequest = types.UpdateProfileRequest
	CreateBlogRequest    = types.CreateBlogRequest
	ListBlogsParams      = types.ListBlogsParams
	CommentRequest       = types.CommentRequest
	TranslateRequest     = types.TranslateRequest

	// Domain entities
	Identity       = types.Identity
	Author         = types.Author
	Badge          = types.Badge
	Blog           = types.Blog
	Comment        = types.Comment
	CommunityStats = types.CommunityStats
	ProfileStats   = types.ProfileStats

	// Responses
	AuthResponse       = types.AuthResponse
	ProfileResponse    = types.ProfileResponse
	ListBlogsResponse  = types.ListBlogsResponse
	BlogDetailResponse = types.BlogDetailResponse
	LikeResponse       = types.LikeResponse
	TranslateResponse  = types.TranslateResponse

	// Validation
	PasswordRules = types.PasswordRules
)

// CheckPassword evaluates the registration password rules.
func CheckPassword(pw string) PasswordRules { return types.CheckPassword(pw) }

// UploadField is the multipart field name the backend reads images from.
const UploadField = api.UploadField
