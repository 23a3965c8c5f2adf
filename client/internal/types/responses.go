package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is returned by register and login: the bearer token plus the
// full identity snapshot at the same level.
type AuthResponse struct {
	Token string `json:"token"`
	Identity
}

// ProfileResponse wraps GET /auth/profile and GET /auth/user/:id.
type ProfileResponse struct {
	User  Identity     `json:"user"`
	Stats ProfileStats `json:"stats"`
}

// ListBlogsResponse mirrors the paginated blog list.
type ListBlogsResponse struct {
	Blogs       []Blog `json:"blogs"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	Total       int    `json:"total"`
}

// BlogDetailResponse wraps GET /blog/:id.
type BlogDetailResponse struct {
	Blog     Blog      `json:"blog"`
	Comments []Comment `json:"comments"`
}

// LikeResponse is the authoritative like state after a toggle.
type LikeResponse struct {
	IsLiked bool `json:"isLiked"`
	Likes   int  `json:"likes"`
}

// TranslateResponse carries the translated title and content.
type TranslateResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LeaderboardResponse wraps GET /community/leaderboard.
type LeaderboardResponse struct {
	Leaderboard []Identity `json:"leaderboard"`
}

// BadgesResponse wraps GET /community/badges.
type BadgesResponse struct {
	Badges []Badge `json:"badges"`
}

// StatsResponse wraps GET /community/stats.
type StatsResponse struct {
	Stats CommunityStats `json:"stats"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	URL string `json:"url"`
}
