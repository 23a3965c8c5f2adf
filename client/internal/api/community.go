package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// Leaderboard returns the top users by points.
func Leaderboard(ctx context.Context, httpClient HTTPClient, baseURL string, limit int) ([]types.Identity, error) {
	u := fmt.Sprintf("%s/community/leaderboard", baseURL)
	if limit > 0 {
		u = fmt.Sprintf("%s?limit=%d", u, limit)
	}
	var out types.LeaderboardResponse
	if err := send(ctx, httpClient, call{op: "leaderboard", method: http.MethodGet, url: u, out: &out}); err != nil {
		return nil, err
	}
	return out.Leaderboard, nil
}

// Badges returns the badge catalogue.
func Badges(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Badge, error) {
	var out types.BadgesResponse
	err := send(ctx, httpClient, call{
		op:     "badges",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/community/badges", baseURL),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return out.Badges, nil
}

// CommunityStats returns platform-wide counters.
func CommunityStats(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.CommunityStats, error) {
	var out types.StatsResponse
	err := send(ctx, httpClient, call{
		op:     "community stats",
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/community/stats", baseURL),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out.Stats, nil
}
