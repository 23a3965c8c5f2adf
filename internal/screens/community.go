package screens

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// LeaderboardSize is the number of users on the community leaderboard.
const LeaderboardSize = 10

// CommunityView is the community page. A section whose load failed is
// empty and its error is kept in Errs.
type CommunityView struct {
	Leaderboard []client.Identity
	Badges      []client.Badge
	Stats       client.CommunityStats
	Errs        []error
}

// Community loads the leaderboard, badge catalogue and platform stats.
type Community struct {
	API Backend
}

// Load fetches the three sections concurrently.
func (c *Community) Load(ctx context.Context) *CommunityView {
	var (
		v  CommunityView
		mu sync.Mutex
		wg sync.WaitGroup
	)
	record := func(section string, err error) {
		log.Error().Err(err).Str("section", section).Msg("fetch community data")
		mu.Lock()
		v.Errs = append(v.Errs, err)
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		users, err := c.API.Leaderboard(ctx, LeaderboardSize)
		if err != nil {
			record("leaderboard", err)
			return
		}
		mu.Lock()
		v.Leaderboard = users
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		badges, err := c.API.Badges(ctx)
		if err != nil {
			record("badges", err)
			return
		}
		mu.Lock()
		v.Badges = badges
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		stats, err := c.API.CommunityStats(ctx)
		if err != nil {
			record("stats", err)
			return
		}
		mu.Lock()
		v.Stats = *stats
		mu.Unlock()
	}()
	wg.Wait()
	return &v
}

// RenderCommunity prints the community page.
func RenderCommunity(w io.Writer, v *CommunityView) {
	fmt.Fprintln(w, "Community")
	rule(w)
	s := v.Stats
	fmt.Fprintf(w, "%d writers · %d blogs · %d languages · %d views\n\n",
		s.TotalUsers, s.TotalBlogs, s.TotalLanguages, s.TotalViews)

	fmt.Fprintln(w, "Leaderboard")
	for i, u := range v.Leaderboard {
		fmt.Fprintf(w, "%2d. %-24s level %-3d %d points\n", i+1, u.Name, u.Level, u.Points)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Badges")
	for _, b := range v.Badges {
		fmt.Fprintf(w, "%s %s: %s\n", b.Icon, b.Name, b.Description)
	}
}
