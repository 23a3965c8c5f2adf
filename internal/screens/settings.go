package screens

import (
	"context"
	"strings"

	"github.com/khushisingh18/Ai-blog-website/client"
)

// ProfileForm holds the editable profile fields.
type ProfileForm struct {
	Name              string
	Bio               string
	Avatar            string
	PreferredLanguage string
	Interests         []string
}

// Settings edits the current user's profile.
type Settings struct {
	API     Backend
	Session Session
}

// Load fills the form from the backend profile.
func (s *Settings) Load(ctx context.Context) (*ProfileForm, error) {
	if !s.Session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	resp, err := s.API.GetProfile(ctx)
	if err != nil {
		return nil, &FailureError{Message: "Failed to load profile", Err: err}
	}
	u := resp.User
	lang := u.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	return &ProfileForm{
		Name:              u.Name,
		Bio:               u.Bio,
		Avatar:            u.Avatar,
		PreferredLanguage: lang,
		Interests:         append([]string(nil), u.Interests...),
	}, nil
}

// Save sends f and replaces the session identity with the backend's result.
func (s *Settings) Save(ctx context.Context, f ProfileForm) (*client.Identity, error) {
	if !s.Session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	updated, err := s.API.UpdateProfile(ctx, client.UpdateProfileRequest{
		Name:              strings.TrimSpace(f.Name),
		Bio:               f.Bio,
		Avatar:            strings.TrimSpace(f.Avatar),
		PreferredLanguage: f.PreferredLanguage,
		Interests:         uniqueTrimmed(f.Interests),
	})
	if err != nil {
		return nil, fail(err, "Failed to update profile")
	}
	if err := s.Session.UpdateIdentity(ctx, *updated); err != nil {
		return nil, err
	}
	return updated, nil
}
