// Package session holds who is logged in. The bearer token and the identity
// snapshot are persisted together in the local store and cleared together on
// logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/localstate"
)

// Authenticator is the part of the API client the store calls.
type Authenticator interface {
	Login(ctx context.Context, req client.LoginRequest) (*client.AuthResponse, error)
	Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error)
}

// Store is the single source of truth for the current identity. Callers are
// expected to serialise mutating operations; the mutex only guards reads made
// from HTTP transport goroutines.
type Store struct {
	kv   *localstate.Store
	auth Authenticator

	mu        sync.RWMutex
	loading   bool
	token     string
	identity  *client.Identity
	listeners map[int]func()
	nextID    int
}

// New returns a store in the loading state. Call Initialize before use.
// auth may be nil until SetAuthenticator is called; the CLI needs the store
// as the client's token source before the client exists.
func New(kv *localstate.Store, auth Authenticator) *Store {
	return &Store{kv: kv, auth: auth, loading: true, listeners: map[int]func(){}}
}

// SetAuthenticator binds the API client used by Login and Register.
func (s *Store) SetAuthenticator(auth Authenticator) { s.auth = auth }

// Initialize reads the persisted token and identity. Both present means
// logged in; no backend call is made. A lone token or a lone identity is an
// orphan from an interrupted write and is deleted.
func (s *Store) Initialize(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	tok, err := s.kv.Get(ctx, localstate.KeyToken)
	if err != nil {
		return err
	}
	raw, err := s.kv.Get(ctx, localstate.KeyUser)
	if err != nil {
		return err
	}

	var id *client.Identity
	if len(raw) > 0 {
		var v client.Identity
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Warn().Err(err).Msg("discarding unreadable stored identity")
		} else if v.ID != "" {
			id = &v
		}
	}

	if len(tok) == 0 || id == nil {
		if len(tok) > 0 || len(raw) > 0 {
			log.Warn().Bool("token", len(tok) > 0).Bool("user", len(raw) > 0).Msg("clearing incomplete stored session")
			if err := s.clearPersisted(ctx); err != nil {
				return err
			}
		}
		s.set("", nil)
		return nil
	}

	s.set(string(tok), id)
	log.Debug().Str("user_id", id.ID).Msg("session restored")
	return nil
}

// Loading reports whether Initialize has not yet completed.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Register creates an account and logs in as it.
func (s *Store) Register(ctx context.Context, name, email, password string) (*client.Identity, error) {
	if s.auth == nil {
		return nil, fmt.Errorf("register: no authenticator configured")
	}
	resp, err := s.auth.Register(ctx, client.RegisterRequest{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return nil, newAuthError("register", "Failed to register", err)
	}
	return s.adopt(ctx, resp)
}

// Login exchanges credentials for a session.
func (s *Store) Login(ctx context.Context, email, password string) (*client.Identity, error) {
	if s.auth == nil {
		return nil, fmt.Errorf("login: no authenticator configured")
	}
	resp, err := s.auth.Login(ctx, client.LoginRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return nil, newAuthError("login", "Failed to login", err)
	}
	return s.adopt(ctx, resp)
}

// adopt persists token and identity in one transaction, then publishes them.
func (s *Store) adopt(ctx context.Context, resp *client.AuthResponse) (*client.Identity, error) {
	id := resp.Identity
	raw, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}
	err = s.kv.Update(ctx, func(ctx context.Context, r *localstate.Repository) error {
		if err := r.Set(ctx, localstate.KeyToken, []byte(resp.Token)); err != nil {
			return err
		}
		return r.Set(ctx, localstate.KeyUser, raw)
	})
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.set(resp.Token, &id)
	s.notify()
	log.Info().Str("user_id", id.ID).Msg("logged in")
	out := id
	return &out, nil
}

// Logout forgets the session locally. The backend is not contacted.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.clearPersisted(ctx); err != nil {
		return err
	}
	s.set("", nil)
	s.notify()
	return nil
}

func (s *Store) clearPersisted(ctx context.Context) error {
	err := s.kv.Update(ctx, func(ctx context.Context, r *localstate.Repository) error {
		if err := r.Delete(ctx, localstate.KeyToken); err != nil {
			return err
		}
		return r.Delete(ctx, localstate.KeyUser)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// UpdateIdentity replaces the identity snapshot wholesale. The token is left
// untouched. It fails with ErrNotAuthenticated when logged out.
func (s *Store) UpdateIdentity(ctx context.Context, id client.Identity) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	if err := s.kv.Set(ctx, localstate.KeyUser, raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.identity = &id
	s.mu.Unlock()
	s.notify()
	return nil
}

// AwardPoints adds n to the local point score without asking the backend.
func (s *Store) AwardPoints(ctx context.Context, n int) (int, error) {
	id, ok := s.Identity()
	if !ok {
		return 0, ErrNotAuthenticated
	}
	id.Points += n
	if err := s.UpdateIdentity(ctx, id); err != nil {
		return 0, err
	}
	return id.Points, nil
}

// IsAuthenticated reports whether an identity snapshot is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Identity returns a copy of the current snapshot.
func (s *Store) Identity() (client.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return client.Identity{}, false
	}
	out := *s.identity
	out.Badges = append([]client.Badge(nil), s.identity.Badges...)
	out.Interests = append([]string(nil), s.identity.Interests...)
	return out, true
}

// Token returns the bearer token, or "" when logged out. It makes Store a
// client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry reads the exp claim of the token without verifying it. It is
// for display only.
func (s *Store) TokenExpiry() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Subscribe registers fn to run after every login, logout or identity
// change. The returned func removes it.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) set(token string, id *client.Identity) {
	s.mu.Lock()
	s.token = token
	s.identity = id
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
