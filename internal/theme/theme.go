// Package theme keeps the persisted light/dark preference.
package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/khushisingh18/Ai-blog-website/internal/localstate"
)

// Mode is the display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Default is used when nothing valid is persisted.
const Default = Light

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "light" or "dark".
func Parse(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Store holds the current mode and persists every change.
type Store struct {
	kv localstate.KV

	mu   sync.RWMutex
	mode Mode
}

// New returns a store set to Default. Call Initialize to load the persisted value.
func New(kv localstate.KV) *Store {
	return &Store{kv: kv, mode: Default}
}

// Initialize loads the persisted mode. Unknown values fall back to Default.
func (s *Store) Initialize(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, localstate.KeyTheme)
	if err != nil {
		return err
	}
	m, err := Parse(string(raw))
	if err != nil {
		m = Default
	}
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	return nil
}

// Current returns the active mode.
func (s *Store) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips the mode, persists it and returns the new value. The
// in-memory value only changes once the write succeeds.
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.mode.Other()
	if err := s.kv.Set(ctx, localstate.KeyTheme, []byte(next)); err != nil {
		return s.mode, err
	}
	s.mode = next
	return next, nil
}
