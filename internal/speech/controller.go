// Package speech reads text aloud through a local speech engine and exposes
// start, pause, resume and stop over it.
package speech

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Utterance is one read-aloud request.
type Utterance struct {
	Text  string
	Lang  string
	Rate  float64
	Pitch float64
}

// Events are the engine's asynchronous signals for one utterance.
type Events struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

// Engine is a one-shot speech synthesiser.
type Engine interface {
	Available() bool
	Speak(u Utterance, ev Events) error
	Pause() error
	Resume() error
	Cancel() error
}

// State is the controller's playback state.
type State int

const (
	Idle State = iota
	Speaking
	Paused
)

func (s State) String() string {
	switch s {
	case Speaking:
		return "speaking"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// UnavailableMessage is shown when no speech engine exists.
const UnavailableMessage = "Text-to-speech is not available on this system"

// Controller owns the single active utterance. Each Speak gets a sequence
// number; engine events carrying an older number are ignored, so a cancelled
// utterance can never move the state of its successor.
type Controller struct {
	eng   Engine
	alert func(string)

	mu      sync.Mutex
	state   State
	seq     uint64
	current Utterance
	changed func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithAlert sets the function that shows user-facing notices.
func WithAlert(fn func(string)) Option { return func(c *Controller) { c.alert = fn } }

// WithStateListener is called after every state change.
func WithStateListener(fn func(State)) Option { return func(c *Controller) { c.changed = fn } }

// NewController wraps eng.
func NewController(eng Engine, opts ...Option) *Controller {
	c := &Controller{eng: eng, alert: func(msg string) { log.Warn().Msg(msg) }}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Speak cancels any utterance in flight and starts text in lang. When the
// system has no engine the alert is shown and nil is returned.
func (c *Controller) Speak(text, lang string) error {
	if c.eng == nil || !c.eng.Available() {
		c.alert(UnavailableMessage)
		return nil
	}
	if err := c.eng.Cancel(); err != nil {
		log.Debug().Err(err).Msg("cancel previous utterance")
	}

	u := Utterance{Text: text, Lang: lang, Rate: 1.0, Pitch: 1.0}
	c.mu.Lock()
	c.seq++
	my := c.seq
	c.current = u
	c.mu.Unlock()

	err := c.eng.Speak(u, Events{
		OnStart: func() { c.transition(my, Speaking) },
		OnEnd:   func() { c.transition(my, Idle) },
		OnError: func(err error) {
			log.Error().Err(err).Msg("speech synthesis error")
			c.transition(my, Idle)
		},
	})
	if err != nil {
		c.transition(my, Idle)
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}

// Pause is a no-op unless speaking and not already paused.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != Speaking {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	if err := c.eng.Pause(); err != nil {
		log.Error().Err(err).Msg("pause speech")
		return
	}
	c.set(Speaking, Paused)
}

// Resume is a no-op unless paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.state != Paused {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	if err := c.eng.Resume(); err != nil {
		log.Error().Err(err).Msg("resume speech")
		return
	}
	c.set(Paused, Speaking)
}

// Stop cancels unconditionally and returns to idle.
func (c *Controller) Stop() {
	if c.eng != nil {
		if err := c.eng.Cancel(); err != nil {
			log.Debug().Err(err).Msg("cancel utterance")
		}
	}
	c.mu.Lock()
	c.seq++
	prev := c.state
	c.state = Idle
	c.mu.Unlock()
	if prev != Idle {
		c.notify(Idle)
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsSpeaking reports speaking or paused.
func (c *Controller) IsSpeaking() bool { return c.State() != Idle }

// Current returns the last utterance requested.
func (c *Controller) Current() Utterance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// transition applies an engine event if it belongs to the live utterance.
func (c *Controller) transition(seq uint64, to State) {
	c.mu.Lock()
	if seq != c.seq || c.state == to {
		c.mu.Unlock()
		return
	}
	c.state = to
	c.mu.Unlock()
	c.notify(to)
}

// set moves from -> to if the state is still from.
func (c *Controller) set(from, to State) {
	c.mu.Lock()
	if c.state != from {
		c.mu.Unlock()
		return
	}
	c.state = to
	c.mu.Unlock()
	c.notify(to)
}

func (c *Controller) notify(s State) {
	if c.changed != nil {
		c.changed(s)
	}
}
