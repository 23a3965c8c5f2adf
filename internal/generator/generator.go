// Package generator writes articles with a generative-text provider.
package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/khushisingh18/Ai-blog-website/client/prompts"
)

// Provider names.
const (
	Gemini    = "gemini"
	Anthropic = "anthropic"
	OpenAI    = "openai"
)

// Default models per provider.
var defaultModels = map[string]string{
	Gemini:    "gemini-2.5-flash",
	Anthropic: "claude-3-5-haiku-latest",
	OpenAI:    "gpt-4o-mini",
}

// Generator completes a single prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Settings select and configure a provider. APIKey is read from the
// environment at run time.
type Settings struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds the provider named in s. A missing key is an EngineError so
// the caller shows the missing-key hint.
func New(s Settings) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(s.Provider))
	if provider == "" {
		provider = Gemini
	}
	model := s.Model
	if model == "" {
		model = defaultModels[provider]
	}
	if s.APIKey == "" {
		return nil, &EngineError{Provider: provider, Message: "API key is missing"}
	}
	hc := s.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 2 * time.Minute}
	}

	switch provider {
	case Gemini:
		return newGemini(s.APIKey, model, s.BaseURL, hc)
	case Anthropic:
		return newAnthropic(s.APIKey, model, s.BaseURL, hc), nil
	case OpenAI:
		return newOpenAI(s.APIKey, model, s.BaseURL, hc), nil
	}
	return nil, fmt.Errorf("unsupported AI provider: %s", s.Provider)
}

// Article builds the article prompt for topic and asks g to complete it.
func Article(ctx context.Context, g Generator, topic string) (string, error) {
	p, err := prompts.ArticlePrompt(topic)
	if err != nil {
		return "", &ValidationError{Message: MsgEmptyTopic}
	}
	start := time.Now()
	text, err := g.Generate(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("provider", g.Name()).Msg("article generation failed")
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EngineError{Provider: g.Name(), Message: "empty response"}
	}
	log.Debug().Str("provider", g.Name()).Dur("took", time.Since(start)).Int("chars", len(text)).Msg("article generated")
	return text, nil
}
