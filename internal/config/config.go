// Package config loads inkwell's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prefix is prepended to every environment variable, e.g. INKWELL_API_URL.
const Prefix = "INKWELL"

// AI providers understood by the generator.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds the terminal client's configuration.
type Config struct {
	// Backend
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:5000/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"` // 0 disables the client timeout

	// Local state; empty means ~/.inkwell
	DataDir string `envconfig:"DATA_DIR" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Article generator
	AIProvider      string `envconfig:"AI_PROVIDER" default:"gemini"`
	AIModel         string `envconfig:"AI_MODEL" default:""`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY" default:""`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY" default:""`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIBaseURL   string `envconfig:"OPENAI_BASE_URL" default:""`

	// Speech; empty means auto-detect espeak-ng, espeak or say
	TTSCommand string `envconfig:"TTS_COMMAND" default:""`
}

// Validate checks the values envconfig cannot.
func (c *Config) Validate() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		return fmt.Errorf("%s_API_URL cannot be empty", Prefix)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s_HTTP_TIMEOUT cannot be negative", Prefix)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("unsupported %s_LOG_LEVEL: %s", Prefix, c.LogLevel)
	}
	c.AIProvider = strings.ToLower(strings.TrimSpace(c.AIProvider))
	switch c.AIProvider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported %s_AI_PROVIDER: %s", Prefix, c.AIProvider)
	}
	return nil
}

// ProviderKey returns the API key configured for the selected AI provider.
func (c *Config) ProviderKey() string {
	switch c.AIProvider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return c.GeminiAPIKey
	}
}

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// New creates a new Config by parsing INKWELL_* environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("data_dir", cfg.DataDir).
		Str("ai_provider", cfg.AIProvider).
		Str("ai_model", cfg.AIModel).
		Bool("ai_key_present", cfg.ProviderKey() != "").
		Msg("configuration loaded")

	return &cfg, nil
}
