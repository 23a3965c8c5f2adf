package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_URL", "HTTP_TIMEOUT", "DATA_DIR", "LOG_LEVEL", "AI_PROVIDER", "AI_MODEL",
		"GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL", "TTS_COMMAND"} {
		t.Setenv(Prefix+"_"+k, "")
		_ = os.Unsetenv(Prefix + "_" + k)
	}
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetEnv(t)
	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000/api" || cfg.HTTPTimeout != 0 || cfg.AIProvider != ProviderGemini {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ProviderKey() != "" {
		t.Fatalf("expected no provider key by default")
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	unsetEnv(t)
	t.Setenv("INKWELL_API_URL", "https://blog.example/api/")
	t.Setenv("INKWELL_HTTP_TIMEOUT", "5s")
	t.Setenv("INKWELL_AI_PROVIDER", "Anthropic")
	t.Setenv("INKWELL_ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.APIURL != "https://blog.example/api" {
		t.Fatalf("trailing slash not trimmed: %s", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 5*time.Second || cfg.AIProvider != ProviderAnthropic || cfg.ProviderKey() != "sk-ant" {
		t.Fatalf("env override failed: %+v", cfg)
	}
}

func TestConfigLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"INKWELL_AI_PROVIDER":  "cohere",
		"INKWELL_LOG_LEVEL":    "loud",
		"INKWELL_HTTP_TIMEOUT": "-1s",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			unsetEnv(t)
			t.Setenv(k, v)
			if _, err := New(); err == nil {
				t.Fatalf("expected error for %s=%s", k, v)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	unsetEnv(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("INKWELL_AI_MODEL=gemini-1.5-flash\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(p, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("INKWELL_AI_MODEL") })
	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.AIModel != "gemini-1.5-flash" {
		t.Fatalf("dotenv value not applied: %q", cfg.AIModel)
	}
}
