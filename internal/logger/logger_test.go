package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_LevelAndFormat(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	l := Setup(&buf, "warn", false)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "service=inkwell") {
		t.Fatalf("service field missing: %q", out)
	}
}

func TestSetup_DebugOverridesLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	l := Setup(&buf, "error", true)
	l.Debug().Msg("dbg")
	if !strings.Contains(buf.String(), "dbg") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}

func TestSetup_StackOnError(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	l := Setup(&buf, "", false)
	l.Error().Stack().Err(errors.New("boom")).Msg("failed")
	if !strings.Contains(buf.String(), "stack=") {
		t.Fatalf("expected stack field: %q", buf.String())
	}
}
