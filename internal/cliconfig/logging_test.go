package cliconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Str("base_url", "http://api.test").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "http://api.test") {
		t.Errorf("warn message missing: %s", out)
	}
}
