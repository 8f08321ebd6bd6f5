package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(Config{Level: "info", Format: "json", Output: &buf}), "service")

	log.Info().Int64("user_id", 7).Msg("recommendations generated")

	out := buf.String()
	for _, want := range []string{`"component":"service"`, `"user_id":7`, `"level":"info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %s", buf.String())
	}

	log.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Error("warn should be written at warn level")
	}
}

func TestParseLevelDefault(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Errorf("expected info fallback, got %s", got)
	}
}
