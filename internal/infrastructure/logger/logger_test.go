package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "travel-search-mcp"}, &buf)

	log.Info().Str("origin", "JFK").Msg("Flight search completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "travel-search-mcp", entry["service"])
	assert.Equal(t, "JFK", entry["origin"])
	assert.Equal(t, "Flight search completed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "travel-search-mcp"}, &buf)

	log.Info().Msg("console output")

	out := buf.String()
	assert.NotEmpty(t, out)
	// Console output is human-readable, not a JSON object per line.
	assert.False(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "console output")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "loud", Format: "json", ServiceName: "test"}, &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log := base.WithContext("tool", "search_flights").WithRequestID("req-123")
	log.Info().Msg("tool call")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search_flights", entry["tool"])
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestWithContext_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	_ = base.WithContext("tool", "search_hotels")
	base.Info().Msg("plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "tool")
}

func TestNop(t *testing.T) {
	log := Nop()
	// Must not panic and must not write anywhere.
	log.Info().Str("k", "v").Msg("discarded")
	log.Error().Msg("discarded")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "travel-search-mcp", cfg.ServiceName)
}
