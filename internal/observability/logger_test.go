package observability

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddSource)
	assert.Equal(t, time.RFC3339, cfg.TimeFormat)
}

func TestNewLogger(t *testing.T) {
	t.Run("creates json logger", func(t *testing.T) {
		logger := NewLogger(LoggingConfig{
			Level:  "debug",
			Format: "json",
			Output: "stderr",
		})

		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("creates console logger", func(t *testing.T) {
		logger := NewLogger(LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		})

		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := NewLogger(LoggingConfig{
			Level:  "banana",
			Format: "json",
			Output: "stderr",
		})

		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestWithToolContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	toolLogger := WithToolContext(logger, "get_graph_get_paper", "req-123")
	toolLogger.Info().Msg("tool invoked")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "get_graph_get_paper", entry["tool"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "tool invoked", entry["message"])
}

func TestWithEndpointContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	endpointLogger := WithEndpointContext(logger, "GET", "paper/search")
	endpointLogger.Info().Msg("request complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "paper/search", entry["endpoint"])
}
