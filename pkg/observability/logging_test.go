package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"xyzzy", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
		require.NotNil(t, logger)
		logger.Info("simulation computed", "crop", "Cafe")
	})

	t.Run("unknown format falls back to text", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "warn", Format: ""})
		require.NotNil(t, logger)
		logger.Warn("rate outside usual range")
	})

	t.Run("installs the process default", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "info", Format: "json"})
		assert.Equal(t, logger.Handler(), slog.Default().Handler())
	})
}
