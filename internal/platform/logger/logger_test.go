package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/airport-api/internal/config"
)

func TestSetup_LevelParsing(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{name: "debug", logLevel: "debug", expected: slog.LevelDebug},
		{name: "info", logLevel: "info", expected: slog.LevelInfo},
		{name: "warn", logLevel: "warn", expected: slog.LevelWarn},
		{name: "error", logLevel: "error", expected: slog.LevelError},
		{name: "case insensitive", logLevel: "DEBUG", expected: slog.LevelDebug},
		{name: "invalid falls back to info", logLevel: "verbose", expected: slog.LevelInfo},
		{name: "empty falls back to info", logLevel: "", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.expected))
			if tt.expected > slog.LevelDebug {
				assert.False(t, log.Enabled(ctx, tt.expected-4))
			}
		})
	}
}

func TestSetup_SetsDefaultLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	log, err := Setup(config.ServerConfig{LogLevel: "warn"})
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())
}

func TestWithContext_RoundTrip(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	contextLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("prefers the context logger", func(t *testing.T) {
		ctx := WithContext(context.Background(), contextLogger)
		assert.Same(t, contextLogger, FromContextOrDefault(ctx, fallback))
	})

	t.Run("uses the fallback when the context carries none", func(t *testing.T) {
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("uses the process default without a fallback", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
