package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		wantSlog slog.Level
		wantZap  zapcore.Level
	}{
		{"debug", slog.LevelDebug, zapcore.DebugLevel},
		{"INFO", slog.LevelInfo, zapcore.InfoLevel},
		{"", slog.LevelInfo, zapcore.InfoLevel},
		{" warn ", slog.LevelWarn, zapcore.WarnLevel},
		{"error", slog.LevelError, zapcore.ErrorLevel},
		{"verbose", slog.LevelInfo, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotSlog, gotZap := parseLevel(tt.input)
			assert.Equal(t, tt.wantSlog, gotSlog)
			assert.Equal(t, tt.wantZap, gotZap)
		})
	}
}

func TestInitInstallsDefault(t *testing.T) {
	zl, err := Init("debug")
	assert.NoError(t, err)
	assert.NotNil(t, zl)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	NewSlogAdapter().Debug("adapter works", "key", "value")
}

func TestSlogAdapterForwardsToGlobalLogger(t *testing.T) {
	prev := globalLogger
	t.Cleanup(func() { globalLogger = prev })

	var buf bytes.Buffer
	globalLogger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := NewSlogAdapter()
	l.Debug("d", "network", "goerli")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"level":"DEBUG"`)
	assert.Contains(t, lines[0], `"network":"goerli"`)
	assert.Contains(t, lines[1], `"level":"INFO"`)
	assert.Contains(t, lines[2], `"level":"WARN"`)
	assert.Contains(t, lines[3], `"level":"ERROR"`)
}
