package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeeHandler_RespectsEachLevel(t *testing.T) {
	var debugOut, warnOut bytes.Buffer

	handler := newTeeHandler(
		slog.NewTextHandler(&debugOut, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnOut, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	logger := slog.New(handler)

	logger.Debug("trial")
	logger.Warn("baseline broken")

	assert.Contains(t, debugOut.String(), "trial")
	assert.Contains(t, debugOut.String(), "baseline broken")
	assert.NotContains(t, warnOut.String(), "trial")
	assert.Contains(t, warnOut.String(), "baseline broken")
}

func TestTeeHandler_Enabled(t *testing.T) {
	handler := newTeeHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
}

func TestTeeHandler_AttrsAndGroupsReachEveryHandler(t *testing.T) {
	var first, second bytes.Buffer

	handler := newTeeHandler(
		slog.NewTextHandler(&first, nil),
		slog.NewTextHandler(&second, nil),
	)
	logger := slog.New(handler).With("path", "src/main.c").WithGroup("trial")

	logger.Info("compiled", "ok", true)

	for _, out := range []string{first.String(), second.String()} {
		assert.Contains(t, out, "path=src/main.c")
		assert.Contains(t, out, "trial.ok=true")
	}
}
