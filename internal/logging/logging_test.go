package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup := New(&buf, Options{Level: slog.LevelInfo})
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("loaded", "rows", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=loaded")
	assert.Contains(t, out, "rows=7")
}

func TestMultiHandler(t *testing.T) {
	var debug, warn bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(h).With("step", "Gender").WithGroup("chart")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("rendered", "kind", "bar")
	logger.Warn("slow")

	assert.Contains(t, debug.String(), "step=Gender")
	assert.Contains(t, debug.String(), "chart.kind=bar")
	assert.NotContains(t, warn.String(), "rendered")
	assert.Contains(t, warn.String(), "slow")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	fallback.Info("dropped")
	assert.Empty(t, buf.String())
}
