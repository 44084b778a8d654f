package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(&filteringHandler{underlying: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})})

	hidden := logger.With("section", "hidden-section")
	hidden.Info("not shown")
	assert.Empty(t, buf.String())

	hidden.Warn("always shown")
	assert.Contains(t, buf.String(), "always shown")

	buf.Reset()
	EnableSections("hidden")
	hidden.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")

	buf.Reset()
	logger.Info("inline section", "section", "cmd")
	assert.Contains(t, buf.String(), "inline section")
}
