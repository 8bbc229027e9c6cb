package probemap

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerOperationOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	tbl, err := New(WithLogger(logger))
	require.NoError(t, err)

	tbl.Insert("alpha", "1")
	tbl.Search("alpha")
	tbl.Search("missing")
	tbl.Delete("alpha")

	out := buf.String()
	assert.Contains(t, out, "insert completed")
	assert.Contains(t, out, "search completed")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "found=false")
	assert.Contains(t, out, "delete completed")
}

func TestLoggerResizeOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	tbl, err := New(WithLogger(logger))
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		tbl.Insert(string(rune('a'+i%26))+string(rune('a'+i/26)), "v")
	}

	assert.Contains(t, buf.String(), "table resized")
	assert.NotContains(t, buf.String(), "insert completed", "per-op logs stay at debug level")
}
