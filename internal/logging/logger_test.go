package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"whatever": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestWithComponentAndLocation(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "navigation")
	ctx = WithLocation(ctx, "file:///proj")
	FromContext(ctx).Info().Msg("navigated")

	out := buf.String()
	assert.Contains(t, out, `"component":"navigation"`)
	assert.Contains(t, out, `"location":"file:///proj"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestNewWithFile_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Enabled: true, LogDir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("location", "file:///a").Msg("recorded")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"recorded"`)
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 2)
	require.NoError(t, err)
	// Force rotation on every write.
	r.maxSize = 8

	for range 5 {
		_, err := r.Write([]byte("0123456789\n"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 2)
	assert.FileExists(t, filepath.Join(dir, logFileName))
}
