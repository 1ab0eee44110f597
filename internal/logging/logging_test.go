package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, Level(in), "level for %q", in)
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("tick", slog.String("app", "Code"))

	var rec map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "tick", rec["msg"])
	assert.Equal(t, "Code", rec["app"])
}

func TestSetupCreatesLogDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "log", "sith.log")

	c, err := Setup(path)
	require.NoError(t, err)

	slog.Info("hello")
	require.NoError(t, c.Close())

	assert.FileExists(t, path)
}
