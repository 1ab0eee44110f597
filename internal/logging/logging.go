// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/parkervanroy/sith/internal/osutil"
)

const (
	envLogLevel = "SITH_LOG_LEVEL"

	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Setup installs a JSON slog handler that writes to a rotating log file at
// path and returns the writer so that it can be closed on exit. The level is
// read from SITH_LOG_LEVEL and defaults to info.
func Setup(path string) (io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, Level(os.Getenv(envLogLevel))))

	return w, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Level maps a level name to a slog.Level. Unknown names map to info.
func Level(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard silences the default logger. Commands that print to the terminal
// use it when the log file cannot be opened.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
