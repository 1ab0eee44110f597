package detect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const frontmostScript = `tell application "System Events" to get name of first application process whose frontmost is true`

var errIdleNotFound = errors.New("HIDIdleTime not found in ioreg output")

// Darwin detects the frontmost application with osascript and the idle
// time with ioreg.
type Darwin struct {
	exec CmdExecutor
}

// NewDarwin returns a macOS detector. A nil executor runs real commands.
func NewDarwin(executor CmdExecutor) *Darwin {
	if executor == nil {
		executor = defaultCmdExecutor
	}

	return &Darwin{exec: executor}
}

func (d *Darwin) FrontmostApp(ctx context.Context) string {
	out, err := d.exec(ctx, "osascript", "-e", frontmostScript)
	if err != nil {
		slog.Debug("frontmost app lookup failed", slog.Any("error", err))
		return Unknown
	}

	name := strings.TrimSpace(string(out))
	if name == "" {
		return Unknown
	}

	return name
}

func (d *Darwin) IdleSeconds(ctx context.Context) float64 {
	out, err := d.exec(ctx, "ioreg", "-c", "IOHIDSystem", "-d", "4")
	if err != nil {
		slog.Debug("idle time lookup failed", slog.Any("error", err))
		return 0
	}

	ns, err := parseHIDIdleTime(out)
	if err != nil {
		slog.Debug("idle time lookup failed", slog.Any("error", err))
		return 0
	}

	return float64(ns) / 1e9
}

// parseHIDIdleTime extracts the nanosecond value from a line such as
// `"HIDIdleTime" = 1234567`.
func parseHIDIdleTime(output []byte) (int64, error) {
	for _, line := range bytes.Split(output, []byte("\n")) {
		s := string(bytes.TrimSpace(line))
		if !strings.Contains(s, "HIDIdleTime") {
			continue
		}

		_, value, ok := strings.Cut(s, "=")
		if !ok {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"`)

		ns, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing idle time %q: %w", value, err)
		}

		return ns, nil
	}

	return 0, errIdleNotFound
}
