// Package detect reports the frontmost application and the time since the
// last keyboard or mouse input. Detection never fails: errors are logged at
// debug level and mapped to Unknown and zero idle time.
package detect

import (
	"context"
	"os/exec"

	"github.com/parkervanroy/sith/internal/models"
)

// Unknown is returned when the frontmost application cannot be determined.
const Unknown = models.UnknownApp

// Detector samples the desktop state once per tick.
type Detector interface {
	// FrontmostApp returns the display name of the focused application or
	// Unknown.
	FrontmostApp(ctx context.Context) string
	// IdleSeconds returns the seconds since the last user input, or 0 when
	// that cannot be determined.
	IdleSeconds(ctx context.Context) float64
}

// CmdExecutor runs an external command and returns its standard output.
type CmdExecutor func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultCmdExecutor(
	ctx context.Context,
	name string,
	args ...string,
) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Static always reports the same application and idle time. It backs the
// --demo flag and the tests.
type Static struct {
	App  string
	Idle float64
}

func (s Static) FrontmostApp(context.Context) string {
	if s.App == "" {
		return Unknown
	}

	return s.App
}

func (s Static) IdleSeconds(context.Context) float64 {
	return s.Idle
}

// none is used on platforms without a detector.
type none struct{}

func (none) FrontmostApp(context.Context) string { return Unknown }

func (none) IdleSeconds(context.Context) float64 { return 0 }
