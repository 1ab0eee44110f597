package tracker

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/timeutil"
)

const transitionCmdTimeout = 30 * time.Second

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through the operating system.
type DesktopNotifier struct {
	// Icon is an optional path to an image shown with the notification.
	Icon string
}

// NewDesktopNotifier returns a notifier without an icon.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

func (d *DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, d.Icon)
}

func (t *Tracker) goalReached(cfg *config.Config, snap Snapshot) {
	slog.Info(
		"daily goal reached",
		slog.Int("goal_minutes", cfg.DailyGoalMinutes),
		slog.Float64("today_seconds", snap.Today),
	)

	if !cfg.Notifications.Enabled || t.notifier == nil {
		return
	}

	style := timeutil.DisplayStyle(cfg.TimeDisplayStyle)
	msg := "You have worked " +
		timeutil.FormatSeconds(snap.Today, style) + " today. Nice work!"

	t.async(func() {
		if err := t.notifier.Notify("Daily goal reached", msg); err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	})
}

// transitionEnv returns the extra environment passed to transition_cmd.
func transitionEnv(snap Snapshot) []string {
	state := "idle"
	if snap.Working() {
		state = "working"
	}

	return []string{
		"SITH_STATE=" + state,
		"SITH_APP=" + snap.App,
	}
}

// runTransitionCmd runs the user's transition command without waiting for
// it to finish. Its output is discarded.
func (t *Tracker) runTransitionCmd(command string, snap Snapshot) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		slog.Warn("unable to parse transition_cmd", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	env := append(os.Environ(), transitionEnv(snap)...)

	t.async(func() {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			transitionCmdTimeout,
		)
		defer cancel()

		cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
		cmd.Env = env

		if err := cmd.Run(); err != nil {
			slog.Warn(
				"transition_cmd failed",
				slog.String("cmd", command),
				slog.Any("error", err),
			)
		}
	})
}
