package tray

import (
	"fmt"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/detect"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/internal/tracker"
)

func title(cfg *config.Config, snap tracker.Snapshot) string {
	t := timeutil.FormatSeconds(
		snap.Worked,
		timeutil.DisplayStyle(cfg.TimeDisplayStyle),
	)

	if cfg.ShowStatusBar && !snap.Working() {
		return t + " ·"
	}

	return t
}

func statusLine(snap tracker.Snapshot) string {
	app := snap.App
	if app == "" {
		app = detect.Unknown
	}

	return fmt.Sprintf(
		"%s · %s · today %s",
		snap.State,
		app,
		timeutil.FormatSeconds(snap.Today, timeutil.StyleShortClock),
	)
}

func notice(snap tracker.Snapshot) string {
	if snap.Notice != "" {
		return snap.Notice
	}

	if snap.GoalReached {
		return "Daily goal reached"
	}

	return ""
}
