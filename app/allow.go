package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/parkervanroy/sith/internal/apperr"
	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/detect"
	"github.com/parkervanroy/sith/internal/ui"
	"github.com/parkervanroy/sith/report"
)

const detectTimeout = 5 * time.Second

var (
	errNoApps = &apperr.Error{
		Message: "provide at least one application name",
	}

	errNoFrontmostApp = &apperr.Error{
		Message: "no frontmost application was detected",
	}
)

// printApps prints a numbered table of apps, marking those on the
// allowlist.
func printApps(w io.Writer, apps []string, cfg *config.Config) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications")
		return
	}

	rows := [][]string{{"#", "APPLICATION", "WORK"}}

	for i, app := range apps {
		work := ""
		if cfg.Allows(app) {
			work = ui.Green("yes")
		}

		rows = append(rows, []string{strconv.Itoa(i + 1), app, work})
	}

	ui.PrintTable(rows, w)
}

func allowListAction(ctx *cli.Context) error {
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	cfg := cfgStore.Current()

	printApps(ctx.App.Writer, cfg.Allowlist, cfg)

	return nil
}

func recentAction(ctx *cli.Context) error {
	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	cfg := cfgStore.Current()

	printApps(ctx.App.Writer, cfg.RecentApps, cfg)

	return nil
}

// frontmostApp waits for delay so the user can switch to the application,
// then detects it.
func frontmostApp(
	ctx context.Context,
	d detect.Detector,
	delay time.Duration,
) (string, error) {
	if delay > 0 {
		spinner, _ := pterm.DefaultSpinner.Start(
			fmt.Sprintf("Switch to the application within %s...", delay),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			_ = spinner.Stop()
			return "", ctx.Err()
		}

		_ = spinner.Stop()
	}

	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	app := d.FrontmostApp(ctx)
	if app == detect.Unknown {
		return "", errNoFrontmostApp
	}

	return app, nil
}

func allowApps(s *config.Store, apps []string) error {
	for _, app := range apps {
		added, err := s.AllowApp(app)
		if err != nil {
			return err
		}

		if added {
			report.AppAllowed(app)
		} else {
			report.AppAlreadyAllowed(app)
		}
	}

	return nil
}

func allowAddAction(ctx *cli.Context) error {
	apps := ctx.Args().Slice()

	if ctx.Bool("current") {
		app, err := frontmostApp(
			ctx.Context,
			detect.New(),
			ctx.Duration("delay"),
		)
		if err != nil {
			return err
		}

		apps = append(apps, app)
	}

	if len(apps) == 0 {
		return errNoApps
	}

	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	return allowApps(cfgStore, apps)
}

func allowRemoveAction(ctx *cli.Context) error {
	apps := ctx.Args().Slice()
	if len(apps) == 0 {
		return errNoApps
	}

	cfgStore, err := openConfig()
	if err != nil {
		return err
	}

	for _, app := range apps {
		if err := cfgStore.RemoveApp(app); err != nil {
			return err
		}

		report.AppRemoved(app)
	}

	return nil
}
