package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

const defaultCurrentAppDelay = 3 * time.Second

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	trayFlag = &cli.BoolFlag{
		Name:  "tray",
		Usage: "Run in the menu bar instead of the terminal",
	}

	demoFlag = &cli.StringFlag{
		Name:  "demo",
		Usage: "Pretend APP is always in the foreground and the user is never idle",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: today, yesterday, 7days, 14days, 30days, 90days,\n\t\t\t\t180days, 365days or all-time (default: 7days)",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start date of the reporting period (e.g. 2025-11-01)",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "End date of the reporting period (e.g. 2025-11-30)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Report from a relative date until now (e.g. '3 days ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the report as JSON",
	}

	appFilterFlag = &cli.StringFlag{
		Name:    "app",
		Aliases: []string{"a"},
		Usage:   "Only report on these comma-delimited applications",
	}

	currentFlag = &cli.BoolFlag{
		Name:    "current",
		Aliases: []string{"c"},
		Usage:   "Add the application in the foreground after --delay",
	}

	delayFlag = &cli.DurationFlag{
		Name:  "delay",
		Usage: "Time to switch to the application when using --current",
		Value: defaultCurrentAppDelay,
	}
)
