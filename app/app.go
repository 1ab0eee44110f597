package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/parkervanroy/sith/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func summaryFlags() []cli.Flag {
	return []cli.Flag{
		periodFlag,
		startFlag,
		endFlag,
		sinceFlag,
		appFilterFlag,
		jsonFlag,
	}
}

// Get retrieves the sith app instance.
func Get() *cli.App {
	sithApp := &cli.App{
		Name: "sith",
		Usage: `
		Sith measures the time you spend in the applications you consider
		work. Time only counts while one of them is in the foreground and you
		are at the keyboard.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name: "summary",
				Usage: `
				Show time worked per day and per application. Defaults to a
				reporting period of 7 days`,
				Flags:  summaryFlags(),
				Action: summaryAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running tracker",
				Action: statusAction,
			},
			{
				Name:  "allow",
				Usage: "Manage the applications that count as work",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List allowed applications",
						Action: allowListAction,
					},
					{
						Name:      "add",
						Usage:     "Add applications to the allowlist",
						ArgsUsage: "[APP...]",
						Flags:     []cli.Flag{currentFlag, delayFlag},
						Action:    allowAddAction,
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "Remove applications from the allowlist",
						ArgsUsage: "APP...",
						Action:    allowRemoveAction,
					},
				},
			},
			{
				Name:   "recent",
				Usage:  "List recently used applications",
				Action: recentAction,
			},
			{
				Name:   "settings",
				Usage:  "Change settings interactively",
				Action: settingsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "guide",
				Usage:  "Print the user guide",
				Action: guideAction,
			},
			{
				Name:   "migrate",
				Usage:  "Import the config and summary of older releases",
				Action: migrateAction,
			},
		},
		Flags: []cli.Flag{
			trayFlag,
			demoFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return sithApp
}
