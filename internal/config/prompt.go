package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/parkervanroy/sith/internal/timeutil"
)

const asciiLogo = `
███████╗██╗████████╗██╗  ██╗
██╔════╝██║╚══██╔══╝██║  ██║
███████╗██║   ██║   ███████║
╚════██║██║   ██║   ██╔══██║
███████║██║   ██║   ██║  ██║
╚══════╝╚═╝   ╚═╝   ╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the settings form.
type PromptOptions struct {
	Allowlist            string
	IdleThreshold        string
	TimeDisplayStyle     string
	TimerFontFamily      string
	WorkingColor         string
	InactiveColor        string
	EnableColorAnimation bool
	ShowStatusBar        bool
}

// PromptSettings shows the interactive settings form pre-filled with the
// current values and saves the answers through the store.
func PromptSettings(s *Store) error {
	opts := promptDefaults(s.Current())

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Edit the values below and press ENTER to move on.
Applications are matched by their display name, one per line.
Run 'sith edit-config' to change settings that are not listed here.`, " ").
		Render()

	if err := promptUser(&opts); err != nil {
		return err
	}

	return s.Update(func(c *Config) error {
		return applyPromptOptions(c, opts)
	})
}

func promptDefaults(c *Config) PromptOptions {
	return PromptOptions{
		Allowlist:            strings.Join(c.Allowlist, "\n"),
		IdleThreshold:        strconv.FormatFloat(c.IdleThreshold, 'f', -1, 64),
		TimeDisplayStyle:     c.TimeDisplayStyle,
		TimerFontFamily:      c.TimerFontFamily,
		WorkingColor:         c.Colors.Working,
		InactiveColor:        c.Colors.Inactive,
		EnableColorAnimation: c.EnableColorAnimation,
		ShowStatusBar:        c.ShowStatusBar,
	}
}

// promptUser handles the interactive configuration process.
func promptUser(opts *PromptOptions) error {
	styles := make([]string, 0, len(timeutil.DisplayStyles))
	for _, s := range timeutil.DisplayStyles {
		styles = append(styles, string(s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Work applications").
				Description("One application name per line").
				Value(&opts.Allowlist),
			huh.NewInput().
				Title("Idle threshold (seconds)").
				Validate(validateIdleInput).
				Value(&opts.IdleThreshold),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Time display style").
				Options(huh.NewOptions(styles...)...).
				Value(&opts.TimeDisplayStyle),
			huh.NewSelect[string]().
				Title("Timer font").
				Options(huh.NewOptions(FontFamilies...)...).
				Value(&opts.TimerFontFamily),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Working color").
				Validate(ValidateHexColor).
				Value(&opts.WorkingColor),
			huh.NewInput().
				Title("Inactive color").
				Validate(ValidateHexColor).
				Value(&opts.InactiveColor),
			huh.NewConfirm().
				Title("Animate color changes").
				Value(&opts.EnableColorAnimation),
			huh.NewConfirm().
				Title("Show status bar").
				Value(&opts.ShowStatusBar),
		),
	)

	err := form.Run()
	if err != nil {
		return fmt.Errorf("form interaction failed: %w", err)
	}

	return nil
}

func validateIdleInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number of seconds")
	}

	if n <= 0 {
		return errors.New("the idle threshold must be at least 1 second")
	}

	return nil
}

// applyPromptOptions applies the user's form responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	idle, err := strconv.Atoi(strings.TrimSpace(opts.IdleThreshold))
	if err != nil {
		return errInvalidIdleThreshold.Fmt(opts.IdleThreshold)
	}

	c.Allowlist = ParseAppList(opts.Allowlist)
	c.IdleThreshold = float64(idle)
	c.TimeDisplayStyle = opts.TimeDisplayStyle
	c.TimerFontFamily = opts.TimerFontFamily
	c.Colors.Working = strings.TrimSpace(opts.WorkingColor)
	c.Colors.Inactive = strings.TrimSpace(opts.InactiveColor)
	c.EnableColorAnimation = opts.EnableColorAnimation
	c.ShowStatusBar = opts.ShowStatusBar

	return nil
}
