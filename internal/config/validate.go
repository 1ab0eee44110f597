package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/kballard/go-shellquote"

	"github.com/parkervanroy/sith/internal/timeutil"
)

const (
	minUpdateInterval = 100
	maxUpdateInterval = 60_000
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	for _, check := range c.checks() {
		if err := check.validate(); err != nil {
			return err
		}
	}

	return nil
}

// Sanitise replaces every invalid field with its default value and logs a
// warning for each replacement. It is used on load so that a hand-edited
// file never prevents the tracker from starting.
func (c *Config) Sanitise() {
	defaults := Defaults()

	for _, check := range c.checks() {
		if err := check.validate(); err != nil {
			slog.Warn(
				"invalid config value replaced with default",
				slog.String("key", check.key),
				slog.Any("error", err),
			)

			check.reset(defaults)
		}
	}
}

type check struct {
	validate func() error
	reset    func(d *Config)
	key      string
}

func (c *Config) checks() []check {
	colorCheck := func(name string, field *string, def func(d *Config) string) check {
		return check{
			key: "colors." + name,
			validate: func() error {
				if !hexColorRegex.MatchString(*field) {
					return errInvalidColor.Fmt(name, *field)
				}

				return nil
			},
			reset: func(d *Config) { *field = def(d) },
		}
	}

	return []check{
		{
			key: keyIdleThreshold,
			validate: func() error {
				if c.IdleThreshold <= 0 {
					return errInvalidIdleThreshold.Fmt(c.IdleThreshold)
				}

				return nil
			},
			reset: func(d *Config) { c.IdleThreshold = d.IdleThreshold },
		},
		{
			key: keyUpdateInterval,
			validate: func() error {
				if c.UpdateInterval < minUpdateInterval ||
					c.UpdateInterval > maxUpdateInterval {
					return errInvalidInterval.Fmt(
						minUpdateInterval,
						maxUpdateInterval,
						c.UpdateInterval,
					)
				}

				return nil
			},
			reset: func(d *Config) { c.UpdateInterval = d.UpdateInterval },
		},
		{
			key: keyAutosaveInterval,
			validate: func() error {
				if c.AutosaveInterval < 0 {
					return errInvalidAutosave.Fmt(c.AutosaveInterval)
				}

				return nil
			},
			reset: func(d *Config) { c.AutosaveInterval = d.AutosaveInterval },
		},
		{
			key: keyDailyGoalMinutes,
			validate: func() error {
				if c.DailyGoalMinutes < 0 {
					return errInvalidGoal.Fmt(c.DailyGoalMinutes)
				}

				return nil
			},
			reset: func(d *Config) { c.DailyGoalMinutes = d.DailyGoalMinutes },
		},
		{
			key: keyTimeDisplayStyle,
			validate: func() error {
				style := timeutil.DisplayStyle(c.TimeDisplayStyle)
				if !slices.Contains(timeutil.DisplayStyles, style) {
					return errInvalidStyle.Fmt(
						c.TimeDisplayStyle,
						timeutil.DisplayStyles,
					)
				}

				return nil
			},
			reset: func(d *Config) { c.TimeDisplayStyle = d.TimeDisplayStyle },
		},
		{
			key: keyTimerFontFamily,
			validate: func() error {
				if !slices.Contains(FontFamilies, c.TimerFontFamily) {
					return errInvalidFont.Fmt(c.TimerFontFamily, FontFamilies)
				}

				return nil
			},
			reset: func(d *Config) { c.TimerFontFamily = d.TimerFontFamily },
		},
		{
			key: keyWindowOpacity,
			validate: func() error {
				if c.Window.Opacity < 0 || c.Window.Opacity > 1 {
					return errInvalidOpacity.Fmt(c.Window.Opacity)
				}

				return nil
			},
			reset: func(d *Config) { c.Window.Opacity = d.Window.Opacity },
		},
		{
			key: keyStore,
			validate: func() error {
				if c.Store != StoreJSON && c.Store != StoreBolt {
					return errInvalidStore.Fmt(c.Store, StoreJSON, StoreBolt)
				}

				return nil
			},
			reset: func(d *Config) { c.Store = d.Store },
		},
		{
			key: keyTransitionCmd,
			validate: func() error {
				if _, err := shellquote.Split(c.TransitionCmd); err != nil {
					return errInvalidTransitionCmd.Wrap(err)
				}

				return nil
			},
			reset: func(d *Config) { c.TransitionCmd = d.TransitionCmd },
		},
		colorCheck("working", &c.Colors.Working, func(d *Config) string {
			return d.Colors.Working
		}),
		colorCheck("inactive", &c.Colors.Inactive, func(d *Config) string {
			return d.Colors.Inactive
		}),
		colorCheck("text", &c.Colors.Text, func(d *Config) string {
			return d.Colors.Text
		}),
		colorCheck("glass_working", &c.Colors.GlassWorking, func(d *Config) string {
			return d.Colors.GlassWorking
		}),
		colorCheck("glass_inactive", &c.Colors.GlassInactive, func(d *Config) string {
			return d.Colors.GlassInactive
		}),
	}
}

// ValidateHexColor is used by the settings form.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return fmt.Errorf("%q is not a hex color such as #0077ff", s)
	}

	return nil
}
