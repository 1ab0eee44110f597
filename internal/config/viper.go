package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/parkervanroy/sith/internal/osutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyAllowlist            = "allowlist"
	keyIdleThreshold        = "idle_threshold"
	keyColorAnimation       = "enable_color_animation"
	keyShowStatusBar        = "show_status_bar"
	keyTimeDisplayStyle     = "time_display_style"
	keyTimerFontFamily      = "timer_font_family"
	keyColorWorking         = "colors.working"
	keyColorInactive        = "colors.inactive"
	keyColorText            = "colors.text"
	keyColorGlassWorking    = "colors.glass_working"
	keyColorGlassInactive   = "colors.glass_inactive"
	keyWindowOpacity        = "window.opacity"
	keyWindowWidth          = "window.width"
	keyWindowHeight         = "window.height"
	keyWindowMarginX        = "window.margin_x"
	keyWindowMarginY        = "window.margin_y"
	keyUpdateInterval       = "update_interval"
	keyFontTimer            = "fonts.timer"
	keyFontStatus           = "fonts.status"
	keyFontStatusBold       = "fonts.status_bold"
	keyRecentApps           = "recent_apps"
	keyDailyGoalMinutes     = "daily_goal_minutes"
	keyNotificationsEnabled = "notifications.enabled"
	keyTransitionCmd        = "transition_cmd"
	keyStore                = "store"
	keyAutosaveInterval     = "autosave_interval"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// missing file is created from the defaults. A file that cannot be parsed is
// left untouched and the defaults are used instead, as are keys whose value
// has the wrong type.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			loadLenient(v, c)
			return nil
		}

		if isParseError(err) {
			slog.Warn(
				"config file could not be parsed, using defaults",
				slog.String("path", configPath),
				slog.Any("error", err),
			)

			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		slog.Info("created default config", slog.String("path", configPath))

		return loadViperConfig(v, c)
	}
}

func isParseError(err error) bool {
	var parseErr viper.ConfigParseError

	var parseErrPtr *viper.ConfigParseError

	return errors.As(err, &parseErr) || errors.As(err, &parseErrPtr)
}

// Save overwrites the config file at configPath with c.
func Save(configPath string, c *Config) error {
	m, err := c.toMap()
	if err != nil {
		return errWriteConfig.Wrap(err)
	}

	v := newViper(configPath)

	for key, val := range m {
		v.Set(key, val)
	}

	err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
	if err != nil {
		return errWriteConfig.Wrap(err)
	}

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// Defaults returns a config holding only the compiled-in defaults.
func Defaults() *Config {
	v := viper.New()

	setupViper(v)

	c := &Config{}

	_ = loadViperConfig(v, c)

	return c
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	return v
}

// setupViper configures Viper with the compiled-in defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyAllowlist, []string{"Firefox", "Code", "Safari"})
	v.SetDefault(keyIdleThreshold, 2)
	v.SetDefault(keyColorAnimation, true)
	v.SetDefault(keyShowStatusBar, true)
	v.SetDefault(keyTimeDisplayStyle, "HH:MM:SS")
	v.SetDefault(keyTimerFontFamily, "Menlo")
	v.SetDefault(keyColorWorking, "#0077ff")
	v.SetDefault(keyColorInactive, "#aa0000")
	v.SetDefault(keyColorText, "#ffffff")
	v.SetDefault(keyColorGlassWorking, "#00d4ff")
	v.SetDefault(keyColorGlassInactive, "#ffffff")
	v.SetDefault(keyWindowOpacity, 0.9)
	v.SetDefault(keyWindowWidth, 260)
	v.SetDefault(keyWindowHeight, 80)
	v.SetDefault(keyWindowMarginX, 20)
	v.SetDefault(keyWindowMarginY, 60)
	v.SetDefault(keyUpdateInterval, 1000)
	v.SetDefault(keyFontTimer, []any{"Menlo", 20, "bold"})
	v.SetDefault(keyFontStatus, []any{"Menlo", 9})
	v.SetDefault(keyFontStatusBold, []any{"Menlo", 9, "bold"})
	v.SetDefault(keyRecentApps, []string{})
	v.SetDefault(keyDailyGoalMinutes, 0)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyTransitionCmd, "")
	v.SetDefault(keyStore, StoreJSON)
	v.SetDefault(keyAutosaveInterval, 60)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.normalise()

	return nil
}

// loadLenient is loadViperConfig for files edited by hand: top-level keys
// that cannot be decoded are reset to their defaults with a warning.
func loadLenient(v *viper.Viper, c *Config) {
	if err := loadViperConfig(v, c); err == nil {
		return
	}

	defaults := viper.New()
	setupViper(defaults)

	for _, key := range topLevelKeys(v) {
		probe := viper.New()
		setupViper(probe)
		probe.Set(key, v.Get(key))

		if err := probe.Unmarshal(&Config{}); err != nil {
			slog.Warn(
				"config value has the wrong type, using default",
				slog.String("key", key),
				slog.Any("error", err),
			)

			v.Set(key, defaults.Get(key))
		}
	}

	if err := loadViperConfig(v, c); err != nil {
		slog.Warn("config could not be decoded, using defaults", slog.Any("error", err))

		*c = Config{}
		_ = loadViperConfig(defaults, c)
	}
}

func topLevelKeys(v *viper.Viper) []string {
	var keys []string

	for _, key := range v.AllKeys() {
		top, _, _ := strings.Cut(key, ".")
		if !slices.Contains(keys, top) {
			keys = append(keys, top)
		}
	}

	slices.Sort(keys)

	return keys
}

// toMap converts the config into the top-level key/value pairs of the JSON
// document.
func (c *Config) toMap() (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var m map[string]any

	err = json.Unmarshal(b, &m)

	return m, err
}
