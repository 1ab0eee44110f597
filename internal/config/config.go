// Package config loads, validates and persists the sith settings document.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Fonts                map[string][]any   `mapstructure:"fonts"                  json:"fonts"`
		Notifications        NotificationConfig `mapstructure:"notifications"          json:"notifications"`
		TimeDisplayStyle     string             `mapstructure:"time_display_style"     json:"time_display_style"`
		TimerFontFamily      string             `mapstructure:"timer_font_family"      json:"timer_font_family"`
		TransitionCmd        string             `mapstructure:"transition_cmd"         json:"transition_cmd"`
		Store                string             `mapstructure:"store"                  json:"store"`
		Colors               ColorConfig        `mapstructure:"colors"                 json:"colors"`
		Allowlist            []string           `mapstructure:"allowlist"              json:"allowlist"`
		RecentApps           []string           `mapstructure:"recent_apps"            json:"recent_apps"`
		Window               WindowConfig       `mapstructure:"window"                 json:"window"`
		IdleThreshold        float64            `mapstructure:"idle_threshold"         json:"idle_threshold"`
		UpdateInterval       int                `mapstructure:"update_interval"        json:"update_interval"`
		AutosaveInterval     int                `mapstructure:"autosave_interval"      json:"autosave_interval"`
		DailyGoalMinutes     int                `mapstructure:"daily_goal_minutes"     json:"daily_goal_minutes"`
		EnableColorAnimation bool               `mapstructure:"enable_color_animation" json:"enable_color_animation"`
		ShowStatusBar        bool               `mapstructure:"show_status_bar"        json:"show_status_bar"`
	}

	// ColorConfig holds the hex colors used by the HUD.
	ColorConfig struct {
		Working       string `mapstructure:"working"        json:"working"`
		Inactive      string `mapstructure:"inactive"       json:"inactive"`
		Text          string `mapstructure:"text"           json:"text"`
		GlassWorking  string `mapstructure:"glass_working"  json:"glass_working"`
		GlassInactive string `mapstructure:"glass_inactive" json:"glass_inactive"`
	}

	// WindowConfig holds the floating window geometry.
	WindowConfig struct {
		Opacity float64 `mapstructure:"opacity"  json:"opacity"`
		Width   int     `mapstructure:"width"    json:"width"`
		Height  int     `mapstructure:"height"   json:"height"`
		MarginX int     `mapstructure:"margin_x" json:"margin_x"`
		MarginY int     `mapstructure:"margin_y" json:"margin_y"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled" json:"enabled"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

const (
	// MaxRecentApps caps the recent_apps list.
	MaxRecentApps = 10

	StoreJSON = "json"
	StoreBolt = "bolt"
)

// FontFamilies lists the accepted timer_font_family values.
var FontFamilies = []string{"Menlo", "SF Mono", "SF Pro"}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// Interval is the tick period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.UpdateInterval) * time.Millisecond
}

// TickSeconds is the number of seconds credited for each working tick.
func (c *Config) TickSeconds() float64 {
	return float64(c.UpdateInterval) / float64(time.Second/time.Millisecond)
}

// Autosave is the period between summary saves while the tracker runs. Zero
// disables autosave.
func (c *Config) Autosave() time.Duration {
	return time.Duration(c.AutosaveInterval) * time.Second
}

// DailyGoal returns the daily goal in seconds, or zero when disabled.
func (c *Config) DailyGoal() float64 {
	return float64(c.DailyGoalMinutes * 60)
}

// Allows reports whether app is on the allowlist.
func (c *Config) Allows(app string) bool {
	return slices.Contains(c.Allowlist, app)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	n := *c

	n.Allowlist = slices.Clone(c.Allowlist)
	n.RecentApps = slices.Clone(c.RecentApps)

	if c.Fonts != nil {
		n.Fonts = make(map[string][]any, len(c.Fonts))

		for k, v := range c.Fonts {
			n.Fonts[k] = slices.Clone(v)
		}
	}

	return &n
}

// normalise trims and de-duplicates the app lists and caps recent_apps.
func (c *Config) normalise() {
	c.Allowlist = cleanList(c.Allowlist)
	c.RecentApps = cleanList(c.RecentApps)

	if len(c.RecentApps) > MaxRecentApps {
		c.RecentApps = c.RecentApps[:MaxRecentApps]
	}
}

// AddRecent returns recent with app moved (or inserted) at the front, capped
// at MaxRecentApps.
func AddRecent(recent []string, app string) []string {
	out := make([]string, 0, MaxRecentApps)
	out = append(out, app)

	for _, r := range recent {
		if r == app {
			continue
		}

		if len(out) == MaxRecentApps {
			break
		}

		out = append(out, r)
	}

	return out
}

// ParseAppList splits newline or comma separated application names.
func ParseAppList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ','
	})

	return cleanList(fields)
}

func cleanList(list []string) []string {
	out := make([]string, 0, len(list))

	for _, v := range list {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}

		out = append(out, v)
	}

	return out
}

// String renders a one-line description of the settings that drive tracking.
func (c *Config) String() string {
	return fmt.Sprintf(
		"allowlist=%v idle_threshold=%gs update_interval=%dms",
		c.Allowlist,
		c.IdleThreshold,
		c.UpdateInterval,
	)
}
