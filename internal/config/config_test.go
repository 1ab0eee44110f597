package config_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkervanroy/sith/internal/apperr"
	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/testutil"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Allowlist:            []string{"Firefox", "Code", "Safari"},
		RecentApps:           []string{},
		IdleThreshold:        2,
		EnableColorAnimation: true,
		ShowStatusBar:        true,
		TimeDisplayStyle:     "HH:MM:SS",
		TimerFontFamily:      "Menlo",
		Colors: config.ColorConfig{
			Working:       "#0077ff",
			Inactive:      "#aa0000",
			Text:          "#ffffff",
			GlassWorking:  "#00d4ff",
			GlassInactive: "#ffffff",
		},
		Window: config.WindowConfig{
			Opacity: 0.9,
			Width:   260,
			Height:  80,
			MarginX: 20,
			MarginY: 60,
		},
		UpdateInterval: 1000,
		Fonts: map[string][]any{
			"timer":       {"Menlo", 20, "bold"},
			"status":      {"Menlo", 9},
			"status_bold": {"Menlo", 9, "bold"},
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Store:            config.StoreJSON,
		AutosaveInterval: 60,
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sith", "config.json")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}

	tc := TestCase{
		Name:       "write default config to file",
		GoldenFile: "defaults",
		Snapshot:   testutil.ReadFile(t, configPath),
	}

	testutil.CompareGoldenFile(t, tc)
}

func TestMissingKeysAreFilledFromDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	testutil.WriteFile(t, configPath, `{
  "allowlist": ["Xcode", "Terminal"],
  "idle_threshold": 30,
  "colors": {"working": "#123456"},
  "window": {"width": 300}
}`)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := defaultConfig()
	want.Allowlist = []string{"Xcode", "Terminal"}
	want.IdleThreshold = 30
	want.Colors.Working = "#123456"
	want.Window.Width = 300

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("merged config mismatch (-want +got):\n%s", diff)
	}
}

func TestUnparseableConfigUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	testutil.WriteFile(t, configPath, `{"allowlist": [`)

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig().Allowlist, cfg.Allowlist)
	assert.Equal(t, `{"allowlist": [`, string(testutil.ReadFile(t, configPath)))
}

func TestOpenResetsMistypedValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "scalar of the wrong type",
			content: `{"idle_threshold": "five", "allowlist": ["Xcode"]}`,
			check: func(t *testing.T, cfg *config.Config) {
				assert.InDelta(t, 2.0, cfg.IdleThreshold, 0)
				assert.Equal(t, []string{"Xcode"}, cfg.Allowlist)
			},
		},
		{
			name:    "object replaced by a string",
			content: `{"colors": "blue", "update_interval": 500}`,
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, defaultConfig().Colors, cfg.Colors)
				assert.Equal(t, 500, cfg.UpdateInterval)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.json")

			testutil.WriteFile(t, configPath, tc.content)

			s, err := config.Open(configPath)
			require.NoError(t, err)
			require.NoError(t, s.Current().Validate())

			tc.check(t, s.Current())

			assert.Equal(t, tc.content, string(testutil.ReadFile(t, configPath)))
		})
	}
}

func TestOpenSanitisesInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	testutil.WriteFile(t, configPath, `{
  "idle_threshold": -1,
  "update_interval": 5,
  "time_display_style": "fancy",
  "timer_font_family": "Comic Sans",
  "colors": {"inactive": "red"},
  "store": "sqlite"
}`)

	s, err := config.Open(configPath)
	require.NoError(t, err)

	cfg := s.Current()

	assert.InDelta(t, 2.0, cfg.IdleThreshold, 0)
	assert.Equal(t, 1000, cfg.UpdateInterval)
	assert.Equal(t, "HH:MM:SS", cfg.TimeDisplayStyle)
	assert.Equal(t, "Menlo", cfg.TimerFontFamily)
	assert.Equal(t, "#aa0000", cfg.Colors.Inactive)
	assert.Equal(t, config.StoreJSON, cfg.Store)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		mutate func(c *config.Config)
		name   string
		ok     bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}, ok: true},
		{
			name:   "zero idle threshold",
			mutate: func(c *config.Config) { c.IdleThreshold = 0 },
		},
		{
			name:   "interval too short",
			mutate: func(c *config.Config) { c.UpdateInterval = 50 },
		},
		{
			name:   "interval too long",
			mutate: func(c *config.Config) { c.UpdateInterval = 61_000 },
		},
		{
			name:   "short hex color",
			mutate: func(c *config.Config) { c.Colors.Working = "#fff" },
		},
		{
			name:   "opacity above one",
			mutate: func(c *config.Config) { c.Window.Opacity = 1.5 },
		},
		{
			name:   "unterminated quote in transition command",
			mutate: func(c *config.Config) { c.TransitionCmd = `echo "hi` },
		},
		{
			name:   "short clock style",
			mutate: func(c *config.Config) { c.TimeDisplayStyle = "HH:MM" },
			ok:     true,
		},
		{
			name:   "bolt store",
			mutate: func(c *config.Config) { c.Store = config.StoreBolt },
			ok:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.mutate(c)

			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}

			var appErr *apperr.Error

			assert.ErrorAs(t, err, &appErr)
		})
	}
}

func newStore(t *testing.T) *config.Store {
	t.Helper()

	s, err := config.Open(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	return s
}

func readSaved(t *testing.T, path string) map[string]any {
	t.Helper()

	var m map[string]any

	require.NoError(t, json.Unmarshal(testutil.ReadFile(t, path), &m))

	return m
}

func TestStoreUpdateSavesAndSwaps(t *testing.T) {
	s := newStore(t)
	before := s.Current()

	err := s.Update(func(c *config.Config) error {
		c.IdleThreshold = 10
		return nil
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, before.IdleThreshold, 0, "previous snapshot must not change")
	assert.InDelta(t, 10.0, s.Current().IdleThreshold, 0)
	assert.InDelta(t, 10.0, readSaved(t, s.Path())["idle_threshold"], 0)
}

func TestStoreUpdateRejectsInvalidConfig(t *testing.T) {
	s := newStore(t)
	saved := testutil.ReadFile(t, s.Path())

	err := s.Update(func(c *config.Config) error {
		c.Colors.Working = "blue"
		return nil
	})
	require.Error(t, err)

	assert.Equal(t, "#0077ff", s.Current().Colors.Working)
	assert.Equal(t, saved, testutil.ReadFile(t, s.Path()))
}

func TestTrackRecentApp(t *testing.T) {
	s := newStore(t)

	for i := range 12 {
		require.NoError(t, s.TrackRecentApp(string(rune('A'+i))))
	}

	require.NoError(t, s.TrackRecentApp("C"))
	require.NoError(t, s.TrackRecentApp(models.UnknownApp))
	require.NoError(t, s.TrackRecentApp(""))

	want := []string{"C", "L", "K", "J", "I", "H", "G", "F", "E", "D"}

	assert.Equal(t, want, s.Current().RecentApps)

	reopened, err := config.Open(s.Path())
	require.NoError(t, err)
	assert.Equal(t, want, reopened.Current().RecentApps)
}

func TestAllowAndRemoveApp(t *testing.T) {
	s := newStore(t)

	added, err := s.AllowApp("Xcode")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AllowApp("Xcode")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = s.AllowApp(models.UnknownApp)
	require.Error(t, err)

	assert.Equal(t, []string{"Firefox", "Code", "Safari", "Xcode"}, s.Current().Allowlist)

	require.NoError(t, s.RemoveApp("Code"))
	assert.Equal(t, []string{"Firefox", "Safari", "Xcode"}, s.Current().Allowlist)

	require.Error(t, s.RemoveApp("Code"))
}

func TestReloadKeepsConfigOnParseError(t *testing.T) {
	s := newStore(t)

	testutil.WriteFile(t, s.Path(), `{"idle_threshold": 9}`)

	cfg, err := s.Reload()
	require.NoError(t, err)
	assert.InDelta(t, 9.0, cfg.IdleThreshold, 0)

	testutil.WriteFile(t, s.Path(), `{"idle_threshold": `)

	_, err = s.Reload()
	require.Error(t, err)
	assert.InDelta(t, 9.0, s.Current().IdleThreshold, 0)
}

func TestImportLegacy(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, ".sith", "config.json")
	target := filepath.Join(dir, "xdg", "sith", "config.json")

	testutil.WriteFile(t, legacy, `{
  "allowlist": ["PyCharm"],
  "idle_threshold": 5,
  "fonts": {"timer": ["Menlo", 24, "bold"]}
}`)

	imported, err := config.ImportLegacy(legacy, target)
	require.NoError(t, err)
	assert.True(t, imported)

	s, err := config.Open(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"PyCharm"}, s.Current().Allowlist)
	assert.InDelta(t, 5.0, s.Current().IdleThreshold, 0)
	assert.Equal(t, 1000, s.Current().UpdateInterval)

	imported, err = config.ImportLegacy(legacy, target)
	require.NoError(t, err)
	assert.False(t, imported, "an existing config must not be overwritten")

	_, err = os.Stat(legacy)
	assert.NoError(t, err, "the legacy file is left in place")
}

func TestAddRecent(t *testing.T) {
	got := config.AddRecent([]string{"A", "B", "C"}, "B")
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestParseAppList(t *testing.T) {
	got := config.ParseAppList(" Code \n\nSafari, Code,Firefox\n")
	assert.Equal(t, []string{"Code", "Safari", "Firefox"}, got)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	s := newStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *config.Config, 1)

	require.NoError(t, s.Watch(ctx, func(c *config.Config) {
		select {
		case changed <- c:
		default:
		}
	}))

	testutil.WriteFile(t, s.Path(), `{"idle_threshold": 30}`)

	select {
	case c := <-changed:
		assert.InDelta(t, 30.0, c.IdleThreshold, 0)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}

	assert.InDelta(t, 30.0, s.Current().IdleThreshold, 0)
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, config.ValidateHexColor("#1a2B3c"))
	assert.Error(t, config.ValidateHexColor("1a2b3c"))
	assert.Error(t, config.ValidateHexColor("#12345"))
	assert.Error(t, config.ValidateHexColor("red"))
}
