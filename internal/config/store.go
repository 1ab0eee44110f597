package config

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/parkervanroy/sith/internal/models"
)

// Store is a swap-on-write accessor for the settings document. Readers call
// Current and never observe a partially applied edit. Writers are serialised.
type Store struct {
	cur  atomic.Pointer[Config]
	path string
	mu   sync.Mutex
}

// Open loads the config file at path, creating it with the defaults on first
// run. Invalid values are replaced with their defaults.
func Open(path string) (*Store, error) {
	cfg, err := New(WithViperConfig(path))
	if err != nil {
		return nil, err
	}

	cfg.Sanitise()

	return NewStore(path, cfg), nil
}

// NewStore wraps an already loaded config. Updates are saved to path.
func NewStore(path string, cfg *Config) *Store {
	s := &Store{path: path}
	s.cur.Store(cfg)

	return s
}

// Current returns the active config. The returned value must not be mutated.
func (s *Store) Current() *Config {
	return s.cur.Load()
}

// Path returns the location of the config file.
func (s *Store) Path() string {
	return s.path
}

// Update applies fn to a copy of the current config, then validates and saves
// the copy before making it current. Nothing changes if any step fails.
func (s *Store) Update(fn func(*Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.Current().Clone()

	if err := fn(next); err != nil {
		return err
	}

	next.normalise()

	if err := next.Validate(); err != nil {
		return err
	}

	if err := Save(s.path, next); err != nil {
		return err
	}

	s.cur.Store(next)

	return nil
}

// Reload re-reads the config file. Unlike Open, a file that cannot be parsed
// leaves the current config in place.
func (s *Store) Reload() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := newViper(s.path)

	setupViper(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errReadConfig.Wrap(err)
	}

	cfg := &Config{}
	if err := loadViperConfig(v, cfg); err != nil {
		return nil, err
	}

	cfg.Sanitise()

	s.cur.Store(cfg)

	slog.Debug("config reloaded", slog.String("config", cfg.String()))

	return cfg, nil
}

// TrackRecentApp moves app to the front of recent_apps. Unknown or empty names
// are ignored, as is an app that is already the most recent one.
func (s *Store) TrackRecentApp(app string) error {
	app = strings.TrimSpace(app)
	if app == "" || app == models.UnknownApp {
		return nil
	}

	if recent := s.Current().RecentApps; len(recent) > 0 && recent[0] == app {
		return nil
	}

	return s.Update(func(c *Config) error {
		c.RecentApps = AddRecent(c.RecentApps, app)
		return nil
	})
}

// AllowApp appends app to the allowlist. It reports false if app was already
// allowed.
func (s *Store) AllowApp(app string) (bool, error) {
	app = strings.TrimSpace(app)

	if app == "" {
		return false, errEmptyAppName
	}

	if app == models.UnknownApp {
		return false, errUnknownApp.Fmt(app)
	}

	if s.Current().Allows(app) {
		return false, nil
	}

	err := s.Update(func(c *Config) error {
		c.Allowlist = append(c.Allowlist, app)
		return nil
	})

	return err == nil, err
}

// RemoveApp deletes app from the allowlist.
func (s *Store) RemoveApp(app string) error {
	app = strings.TrimSpace(app)

	if !s.Current().Allows(app) {
		return errAppNotAllowed.Fmt(app)
	}

	return s.Update(func(c *Config) error {
		c.Allowlist = slices.DeleteFunc(c.Allowlist, func(a string) bool {
			return a == app
		})

		return nil
	})
}
