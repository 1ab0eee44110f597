package config

import (
	"errors"
	"log/slog"
	"os"
)

// ImportLegacy copies the config found at legacyPath to path when path does
// not exist yet. Keys missing from the legacy document are filled from the
// defaults. It reports whether an import took place.
func ImportLegacy(legacyPath, path string) (bool, error) {
	if legacyPath == "" {
		return false, nil
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if _, err := os.Stat(legacyPath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	v := newViper(legacyPath)

	setupViper(v)

	if err := v.ReadInConfig(); err != nil {
		return false, errImportLegacy.Fmt(legacyPath).Wrap(err)
	}

	cfg := &Config{}
	loadLenient(v, cfg)

	cfg.Sanitise()

	if err := Save(path, cfg); err != nil {
		return false, err
	}

	slog.Info(
		"imported legacy config",
		slog.String("from", legacyPath),
		slog.String("to", path),
	)

	return true, nil
}
