package store

import (
	"errors"
	"log/slog"
	"os"
)

// Migrate imports the first legacy summary file found in legacyPaths into db
// when db holds no data yet. It returns the path that was imported, or an
// empty string when nothing was done. Legacy files are left untouched.
func Migrate(db DB, legacyPaths []string) (string, error) {
	current, err := db.Load()
	if err != nil {
		return "", err
	}

	if len(current) > 0 {
		return "", nil
	}

	for _, path := range legacyPaths {
		s, err := readSummaryFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return "", errMigrate.Fmt(path).Wrap(err)
		}

		if err := db.Save(s); err != nil {
			return "", err
		}

		slog.Info(
			"imported legacy summary",
			slog.String("from", path),
			slog.Int("days", len(s)),
		)

		return path, nil
	}

	return "", nil
}
