package store

import (
	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
)

// DB is the summary storage interface.
type DB interface {
	// Load returns the persisted summary. A store that has never been
	// written returns an empty summary.
	Load() (models.Summary, error)
	// Save replaces the persisted summary with s.
	Save(s models.Summary) error
	// Close releases the underlying file or database handle.
	Close() error
}

// Open returns the backend selected by kind. jsonPath is used by the JSON
// file backend and boltPath by the bbolt backend.
func Open(kind, jsonPath, boltPath string) (DB, error) {
	switch kind {
	case config.StoreBolt:
		return NewClient(boltPath)
	case config.StoreJSON, "":
		return NewFile(jsonPath), nil
	default:
		return nil, errUnknownBackend.Fmt(kind)
	}
}

// OpenReadOnly is Open for commands that only read the summary. The JSON
// backend is opened without write access; the bolt backend still takes the
// database lock.
func OpenReadOnly(kind, jsonPath, boltPath string) (DB, error) {
	if kind == config.StoreJSON || kind == "" {
		return NewReadOnlyFile(jsonPath), nil
	}

	return Open(kind, jsonPath, boltPath)
}
