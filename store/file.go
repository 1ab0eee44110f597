package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/osutil"
)

// File stores the summary as a single indented JSON document.
type File struct {
	path     string
	readOnly bool
}

// NewFile returns a JSON file store at path. Nothing is read or created
// until Load or Save is called.
func NewFile(path string) *File {
	return &File{path: path}
}

// NewReadOnlyFile returns a JSON file store for reports. It never moves or
// writes the file, so it is safe to use while a tracker owns it.
func NewReadOnlyFile(path string) *File {
	return &File{path: path, readOnly: true}
}

// Path returns the location of the summary file.
func (f *File) Path() string {
	return f.path
}

// Load reads the summary file. A missing file yields an empty summary. So
// does a file that cannot be parsed: unless the store is read-only, it is
// renamed aside with a ".corrupt" suffix so that the next save does not
// destroy it.
func (f *File) Load() (models.Summary, error) {
	s, err := readSummaryFile(f.path)
	if err == nil {
		return s, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return models.Summary{}, nil
	}

	var syntaxErr *json.SyntaxError

	var typeErr *json.UnmarshalTypeError

	if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
		return nil, errReadSummary.Fmt(f.path).Wrap(err)
	}

	if f.readOnly {
		slog.Warn(
			"summary file could not be parsed",
			slog.String("path", f.path),
			slog.Any("error", err),
		)

		return models.Summary{}, nil
	}

	backup := fmt.Sprintf("%s.corrupt-%s", f.path, time.Now().Format("20060102T150405"))

	slog.Warn(
		"summary file could not be parsed, starting with an empty summary",
		slog.String("path", f.path),
		slog.String("backup", backup),
		slog.Any("error", err),
	)

	if err := os.Rename(f.path, backup); err != nil {
		slog.Warn("backing up corrupt summary failed", slog.Any("error", err))
	}

	return models.Summary{}, nil
}

// Save writes s to a temporary file next to the summary and renames it into
// place.
func (f *File) Save(s models.Summary) error {
	if f.readOnly {
		return errReadOnly.Fmt(f.path)
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errWriteSummary.Fmt(f.path).Wrap(err)
	}

	if err := writeFileAtomic(f.path, b, true); err != nil {
		return errWriteSummary.Fmt(f.path).Wrap(err)
	}

	return nil
}

func (f *File) Close() error {
	return nil
}

// readSummaryFile parses a summary document and repairs entries written by
// older releases.
func readSummaryFile(path string) (models.Summary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := models.Summary{}

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	// A document holding only null decodes to a nil map.
	if s == nil {
		s = models.Summary{}
	}

	if n := s.Normalise(); n > 0 {
		slog.Info(
			"repaired summary entries",
			slog.String("path", path),
			slog.Int("days", n),
		)
	}

	return s, nil
}

// writeFileAtomic replaces path with data through a temporary file. With
// durable set the data is flushed to disk before the rename.
func writeFileAtomic(path string, data []byte, durable bool) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if durable {
		if err := tmp.Sync(); err != nil {
			_ = tmp.Close()
			return err
		}
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), osutil.FilePermission); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// WriteJSON atomically writes v as indented JSON to path without flushing it
// to disk. It suits files that are rewritten often and can be lost.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(path, b, false)
}
