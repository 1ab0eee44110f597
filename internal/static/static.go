// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/parkervanroy/sith/internal/osutil"
)

const (
	filesDir  = "files"
	guideFile = "guide.md"

	// IconFile is the name of the installed application icon.
	IconFile = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// Guide returns the bundled user guide.
func Guide() string {
	b, err := embeddedFiles.ReadFile(filesDir + "/" + guideFile)
	if err != nil {
		return ""
	}

	return string(b)
}

// Icon returns the PNG application icon.
func Icon() []byte {
	b, err := embeddedFiles.ReadFile(filesDir + "/" + IconFile)
	if err != nil {
		return nil
	}

	return b
}

// Install copies the embedded files into dataDir. Existing files are left
// untouched so that local edits survive upgrades.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dataDir, filepath.FromSlash(stripped))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
