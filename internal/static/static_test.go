package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	guide := Guide()

	assert.Contains(t, guide, "# Sith Guide")
	assert.Contains(t, guide, "sith allow add --current")
}

func TestIcon(t *testing.T) {
	icon := Icon()

	require.NotEmpty(t, icon)
	assert.Equal(t, []byte("\x89PNG"), icon[:4])
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	assert.FileExists(t, filepath.Join(dir, IconFile))

	path := filepath.Join(dir, guideFile)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Guide(), string(b))

	require.NoError(t, os.WriteFile(path, []byte("edited"), 0o644))
	require.NoError(t, Install(dir))

	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(b))
}
