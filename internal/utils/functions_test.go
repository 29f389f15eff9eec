package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderArgs(t *testing.T) {
	headers := ParseHeaderArgs([]string{
		"Authorization: Basic dXNlcjpwYXNz",
		"X-Empty:",
		"malformed",
	})
	assert.Equal(t, map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
		"X-Empty":       "",
	}, headers)
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "missing")))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.True(t, PathExists(file))
}

func TestCleanArchives(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SDL2-devel-2.0.16-VC.zip"), []byte("partial"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "SDL2-2.0.16"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "folder.zip"), 0755))

	removed, err := CleanArchives(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"SDL2-devel-2.0.16-VC.zip"}, removed)

	assert.False(t, PathExists(filepath.Join(dir, "SDL2-devel-2.0.16-VC.zip")))
	assert.True(t, PathExists(filepath.Join(dir, "notes.txt")))
	assert.True(t, PathExists(filepath.Join(dir, "SDL2-2.0.16")))
	assert.True(t, PathExists(filepath.Join(dir, "folder.zip")))
}

func TestCleanArchivesMissingDir(t *testing.T) {
	removed, err := CleanArchives(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestDefaultBaseDir(t *testing.T) {
	assert.Equal(t, DefaultBaseDirName, filepath.Base(DefaultBaseDir()))
}
