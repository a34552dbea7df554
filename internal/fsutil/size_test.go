package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDirSizeMissingPath(t *testing.T) {
	assert.EqualValues(t, 0, DirSize(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestDirSizeSumsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b.bin"), 200)
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.bin"), 300)

	assert.EqualValues(t, 600, DirSize(dir))
}

func TestDirSizeMonotonic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 128)
	before := DirSize(dir)

	writeFile(t, filepath.Join(dir, "b.bin"), 1)
	assert.Greater(t, DirSize(dir), before)
}

func TestDirSizeEmptyDirectory(t *testing.T) {
	assert.EqualValues(t, 0, DirSize(t.TempDir()))
}

func TestNewestMTime(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.txt")
	recent := filepath.Join(dir, "sub", "recent.txt")
	writeFile(t, old, 1)
	writeFile(t, recent, 1)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	got := NewestMTime(dir)
	info, err := os.Stat(recent)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime().Unix(), got)
}

func TestNewestMTimeMissingPath(t *testing.T) {
	assert.EqualValues(t, 0, NewestMTime(filepath.Join(t.TempDir(), "nope")))
}

func TestCountFilesWithExt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.py"), 1)
	writeFile(t, filepath.Join(dir, "pkg", "util.py"), 1)
	writeFile(t, filepath.Join(dir, "readme.md"), 1)

	assert.Equal(t, 2, CountFilesWithExt(dir, ".py"))
	assert.Equal(t, 0, CountFilesWithExt(filepath.Join(dir, "gone"), ".py"))
}
