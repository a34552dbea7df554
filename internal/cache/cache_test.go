package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestAnalyzeMissingCache(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "absent")).Analyze()
	assert.EqualValues(t, 0, a.Total)
	assert.Empty(t, a.Subdirs)
}

func TestAnalyzeBreakdownSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wheels", "a.whl"), 3000)
	writeFile(t, filepath.Join(dir, "archive-v0", "b.tar"), 5000)
	writeFile(t, filepath.Join(dir, "loose.txt"), 100)

	a := New(dir).Analyze()

	assert.EqualValues(t, 8100, a.Total)
	require.Len(t, a.Subdirs, 2)
	assert.Equal(t, "archive-v0", a.Subdirs[0].Name)
	assert.EqualValues(t, 5000, a.Subdirs[0].Size)
	assert.Equal(t, "wheels", a.Subdirs[1].Name)
}

func TestCleanDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wheels", "a.whl"), 2048)

	c := New(dir)
	c.runner = func(context.Context) (string, error) {
		t.Fatal("dry run must not invoke the external command")
		return "", nil
	}

	res, err := c.Clean(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.EqualValues(t, 2048, res.SizeFreed)
}

func TestCleanParsesRemovedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "wheels", "a.whl"), 1024)

	c := New(dir)
	c.runner = func(context.Context) (string, error) {
		return "Removed 88974 files (1.2GiB)\n", nil
	}

	res, err := c.Clean(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 88974, res.FilesRemoved)
	assert.EqualValues(t, 1024, res.SizeFreed)
}

func TestCleanPropagatesCommandFailure(t *testing.T) {
	c := New(t.TempDir())
	wantErr := errors.New("uv not installed")
	c.runner = func(context.Context) (string, error) { return "", wantErr }

	_, err := c.Clean(context.Background(), false)
	assert.ErrorIs(t, err, wantErr)
}
