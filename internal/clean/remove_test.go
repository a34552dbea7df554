package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEnv(t *testing.T, size int) string {
	t.Helper()
	venv := filepath.Join(t.TempDir(), ".venv")
	require.NoError(t, os.MkdirAll(venv, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(venv, "blob"), make([]byte, size), 0o644))
	return venv
}

func TestRemoveEnv(t *testing.T) {
	venv := makeEnv(t, 2048)

	res, err := RemoveEnv(venv, ".venv", false)

	require.NoError(t, err)
	assert.EqualValues(t, 2048, res.SizeFreed)
	assert.NoDirExists(t, venv)
}

func TestRemoveEnvDryRunKeepsDirectory(t *testing.T) {
	venv := makeEnv(t, 1024)

	res, err := RemoveEnv(venv, ".venv", true)

	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.EqualValues(t, 1024, res.SizeFreed)
	assert.DirExists(t, venv)
}

func TestRemoveEnvRefusesNonMarkerPath(t *testing.T) {
	dir := t.TempDir()

	_, err := RemoveEnv(dir, ".venv", false)

	assert.Error(t, err)
	assert.DirExists(t, dir)
}

func TestRemoveEnvMissingPath(t *testing.T) {
	_, err := RemoveEnv(filepath.Join(t.TempDir(), ".venv"), ".venv", false)
	assert.Error(t, err)
}
