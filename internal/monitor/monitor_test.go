package monitor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
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

func newTestMonitor(t *testing.T) (*Monitor, string) {
	t.Helper()
	cache := t.TempDir()
	writeFile(t, filepath.Join(cache, "wheels", "a.whl"), 1000)
	return New(cache), t.TempDir()
}

func TestCaptureWithoutEnvironment(t *testing.T) {
	m, project := newTestMonitor(t)

	snap := m.Capture(project)

	assert.EqualValues(t, 1000, snap.CacheSize)
	assert.EqualValues(t, 0, snap.EnvSize)
	assert.Empty(t, snap.EnvPath)
	assert.EqualValues(t, 1000, snap.TotalSize)
	assert.Empty(t, snap.Packages)
}

func TestCaptureWithEnvironment(t *testing.T) {
	m, project := newTestMonitor(t)
	sp := filepath.Join(project, ".venv", "lib", "python3.12", "site-packages")
	writeFile(t, filepath.Join(sp, "requests", "api.py"), 500)

	snap := m.Capture(project)

	assert.Equal(t, filepath.Join(project, ".venv"), snap.EnvPath)
	assert.EqualValues(t, 500, snap.EnvSize)
	assert.EqualValues(t, 1500, snap.TotalSize)
	assert.Equal(t, []string{"requests"}, snap.Packages)
}

func TestDiffReportsNewPackages(t *testing.T) {
	before := Snapshot{CacheSize: 100, EnvSize: 50, TotalSize: 150, Packages: []string{"requests"}}
	after := Snapshot{CacheSize: 300, EnvSize: 250, TotalSize: 550, Packages: []string{"numpy", "requests"}}

	d := Diff(before, after)

	assert.EqualValues(t, 200, d.CacheDelta)
	assert.EqualValues(t, 200, d.EnvDelta)
	assert.EqualValues(t, 400, d.TotalDelta)
	assert.Equal(t, 1, d.PackageCountDelta)
	assert.Equal(t, []string{"numpy"}, d.NewPackages)
}

func TestDiffNoNewPackagesWhenCountShrinks(t *testing.T) {
	before := Snapshot{Packages: []string{"numpy", "requests"}}
	after := Snapshot{Packages: []string{"flask"}}

	d := Diff(before, after)

	assert.Equal(t, -1, d.PackageCountDelta)
	assert.Empty(t, d.NewPackages)
}

func TestRunAndDiffSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
	m, project := newTestMonitor(t)

	res, err := m.RunAndDiff(context.Background(), project,
		[]string{"sh", "-c", "mkdir -p .venv && head -c 2048 /dev/zero > .venv/blob"})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.EqualValues(t, 0, res.Before.EnvSize)
	assert.EqualValues(t, 2048, res.After.EnvSize)
	assert.EqualValues(t, 2048, res.Delta.EnvDelta)
}

func TestRunAndDiffNonZeroExitStillDiffs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
	m, project := newTestMonitor(t)

	res, err := m.RunAndDiff(context.Background(), project, []string{"sh", "-c", "exit 3"})

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.EqualValues(t, 0, res.Delta.TotalDelta)
}

func TestRunAndDiffInterrupted(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
	m, project := newTestMonitor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res, err := m.RunAndDiff(ctx, project, []string{"sleep", "10"})

	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Zero(t, res.After.Timestamp)
}

func TestRunAndDiffCommandNotFound(t *testing.T) {
	m, project := newTestMonitor(t)

	_, err := m.RunAndDiff(context.Background(), project, []string{"definitely-not-a-command-xyz"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInterrupted)
}

func TestRunAndDiffNoCommand(t *testing.T) {
	m, project := newTestMonitor(t)

	_, err := m.RunAndDiff(context.Background(), project, nil)
	assert.Error(t, err)
}
