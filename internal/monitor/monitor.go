package monitor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/uvmole/uvmole/internal/fsutil"
	"github.com/uvmole/uvmole/internal/scan"
)

// ErrInterrupted reports that the monitored command was cut short by a
// cancellation signal. No after-snapshot or delta exists in that case —
// a partial diff would attribute unfinished work as a real change.
var ErrInterrupted = errors.New("monitored command interrupted")

// Snapshot is a point-in-time measurement of the cache, one project's
// environment, and its installed package set. Immutable once captured.
type Snapshot struct {
	Timestamp int64    `json:"timestamp"`
	CacheSize int64    `json:"cache_size"`
	EnvSize   int64    `json:"env_size"`
	EnvPath   string   `json:"env_path,omitempty"`
	TotalSize int64    `json:"total_size"`
	Packages  []string `json:"packages"`
}

// Delta is the field-wise difference between two snapshots of the same
// project root.
type Delta struct {
	CacheDelta        int64    `json:"cache_delta"`
	EnvDelta          int64    `json:"env_delta"`
	TotalDelta        int64    `json:"total_delta"`
	PackageCountDelta int      `json:"package_count_delta"`
	NewPackages       []string `json:"new_packages,omitempty"`
}

// Result bundles the outcome of a monitored command run.
type Result struct {
	Before   Snapshot
	After    Snapshot
	Delta    Delta
	ExitCode int
}

// Monitor captures before/after snapshots around an external command and
// attributes the space impact to it.
type Monitor struct {
	// CacheDir is the shared package cache to measure.
	CacheDir string

	// Scanner enumerates installed packages inside the environment.
	Scanner *scan.Scanner

	// SizeFn measures directories; defaults to fsutil.DirSize.
	SizeFn func(string) int64
}

// New returns a Monitor over the given cache directory.
func New(cacheDir string) *Monitor {
	return &Monitor{
		CacheDir: cacheDir,
		Scanner:  scan.NewScanner(),
		SizeFn:   fsutil.DirSize,
	}
}

func (m *Monitor) size(path string) int64 {
	if m.SizeFn != nil {
		return m.SizeFn(path)
	}
	return fsutil.DirSize(path)
}

// Capture measures the cache and the project's own environment. A missing
// cache or environment contributes zero; the snapshot is always produced.
func (m *Monitor) Capture(projectRoot string) Snapshot {
	snap := Snapshot{Timestamp: time.Now().Unix()}

	snap.CacheSize = m.size(m.CacheDir)

	envPath := filepath.Join(projectRoot, m.Scanner.Marker)
	if info, err := os.Stat(envPath); err == nil && info.IsDir() {
		snap.EnvPath = envPath
		snap.EnvSize = m.size(envPath)
		snap.Packages = m.Scanner.PackageNames(envPath)
	}

	snap.TotalSize = snap.CacheSize + snap.EnvSize
	return snap
}

// Diff computes after − before. NewPackages is the set difference of
// package names, empty unless the package count grew.
func Diff(before, after Snapshot) Delta {
	d := Delta{
		CacheDelta:        after.CacheSize - before.CacheSize,
		EnvDelta:          after.EnvSize - before.EnvSize,
		TotalDelta:        after.TotalSize - before.TotalSize,
		PackageCountDelta: len(after.Packages) - len(before.Packages),
	}

	if d.PackageCountDelta > 0 {
		known := make(map[string]bool, len(before.Packages))
		for _, p := range before.Packages {
			known[p] = true
		}
		for _, p := range after.Packages {
			if !known[p] {
				d.NewPackages = append(d.NewPackages, p)
			}
		}
		sort.Strings(d.NewPackages)
	}

	return d
}

// RunAndDiff captures a before-snapshot, runs args as an external command
// with inherited standard streams, captures an after-snapshot, and diffs
// the two. A non-zero exit code is recorded in the result, not returned as
// an error — the space impact of a failed command is still worth measuring.
// If the command is interrupted (context cancellation or a terminating
// signal), ErrInterrupted is returned and no after-snapshot is taken.
func (m *Monitor) RunAndDiff(ctx context.Context, projectRoot string, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("no command given")
	}

	res := Result{Before: m.Capture(projectRoot)}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = projectRoot
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return Result{}, ErrInterrupted
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran (not found, not executable).
			return Result{}, err
		}
		if exitErr.ExitCode() < 0 {
			// Killed by a signal outside our context.
			return Result{}, ErrInterrupted
		}
		res.ExitCode = exitErr.ExitCode()
	}

	res.After = m.Capture(projectRoot)
	res.Delta = Diff(res.Before, res.After)
	return res, nil
}
