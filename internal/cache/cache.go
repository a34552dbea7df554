package cache

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/uvmole/uvmole/internal/fsutil"
)

// cleanTimeout bounds the external cache-clean command.
const cleanTimeout = 120 * time.Second

// removedPattern extracts the file count from uv's "Removed 88974 files" output.
var removedPattern = regexp.MustCompile(`Removed (\d+) files`)

// SubdirEntry is one top-level cache subdirectory with its size.
type SubdirEntry struct {
	Name string
	Size int64
}

// Analysis is a breakdown of the shared package cache.
type Analysis struct {
	Total   int64
	Subdirs []SubdirEntry
}

// CleanResult reports the outcome of a cache cleanup.
type CleanResult struct {
	SizeFreed    int64
	FilesRemoved int
	DryRun       bool
}

// Cache measures and cleans the shared uv package cache.
type Cache struct {
	// Dir is the cache location.
	Dir string

	// SizeFn measures directories; defaults to fsutil.DirSize.
	SizeFn func(string) int64

	// runner invokes the external cleanup command; swapped in tests.
	runner func(ctx context.Context) (string, error)
}

// New returns a Cache over dir.
func New(dir string) *Cache {
	return &Cache{Dir: dir, SizeFn: fsutil.DirSize, runner: runUVCacheClean}
}

func (c *Cache) size(path string) int64 {
	if c.SizeFn != nil {
		return c.SizeFn(path)
	}
	return fsutil.DirSize(path)
}

// Analyze measures the cache and its top-level subdirectories, sorted by
// size descending. A missing cache yields a zero analysis, not an error.
func (c *Cache) Analyze() Analysis {
	a := Analysis{Total: c.size(c.Dir)}
	if a.Total == 0 {
		return a
	}

	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return a
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		a.Subdirs = append(a.Subdirs, SubdirEntry{
			Name: e.Name(),
			Size: c.size(filepath.Join(c.Dir, e.Name())),
		})
	}
	sort.SliceStable(a.Subdirs, func(i, j int) bool {
		return a.Subdirs[i].Size > a.Subdirs[j].Size
	})
	return a
}

// Clean runs `uv cache clean`. In dryRun mode it only reports the size the
// cleanup would free. SizeFreed is the pre-clean cache size.
func (c *Cache) Clean(ctx context.Context, dryRun bool) (CleanResult, error) {
	before := c.size(c.Dir)

	if dryRun {
		return CleanResult{SizeFreed: before, DryRun: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cleanTimeout)
	defer cancel()

	out, err := c.runner(ctx)
	if err != nil {
		return CleanResult{}, err
	}

	res := CleanResult{SizeFreed: before}
	if m := removedPattern.FindStringSubmatch(out); m != nil {
		res.FilesRemoved, _ = strconv.Atoi(m[1])
	}
	return res, nil
}
