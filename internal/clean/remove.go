package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uvmole/uvmole/internal/fsutil"
)

// RemoveResult reports an environment removal.
type RemoveResult struct {
	Path      string
	SizeFreed int64
	DryRun    bool
}

// RemoveEnv deletes the environment directory at path. The final path
// element must equal marker — the one guard that makes it impossible to
// point this at a project directory and lose source code. In dryRun mode
// nothing is deleted and SizeFreed reports what removal would reclaim.
func RemoveEnv(path, marker string, dryRun bool) (RemoveResult, error) {
	if filepath.Base(path) != marker {
		return RemoveResult{}, fmt.Errorf("refusing to remove %q: not a %s directory", path, marker)
	}

	info, err := os.Stat(path)
	if err != nil {
		return RemoveResult{}, fmt.Errorf("environment does not exist: %s", path)
	}
	if !info.IsDir() {
		return RemoveResult{}, fmt.Errorf("not a directory: %s", path)
	}

	size := fsutil.DirSize(path)

	if dryRun {
		return RemoveResult{Path: path, SizeFreed: size, DryRun: true}, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return RemoveResult{}, fmt.Errorf("removing %s: %w", path, err)
	}
	return RemoveResult{Path: path, SizeFreed: size}, nil
}
