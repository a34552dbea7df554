package gitutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// gitTimeout bounds the git subprocess; a hung git must not stall a scan.
const gitTimeout = 10 * time.Second

// HasRepo reports whether path contains a git repository marker.
func HasRepo(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// LastCommitEpoch returns the Unix epoch of the most recent commit in the
// repository at path, or 0 when there is no repository, no commits, or git
// is unavailable. Failure is absorbed: activity scoring treats 0 as unknown.
func LastCommitEpoch(path string) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "-C", path, "log", "-1", "--format=%ct").Output()
	if err != nil {
		return 0
	}

	epoch, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0
	}
	return epoch
}
