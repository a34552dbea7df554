package cache

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runUVCacheClean invokes the uv binary and returns its combined output.
func runUVCacheClean(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uv", "cache", "clean").CombinedOutput()
	if err != nil {
		return "", cleanError(err, out)
	}
	return string(out), nil
}

// cleanError translates an exec failure into a readable message, keeping a
// truncated slice of the command output for context.
func cleanError(err error, output []byte) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("cache clean timed out after %s", cleanTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(string(output))
		if len(msg) > 200 {
			msg = msg[:200] + "..."
		}
		if msg != "" {
			return fmt.Errorf("cache clean failed (exit code %d): %s", exitErr.ExitCode(), msg)
		}
		return fmt.Errorf("cache clean failed (exit code %d)", exitErr.ExitCode())
	}

	return fmt.Errorf("cache clean error: %w", err)
}
