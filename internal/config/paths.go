package config

import (
	"os"
	"path/filepath"
)

// Paths holds every filesystem location the tool reads or writes. All
// fields are explicit values resolved once at startup — no component does
// its own home-directory lookups.
type Paths struct {
	// BasePath is the directory searched for project environments.
	BasePath string

	// CacheDir is the shared uv package cache.
	CacheDir string

	// HistoryFile stores the JSON cleanup/monitor history.
	HistoryFile string
}

// Resolve builds the path set, using basePath when non-empty and the
// conventional defaults otherwise.
func Resolve(basePath string) Paths {
	home := userHome()
	if basePath == "" {
		basePath = filepath.Join(home, "code", "python")
	}
	return Paths{
		BasePath:    basePath,
		CacheDir:    cacheDir(home),
		HistoryFile: filepath.Join(home, ".uvmole_history.json"),
	}
}

// cacheDir resolves the uv cache location: UV_CACHE_DIR wins, then
// XDG_CACHE_HOME/uv, then ~/.cache/uv.
func cacheDir(home string) string {
	if dir := os.Getenv("UV_CACHE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "uv")
	}
	return filepath.Join(home, ".cache", "uv")
}

// userHome returns the home directory, falling back to the current
// directory only if it cannot be determined.
func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
