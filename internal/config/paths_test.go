package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExplicitBasePath(t *testing.T) {
	p := Resolve("/srv/projects")
	assert.Equal(t, "/srv/projects", p.BasePath)
}

func TestResolveDefaultBasePath(t *testing.T) {
	p := Resolve("")
	assert.Equal(t, filepath.Join(userHome(), "code", "python"), p.BasePath)
}

func TestCacheDirEnvOverride(t *testing.T) {
	t.Setenv("UV_CACHE_DIR", "/tmp/uv-cache")
	assert.Equal(t, "/tmp/uv-cache", Resolve("").CacheDir)
}

func TestCacheDirXDGFallback(t *testing.T) {
	t.Setenv("UV_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "uv"), Resolve("").CacheDir)
}

func TestCacheDirHomeDefault(t *testing.T) {
	t.Setenv("UV_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", "")
	assert.Equal(t, filepath.Join(userHome(), ".cache", "uv"), Resolve("").CacheDir)
}
