package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/uvmole/uvmole/internal/fsutil"
)

// distInfoSuffix marks package metadata directories that are not packages.
const distInfoSuffix = ".dist-info"

// EnvEntry is one discovered virtual environment with its total size.
type EnvEntry struct {
	Path string
	Size int64
}

// PackageEntry is one installed package directory with its total size.
type PackageEntry struct {
	Name string
	Size int64
}

// Scanner discovers virtual environments under a base path and enumerates
// the packages installed inside one. Sizing runs through SizeFn so tests
// can substitute a fake probe.
type Scanner struct {
	// Marker is the environment directory name to look for (".venv").
	Marker string

	// SizeFn measures a directory tree; defaults to fsutil.DirSize.
	SizeFn func(string) int64

	// Concurrency bounds parallel size probes during discovery.
	Concurrency int
}

// NewScanner returns a Scanner with the conventional defaults.
func NewScanner() *Scanner {
	return &Scanner{
		Marker:      ".venv",
		SizeFn:      fsutil.DirSize,
		Concurrency: 4,
	}
}

func (s *Scanner) size(path string) int64 {
	if s.SizeFn != nil {
		return s.SizeFn(path)
	}
	return fsutil.DirSize(path)
}

// DiscoverEnvironments walks base for directories named Marker and returns
// them sorted by size, largest first (stable on ties). A missing base or an
// unreadable subtree yields an empty result, never an error.
func (s *Scanner) DiscoverEnvironments(base string) []EnvEntry {
	var paths []string

	_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && d.Name() == s.Marker {
			paths = append(paths, path)
			// Nothing of interest lives inside an environment.
			return filepath.SkipDir
		}
		return nil
	})

	if len(paths) == 0 {
		return nil
	}

	// Size probes are independent and side-effect free; run them in
	// parallel with bounded concurrency.
	envs := make([]EnvEntry, len(paths))
	limit := s.Concurrency
	if limit <= 0 {
		limit = 4
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			sem <- struct{}{}
			size := s.size(p)
			<-sem
			envs[i] = EnvEntry{Path: p, Size: size}
		}(i, p)
	}
	wg.Wait()

	sort.SliceStable(envs, func(i, j int) bool {
		return envs[i].Size > envs[j].Size
	})
	return envs
}

// EnumeratePackages lists the top-level package directories inside envPath's
// site-packages, sorted by size descending. Metadata directories (*.dist-info)
// and zero-size entries are excluded. Returns an empty result when no
// site-packages directory exists.
func (s *Scanner) EnumeratePackages(envPath string) []PackageEntry {
	sitePackages := s.sitePackagesDir(envPath)
	if sitePackages == "" {
		return nil
	}

	entries, err := os.ReadDir(sitePackages)
	if err != nil {
		return nil
	}

	var packages []PackageEntry
	for _, e := range entries {
		if !e.IsDir() || strings.HasSuffix(e.Name(), distInfoSuffix) {
			continue
		}
		size := s.size(filepath.Join(sitePackages, e.Name()))
		if size == 0 {
			continue
		}
		packages = append(packages, PackageEntry{Name: e.Name(), Size: size})
	}

	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].Size > packages[j].Size
	})
	return packages
}

// PackageNames returns the sorted names of all installed packages in envPath,
// including zero-size ones. Used for snapshot set comparisons where presence
// matters more than weight.
func (s *Scanner) PackageNames(envPath string) []string {
	sitePackages := s.sitePackagesDir(envPath)
	if sitePackages == "" {
		return nil
	}

	entries, err := os.ReadDir(sitePackages)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasSuffix(e.Name(), distInfoSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// sitePackagesDir locates the interpreter-version-specific package directory
// (lib/pythonX.Y/site-packages) inside an environment. When several
// interpreter versions are vendored the highest version wins — directory
// listing order is platform-dependent and would make results unstable.
func (s *Scanner) sitePackagesDir(envPath string) string {
	libDir := filepath.Join(envPath, "lib")
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return ""
	}

	best := ""
	bestMajor, bestMinor := -1, -1
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "python") {
			continue
		}
		sp := filepath.Join(libDir, e.Name(), "site-packages")
		if info, statErr := os.Stat(sp); statErr != nil || !info.IsDir() {
			continue
		}
		major, minor := parsePythonVersion(e.Name())
		if major > bestMajor || (major == bestMajor && minor > bestMinor) {
			bestMajor, bestMinor = major, minor
			best = sp
		}
	}
	return best
}

// parsePythonVersion extracts (major, minor) from a directory name like
// "python3.12". Unparseable names rank lowest.
func parsePythonVersion(name string) (int, int) {
	v := strings.TrimPrefix(name, "python")
	if v == "" {
		return 0, 0
	}
	parts := strings.SplitN(v, ".", 2)
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0
	}
	minor := 0
	if len(parts) == 2 {
		minor, _ = strconv.Atoi(parts[1])
	}
	return major, minor
}

// TotalSize sums the sizes of a discovered environment set.
func TotalSize(envs []EnvEntry) int64 {
	var total int64
	for _, e := range envs {
		total += e.Size
	}
	return total
}
