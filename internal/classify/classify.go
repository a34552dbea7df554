package classify

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/uvmole/uvmole/internal/fsutil"
	"github.com/uvmole/uvmole/internal/gitutil"
	"github.com/uvmole/uvmole/internal/scan"
)

const mib = 1024 * 1024

// unknownActivityDays is the sentinel age for projects whose last activity
// cannot be determined. Treated as "very old".
const unknownActivityDays = 999

// Thresholds is the tunable policy surface of the unused-environment
// heuristic. Zero values are replaced by the defaults at evaluation time,
// so a partially filled struct behaves sensibly.
type Thresholds struct {
	// MinDaysInactive: projects idle longer than this trigger the
	// inactivity signal.
	MinDaysInactive float64

	// MaxSmallSizeMiB: environments below this size trigger the
	// no-version-control signal when the project has no repository.
	MaxSmallSizeMiB int64

	// MinSizeFloorMiB: environments smaller than this are never
	// candidates at all.
	MinSizeFloorMiB int64

	// SparseFileThreshold / SparseSizeCeilingMiB: fewer source files than
	// the threshold, in an environment below the ceiling, triggers the
	// sparse-source signal.
	SparseFileThreshold  int
	SparseSizeCeilingMiB int64
}

// DefaultThresholds returns the stock heuristic policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDaysInactive:      30,
		MaxSmallSizeMiB:      500,
		MinSizeFloorMiB:      1,
		SparseFileThreshold:  5,
		SparseSizeCeilingMiB: 200,
	}
}

// Candidate is an environment flagged as likely safe to remove. Reasons is
// never empty: every candidate carries at least one triggered signal.
type Candidate struct {
	EnvPath           string
	ProjectPath       string
	Size              int64
	DaysSinceActivity float64
	HasVCS            bool
	SourceFiles       int
	Reasons           []string
}

// ─── Capability interfaces ───────────────────────────────────────────────────

// EnvLister yields the environments to evaluate. *scan.Scanner satisfies it.
type EnvLister interface {
	DiscoverEnvironments(base string) []scan.EnvEntry
}

// ActivityQuery reports project-activity signals for a directory tree.
type ActivityQuery interface {
	NewestMTime(path string) int64
	CountSourceFiles(path string) int
}

// VcsQuery reports version-control signals for a project root.
type VcsQuery interface {
	HasRepo(path string) bool
	LastCommitEpoch(path string) int64
}

// fsActivity is the native-filesystem ActivityQuery.
type fsActivity struct {
	sourceExt string
}

func (a fsActivity) NewestMTime(path string) int64 { return fsutil.NewestMTime(path) }
func (a fsActivity) CountSourceFiles(path string) int {
	return fsutil.CountFilesWithExt(path, a.sourceExt)
}

// gitVcs is the git-backed VcsQuery.
type gitVcs struct{}

func (gitVcs) HasRepo(path string) bool { return gitutil.HasRepo(path) }

func (gitVcs) LastCommitEpoch(path string) int64 { return gitutil.LastCommitEpoch(path) }

// ─── Classifier ──────────────────────────────────────────────────────────────

// Classifier scores discovered environments as removal candidates. It never
// deletes anything; it only ranks and annotates for a caller to confirm.
type Classifier struct {
	Envs       EnvLister
	Activity   ActivityQuery
	VCS        VcsQuery
	Thresholds Thresholds

	// Now allows tests to pin the clock.
	Now func() time.Time
}

// NewClassifier builds a Classifier with native filesystem and git probes.
func NewClassifier(scanner *scan.Scanner, th Thresholds) *Classifier {
	return &Classifier{
		Envs:       scanner,
		Activity:   fsActivity{sourceExt: ".py"},
		VCS:        gitVcs{},
		Thresholds: th,
		Now:        time.Now,
	}
}

// Classify evaluates every environment under base and returns the flagged
// candidates sorted ascending by size — the lowest-risk removals first.
func (c *Classifier) Classify(base string) []Candidate {
	th := c.Thresholds
	def := DefaultThresholds()
	if th.MinDaysInactive <= 0 {
		th.MinDaysInactive = def.MinDaysInactive
	}
	if th.MaxSmallSizeMiB <= 0 {
		th.MaxSmallSizeMiB = def.MaxSmallSizeMiB
	}
	if th.MinSizeFloorMiB <= 0 {
		th.MinSizeFloorMiB = def.MinSizeFloorMiB
	}
	if th.SparseFileThreshold <= 0 {
		th.SparseFileThreshold = def.SparseFileThreshold
	}
	if th.SparseSizeCeilingMiB <= 0 {
		th.SparseSizeCeilingMiB = def.SparseSizeCeilingMiB
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	var candidates []Candidate
	for _, env := range c.Envs.DiscoverEnvironments(base) {
		// Sub-floor environments are noise, never candidates.
		if env.Size < th.MinSizeFloorMiB*mib {
			continue
		}

		project := filepath.Dir(env.Path)

		lastModified := c.Activity.NewestMTime(project)
		hasVCS := c.VCS.HasRepo(project)
		var lastCommit int64
		if hasVCS {
			lastCommit = c.VCS.LastCommitEpoch(project)
		}
		sourceFiles := c.Activity.CountSourceFiles(project)

		lastActivity := lastModified
		if lastCommit > lastActivity {
			lastActivity = lastCommit
		}
		days := float64(unknownActivityDays)
		if lastActivity > 0 {
			days = now().Sub(time.Unix(lastActivity, 0)).Hours() / 24
		}

		var reasons []string
		if days > th.MinDaysInactive {
			reasons = append(reasons, fmt.Sprintf("inactive for %.0f days", days))
		}
		if !hasVCS && env.Size < th.MaxSmallSizeMiB*mib {
			reasons = append(reasons, "no version control and relatively small")
		}
		if sourceFiles < th.SparseFileThreshold && env.Size < th.SparseSizeCeilingMiB*mib {
			reasons = append(reasons, "very few source files")
		}

		if len(reasons) == 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			EnvPath:           env.Path,
			ProjectPath:       project,
			Size:              env.Size,
			DaysSinceActivity: days,
			HasVCS:            hasVCS,
			SourceFiles:       sourceFiles,
			Reasons:           reasons,
		})
	}

	// Smallest first — safest to remove.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Size < candidates[j].Size
	})
	return candidates
}
