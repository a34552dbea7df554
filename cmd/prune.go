package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/classify"
	"github.com/uvmole/uvmole/internal/clean"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/history"
	"github.com/uvmole/uvmole/internal/scan"
)

var (
	pruneMinDays  float64
	pruneMaxSmall int64
	pruneYes      bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Find and remove unused virtual environments",
	Long: `Scores every environment under the base path with inactivity, version
control, and source-file signals, then removes the flagged ones after
confirmation. Smallest candidates are listed first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := paths()
		scanner := scan.NewScanner()

		th := classify.DefaultThresholds()
		th.MinDaysInactive = pruneMinDays
		th.MaxSmallSizeMiB = pruneMaxSmall

		candidates := classify.NewClassifier(scanner, th).Classify(p.BasePath)
		if len(candidates) == 0 {
			fmt.Println("No unused virtual environments found.")
			return nil
		}

		var total int64
		fmt.Printf("Found %d candidate(s):\n\n", len(candidates))
		for i, c := range candidates {
			total += c.Size
			fmt.Printf("%d. %s\n", i+1, c.EnvPath)
			fmt.Printf("   size: %s   last activity: %s   source files: %d\n",
				core.FormatSize(c.Size), core.FormatDays(c.DaysSinceActivity), c.SourceFiles)
			fmt.Printf("   reasons: %s\n\n", strings.Join(c.Reasons, ", "))
		}
		fmt.Printf("Potential savings: %s\n", core.FormatSize(total))

		if dryRun {
			fmt.Println("Dry run — nothing removed.")
			return nil
		}
		if !pruneYes && !confirm("Remove all listed environments?") {
			fmt.Println("Cancelled.")
			return nil
		}

		var freed int64
		for _, c := range candidates {
			res, err := clean.RemoveEnv(c.EnvPath, scanner.Marker, false)
			if err != nil {
				fmt.Printf("skipped %s: %v\n", c.EnvPath, err)
				continue
			}
			freed += res.SizeFreed
			logHistory(p.HistoryFile, history.Entry{
				Timestamp: time.Now(),
				Kind:      "venv",
				Path:      res.Path,
				SizeFreed: res.SizeFreed,
			})
		}
		fmt.Printf("Freed %s\n", core.FormatSize(freed))
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&dryRun, "dry-run", false, "List candidates without removing")
	pruneCmd.Flags().Float64Var(&pruneMinDays, "min-days", 30, "Minimum days of inactivity")
	pruneCmd.Flags().Int64Var(&pruneMaxSmall, "max-small-size", 500, "Size ceiling in MiB for the no-VCS signal")
	pruneCmd.Flags().BoolVarP(&pruneYes, "yes", "y", false, "Skip the confirmation prompt")
}
