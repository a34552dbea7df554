package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/cache"
	"github.com/uvmole/uvmole/internal/config"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/scan"
)

var analyzeTop int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show detailed disk usage",
	Long:  "Breakdown of the uv cache, every discovered virtual environment, and the largest packages in the biggest one.",
	Run: func(cmd *cobra.Command, args []string) {
		printStaticAnalysis(paths())
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 20, "Number of packages to show for the largest environment")
}

// printStaticAnalysis renders the full analysis as plain text. Shared with
// the non-TTY fallback of the interactive menu.
func printStaticAnalysis(p config.Paths) {
	a := cache.New(p.CacheDir).Analyze()

	fmt.Println("uv cache")
	if a.Total == 0 {
		fmt.Println("  no cache found at " + p.CacheDir)
	} else {
		fmt.Printf("  total: %s  (%s)\n", core.FormatSize(a.Total), p.CacheDir)
		for _, sub := range a.Subdirs {
			fmt.Printf("  %-24s %12s\n", sub.Name, core.FormatSize(sub.Size))
		}
	}

	scanner := scan.NewScanner()
	envs := scanner.DiscoverEnvironments(p.BasePath)

	fmt.Println()
	fmt.Println("virtual environments")
	if len(envs) == 0 {
		fmt.Println("  none found under " + p.BasePath)
		return
	}

	fmt.Printf("  total: %s  (%d found)\n", core.FormatSize(scan.TotalSize(envs)), len(envs))
	for _, env := range envs {
		fmt.Printf("  %-60s %12s\n", env.Path, core.FormatSize(env.Size))
	}

	top := analyzeTop
	if top <= 0 {
		top = 20
	}
	packages := scanner.EnumeratePackages(envs[0].Path)
	if len(packages) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("largest packages in %s\n", envs[0].Path)
	for i, pkg := range packages {
		if i >= top {
			fmt.Printf("  … and %d more\n", len(packages)-top)
			break
		}
		fmt.Printf("  %-40s %12s\n", pkg.Name, core.FormatSize(pkg.Size))
	}
}
