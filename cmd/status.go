package cmd

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/cache"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/scan"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize uv disk usage",
	Long:  "One-line totals for the cache and environments plus free space on the volumes that hold them.",
	Run: func(cmd *cobra.Command, args []string) {
		p := paths()

		cacheTotal := cache.New(p.CacheDir).Analyze().Total
		envs := scan.NewScanner().DiscoverEnvironments(p.BasePath)
		venvTotal := scan.TotalSize(envs)

		fmt.Printf("uv cache:      %12s  (%s)\n", core.FormatSize(cacheTotal), p.CacheDir)
		fmt.Printf("environments:  %12s  (%d under %s)\n", core.FormatSize(venvTotal), len(envs), p.BasePath)
		fmt.Printf("total:         %12s\n", core.FormatSize(cacheTotal+venvTotal))

		printVolumeUsage(p.CacheDir)
		if usageDiffers(p.CacheDir, p.BasePath) {
			printVolumeUsage(p.BasePath)
		}
	},
}

// printVolumeUsage shows free space on the volume holding path. Failure is
// ignored — the uv totals above are the load-bearing output.
func printVolumeUsage(path string) {
	u, err := disk.Usage(path)
	if err != nil {
		return
	}
	fmt.Printf("\nvolume %s\n", u.Path)
	fmt.Printf("  used:  %12s of %s (%.1f%%)\n",
		core.FormatSize(int64(u.Used)), core.FormatSize(int64(u.Total)), u.UsedPercent)
	fmt.Printf("  free:  %12s\n", core.FormatSize(int64(u.Free)))
}

// usageDiffers reports whether two paths live on different volumes.
func usageDiffers(a, b string) bool {
	ua, errA := disk.Usage(a)
	ub, errB := disk.Usage(b)
	if errA != nil || errB != nil {
		return false
	}
	return ua.Path != ub.Path
}
