package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/cache"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/history"
)

var cleanYes bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the uv cache",
	Long:  "Runs 'uv cache clean' after showing what it would free.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := paths()
		c := cache.New(p.CacheDir)

		a := c.Analyze()
		if a.Total == 0 {
			fmt.Println("No cache to clean.")
			return nil
		}

		fmt.Printf("Cache size: %s  (%s)\n", core.FormatSize(a.Total), p.CacheDir)

		if dryRun {
			res, _ := c.Clean(cmd.Context(), true)
			fmt.Printf("Dry run — would free %s\n", core.FormatSize(res.SizeFreed))
			return nil
		}

		if !cleanYes && !confirm("Clean the cache?") {
			fmt.Println("Cancelled.")
			return nil
		}

		res, err := c.Clean(cmd.Context(), false)
		if err != nil {
			return err
		}

		fmt.Printf("Freed %s", core.FormatSize(res.SizeFreed))
		if res.FilesRemoved > 0 {
			fmt.Printf(" (%d files removed)", res.FilesRemoved)
		}
		fmt.Println()

		logHistory(p.HistoryFile, history.Entry{
			Timestamp:    time.Now(),
			Kind:         "cache",
			Path:         p.CacheDir,
			SizeFreed:    res.SizeFreed,
			FilesRemoved: res.FilesRemoved,
		})
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without cleaning")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y"
}

// logHistory appends a history entry, best effort.
func logHistory(path string, e history.Entry) {
	if err := history.Append(path, e); err != nil && debug {
		fmt.Fprintf(os.Stderr, "warning: could not write history: %v\n", err)
	}
}
