package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/clean"
	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/history"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a specific virtual environment",
	Long:  "Deletes the given .venv directory after confirmation and records the freed space.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := paths()
		target := args[0]

		preview, err := clean.RemoveEnv(target, ".venv", true)
		if err != nil {
			return err
		}
		fmt.Printf("%s  (%s)\n", preview.Path, core.FormatSize(preview.SizeFreed))

		if dryRun {
			fmt.Println("Dry run — nothing removed.")
			return nil
		}
		if !removeYes && !confirm("Remove this environment?") {
			fmt.Println("Cancelled.")
			return nil
		}

		res, err := clean.RemoveEnv(target, ".venv", false)
		if err != nil {
			return err
		}

		fmt.Printf("Freed %s\n", core.FormatSize(res.SizeFreed))
		logHistory(p.HistoryFile, history.Entry{
			Timestamp: time.Now(),
			Kind:      "venv",
			Path:      res.Path,
			SizeFreed: res.SizeFreed,
		})
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without removing")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")
}
