package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past cleanups and monitor runs",
	Run: func(cmd *cobra.Command, args []string) {
		entries := history.Load(paths().HistoryFile)
		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return
		}

		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		for _, e := range entries {
			ts := e.Timestamp.Format("2006-01-02 15:04")
			switch e.Kind {
			case "monitor":
				delta := "no delta"
				if e.Delta != nil {
					delta = core.FormatDelta(e.Delta.TotalDelta)
				}
				fmt.Printf("%s  monitor  %-40s %s\n", ts, e.Command, delta)
			default:
				fmt.Printf("%s  %-7s  %-40s freed %s\n", ts, e.Kind, e.Path, core.FormatSize(e.SizeFreed))
			}
		}
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
}
