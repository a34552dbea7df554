package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/core"
	"github.com/uvmole/uvmole/internal/history"
	"github.com/uvmole/uvmole/internal/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor -- <command> [args...]",
	Short: "Measure the disk impact of one command",
	Long: `Captures cache, environment, and package measurements before and after
running the given command (typically 'uv add <pkg>'), then reports the
difference. The command's output passes through untouched; only its exit
code and filesystem side effects are observed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := paths()
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		m := monitor.New(p.CacheDir)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Command: %s\n", strings.Join(args, " "))
		fmt.Printf("Working directory: %s\n\n", cwd)

		res, err := m.RunAndDiff(ctx, cwd, args)
		if errors.Is(err, monitor.ErrInterrupted) {
			fmt.Println("\nCommand interrupted — no measurements recorded.")
			return nil
		}
		if err != nil {
			return err
		}

		if res.ExitCode != 0 {
			fmt.Printf("\nWarning: command exited with code %d\n", res.ExitCode)
		}

		printSnapshot("before", res.Before)
		printSnapshot("after", res.After)

		d := res.Delta
		fmt.Println("\nchanges")
		fmt.Printf("  cache:    %s\n", core.FormatDelta(d.CacheDelta))
		fmt.Printf("  .venv:    %s\n", core.FormatDelta(d.EnvDelta))
		fmt.Printf("  total:    %s\n", core.FormatDelta(d.TotalDelta))
		fmt.Printf("  packages: %+d\n", d.PackageCountDelta)
		if len(d.NewPackages) > 0 {
			fmt.Println("\nnew packages:")
			for _, pkg := range d.NewPackages {
				fmt.Printf("  %s\n", pkg)
			}
		}

		logHistory(p.HistoryFile, history.Entry{
			Timestamp: time.Now(),
			Kind:      "monitor",
			Path:      cwd,
			Command:   strings.Join(args, " "),
			ExitCode:  res.ExitCode,
			Delta:     &d,
		})
		return nil
	},
}

func printSnapshot(label string, s monitor.Snapshot) {
	fmt.Printf("\n%s\n", label)
	fmt.Printf("  cache:    %12s\n", core.FormatSize(s.CacheSize))
	fmt.Printf("  .venv:    %12s\n", core.FormatSize(s.EnvSize))
	fmt.Printf("  total:    %12s\n", core.FormatSize(s.TotalSize))
	fmt.Printf("  packages: %12d\n", len(s.Packages))
}
