package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/uvmole/uvmole/internal/config"
	"github.com/uvmole/uvmole/internal/menu"
)

var (
	// Global flags
	basePath string
	debug    bool
	dryRun   bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// paths resolves the active path set from the global flags.
func paths() config.Paths {
	return config.Resolve(basePath)
}

var rootCmd = &cobra.Command{
	Use:   "uvmole",
	Short: "Monitor and reclaim disk space used by uv",
	Long: `uvmole — uv disk space manager.

Inventories the uv package cache and per-project virtual environments,
flags environments that look unused, and measures the disk impact of a
single uv command.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveMenu()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "Base path to search for virtual environments (default: ~/code/python)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractiveMenu launches the full-screen interactive main menu, falling
// back to the static analysis output when stdout is not a terminal.
func runInteractiveMenu() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		printStaticAnalysis(paths())
		return
	}

	p := tea.NewProgram(menu.New(paths()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
