package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "virolai",
		Short: "Virolai - Constraint-Based Task Scheduler",
		Long: `Virolai schedules tasks onto a shared timeline under declarative
constraints: feasibility windows, inter-task dependencies, resource
eligibility, and coalition requirements.

Features:
  - Problem definitions in YAML
  - Composable constraint trees (and/or/not over windows and filters)
  - Dynamic constraints between tasks (dependence, consecutive, exclusive)
  - Greedy earliest-start-time scheduling with endangered-task priority
  - Per-resource scheduling for multi-instrument pools`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}
