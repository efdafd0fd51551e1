package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VPRamon/virolai-sub000/pkg/config"
)

func newWatchCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "watch <problem.yaml>",
		Short: "Re-plan whenever the problem file changes",
		Long: `Watch a problem file and recompute the schedule on every change.

Each time the file is written, the problem is reloaded, validated, and
rescheduled. A file that fails validation is skipped and the previous
plan stays in effect.`,
		Example: `  # Watch and reprint the plan on change
  virolai watch problem.yaml

  # Keep a JSON plan file up to date
  virolai watch problem.yaml --out plan.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctx := cmd.Context()

			replan := func(*config.Problem) error {
				out, err := planProblem(ctx, path)
				if err != nil {
					return err
				}
				return emitPlan(out, outFile)
			}

			// Initial plan before the first change.
			if out, err := planProblem(ctx, path); err != nil {
				log.Error().Err(err).Msg("Initial plan failed")
			} else if err := emitPlan(out, outFile); err != nil {
				return err
			}

			watcher := config.NewWatcher(log.Logger)
			if err := watcher.Watch(ctx, path, replan); err != nil {
				return err
			}
			defer watcher.Stop()

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write plan JSON to file on each change")

	return cmd
}
