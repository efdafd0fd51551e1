package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VPRamon/virolai-sub000/pkg/config"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <problem.yaml>",
		Short: "Validate a problem definition file",
		Long: `Validate a YAML problem definition without scheduling it.

This command checks:
  - YAML syntax and unknown fields
  - Required fields and value ranges
  - Task and resource ID uniqueness
  - Dependency references and cycle freedom`,
		Example: `  # Validate a problem file
  virolai validate problem.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := p.Build(); err != nil {
				return err
			}

			log.Info().
				Int("tasks", len(p.Tasks)).
				Int("dependencies", len(p.Dependencies)).
				Int("resources", len(p.Resources)).
				Msg("Problem is valid")
			fmt.Printf("%s: OK\n", args[0])
			return nil
		},
	}

	return cmd
}
