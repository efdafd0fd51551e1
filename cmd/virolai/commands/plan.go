package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/config"
	"github.com/VPRamon/virolai-sub000/pkg/engine"
	"github.com/VPRamon/virolai-sub000/pkg/resource"
	"github.com/VPRamon/virolai-sub000/pkg/schedule"
	"github.com/VPRamon/virolai-sub000/pkg/solution"
	"github.com/VPRamon/virolai-sub000/pkg/telemetry"
)

// PlacementOutput is one placed task in the plan output.
type PlacementOutput struct {
	TaskID string  `json:"task_id"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// ResourcePlan is the schedule computed for one resource.
type ResourcePlan struct {
	Resource   string            `json:"resource"`
	Placements []PlacementOutput `json:"placements"`
	Unplaced   []string          `json:"unplaced,omitempty"`
}

// PlanOutput is the full plan for a problem.
type PlanOutput struct {
	Problem string         `json:"problem,omitempty"`
	Horizon [2]float64     `json:"horizon"`
	Plans   []ResourcePlan `json:"plans"`
}

func newPlanCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "plan <problem.yaml>",
		Short: "Compute a schedule for a problem definition",
		Long: `Compute a conflict-free schedule for a YAML problem definition.

The plan:
  - Loads and validates the problem file
  - Builds the scheduling block and resource pool
  - Runs the earliest-start-time scheduler per resource
  - Prints the placements, or writes them as JSON with --out`,
		Example: `  # Schedule a problem and print the plan
  virolai plan problem.yaml

  # Write the plan as JSON
  virolai plan problem.yaml --out plan.json

  # Print the plan as JSON on stdout
  virolai plan problem.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := planProblem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emitPlan(out, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write plan JSON to file")

	return cmd
}

func planProblem(ctx context.Context, path string) (*PlanOutput, error) {
	p, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	built, err := p.Build()
	if err != nil {
		return nil, err
	}

	cfg := telemetry.DefaultConfig()
	if verbose {
		cfg = telemetry.DevelopmentConfig()
	}
	tel, err := telemetry.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	runID := uuid.NewString()
	_, span := tel.Tracer.StartRun(ctx, runID, built.Block.Len())
	defer span.End()

	log.Info().
		Str("run_id", runID).
		Int("tasks", built.Block.Len()).
		Int("resources", len(built.Resources)).
		Str("horizon", built.Horizon.String()).
		Msg("Scheduling problem")

	alg := engine.NewESTScheduler(
		built.Scheduler.EndangeredThreshold,
		engine.WithEpsilon(built.Scheduler.Epsilon),
		engine.WithLogger(log.Logger),
		engine.WithMetrics(tel.Metrics),
	)
	blocks := []*block.SchedulingBlock{built.Block}

	out := &PlanOutput{
		Problem: p.Name,
		Horizon: [2]float64{built.Horizon.Start, built.Horizon.End},
	}

	if len(built.Resources) == 0 {
		space := solution.Populate(blocks, built.Horizon)
		sched := alg.Schedule(blocks, space, built.Horizon)
		out.Plans = append(out.Plans, resourcePlan("default", sched, built.Block))
	} else {
		spaces := resource.SpacesByResource(built.Resources, blocks, built.Horizon)
		schedules := engine.ScheduleByResource(alg, blocks, spaces, built.Horizon)
		for _, r := range built.Resources {
			out.Plans = append(out.Plans, resourcePlan(r.ID(), schedules[r.ID()], built.Block))
		}
	}

	placed := 0
	for _, plan := range out.Plans {
		placed += len(plan.Placements)
	}
	tel.Events.Publish(telemetry.Event{
		Type:    telemetry.EventTypeRunCompleted,
		RunID:   runID,
		Message: "scheduling run completed",
		Data:    map[string]interface{}{"placed": placed, "plans": len(out.Plans)},
	})

	return out, nil
}

func resourcePlan(resourceID string, sched *schedule.Schedule, b *block.SchedulingBlock) ResourcePlan {
	plan := ResourcePlan{Resource: resourceID}
	for _, entry := range sched.Entries() {
		plan.Placements = append(plan.Placements, PlacementOutput{
			TaskID: entry.TaskID,
			Start:  entry.Interval.Start,
			End:    entry.Interval.End,
		})
	}
	for _, entry := range b.Tasks() {
		if !sched.Contains(entry.ID) {
			plan.Unplaced = append(plan.Unplaced, entry.ID)
		}
	}
	sort.Strings(plan.Unplaced)
	return plan
}

func emitPlan(out *PlanOutput, outFile string) error {
	if outFile != "" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}
		log.Info().Str("out", outFile).Msg("Plan written")
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printPlan(out)
	return nil
}

func printPlan(out *PlanOutput) {
	if out.Problem != "" {
		fmt.Printf("Problem: %s\n", out.Problem)
	}
	fmt.Printf("Horizon: [%g, %g]\n", out.Horizon[0], out.Horizon[1])
	for _, plan := range out.Plans {
		fmt.Printf("\nResource %s:\n", plan.Resource)
		if len(plan.Placements) == 0 {
			fmt.Println("  (no placements)")
		}
		for _, p := range plan.Placements {
			fmt.Printf("  %-20s [%g, %g]\n", p.TaskID, p.Start, p.End)
		}
		if len(plan.Unplaced) > 0 {
			fmt.Printf("  unplaced: %v\n", plan.Unplaced)
		}
	}
}
