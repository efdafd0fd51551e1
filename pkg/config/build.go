package config

import (
	"fmt"

	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/constraint"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
	"github.com/VPRamon/virolai-sub000/pkg/resource"
)

// BuildResult is the runnable form of a problem definition.
type BuildResult struct {
	// Block holds every task and dependency edge.
	Block *block.SchedulingBlock

	// Resources is the resource pool, empty for single-resource problems.
	Resources []resource.Resource

	// Horizon is the scheduling horizon.
	Horizon interval.Interval

	// Scheduler holds the engine parameters with defaults applied.
	Scheduler SchedulerConfig
}

// Build turns a validated problem into scheduling inputs.
func (p *Problem) Build() (*BuildResult, error) {
	horizon, err := interval.New(p.Horizon.Start, p.Horizon.End)
	if err != nil {
		return nil, fmt.Errorf("horizon: %w", err)
	}

	b := block.New()
	for _, tc := range p.Tasks {
		task, err := buildTask(tc)
		if err != nil {
			return nil, err
		}
		if _, err := b.AddTaskWithID(tc.ID, task); err != nil {
			return nil, fmt.Errorf("task %q: %w", tc.ID, err)
		}
	}

	for _, dc := range p.Dependencies {
		kind, err := parseKind(dc.Kind)
		if err != nil {
			return nil, fmt.Errorf("dependency %s->%s: %w", dc.From, dc.To, err)
		}
		from, _ := b.NodeFor(dc.From)
		to, _ := b.NodeFor(dc.To)
		if err := b.AddConstrainedDependency(from, to, kind); err != nil {
			return nil, fmt.Errorf("dependency %s->%s: %w", dc.From, dc.To, err)
		}
	}

	resources := make([]resource.Resource, 0, len(p.Resources))
	for _, rc := range p.Resources {
		r, err := buildResource(rc)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}

	return &BuildResult{
		Block:     b,
		Resources: resources,
		Horizon:   horizon,
		Scheduler: p.Scheduler.withDefaults(),
	}, nil
}

func buildTask(tc TaskConfig) (*block.BasicTask, error) {
	name := tc.Name
	if name == "" {
		name = tc.ID
	}
	task := block.NewBasicTask(name, tc.Size).
		WithPriority(tc.Priority).
		WithGapAfter(tc.GapAfter)

	expr, err := buildConstraints(tc)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", tc.ID, err)
	}
	if expr != nil {
		task = task.WithConstraints(expr)
	}
	return task, nil
}

func buildConstraints(tc TaskConfig) (*constraint.Expr, error) {
	var parts []*constraint.Expr

	if len(tc.Windows) > 0 {
		windows, err := spanLeaves(tc.Windows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, constraint.Or(windows...))
	}
	if len(tc.ExcludeWindows) > 0 {
		excluded, err := spanLeaves(tc.ExcludeWindows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, constraint.Not(constraint.Or(excluded...)))
	}
	if tc.Resources != nil {
		filter := constraint.NewResourceFilter(tc.Resources.IDs, tc.Resources.Types)
		parts = append(parts, constraint.Leaf(filter))
	}
	if len(tc.Coalition) > 0 {
		parts = append(parts, constraint.Leaf(constraint.NewCoalition(tc.Coalition)))
	}

	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		return parts[0], nil
	default:
		return constraint.And(parts...), nil
	}
}

func spanLeaves(spans []Span) ([]*constraint.Expr, error) {
	leaves := make([]*constraint.Expr, 0, len(spans))
	for _, s := range spans {
		rng, err := interval.New(s.Start, s.End)
		if err != nil {
			return nil, fmt.Errorf("window [%g, %g]: %w", s.Start, s.End, err)
		}
		leaves = append(leaves, constraint.Leaf(constraint.NewWindow(rng)))
	}
	return leaves, nil
}

func buildResource(rc ResourceConfig) (resource.Resource, error) {
	name := rc.Name
	if name == "" {
		name = rc.ID
	}
	r := resource.NewInstrumentWithID(rc.ID, name, rc.Type)
	if len(rc.Windows) > 0 {
		windows, err := spanLeaves(rc.Windows)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", rc.ID, err)
		}
		r = r.WithConstraint(constraint.Or(windows...))
	}
	return r, nil
}

func parseKind(kind string) (constraint.DynKind, error) {
	switch kind {
	case "dependence":
		return constraint.Dependence, nil
	case "consecutive":
		return constraint.Consecutive, nil
	case "exclusive":
		return constraint.Exclusive, nil
	default:
		return 0, fmt.Errorf("unknown dependency kind %q", kind)
	}
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.Algorithm == "" {
		c.Algorithm = "est"
	}
	if c.EndangeredThreshold == 0 {
		c.EndangeredThreshold = 1
	}
	if c.Epsilon == 0 {
		c.Epsilon = 1e-9
	}
	return c
}
