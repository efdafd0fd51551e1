package resource

import (
	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/constraint"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
	"github.com/VPRamon/virolai-sub000/pkg/solution"
)

// Eligible reports whether the task may run on the resource. A task is
// eligible when every resource filter in its constraint tree matches the
// resource; tasks without filters run anywhere.
func Eligible(task block.Task, r Resource) bool {
	expr := task.Constraints()
	if expr == nil {
		return true
	}
	eligible := true
	expr.VisitLeaves(func(c constraint.Constraint) {
		if filter, ok := c.(constraint.ResourceFilter); ok {
			if !filter.Matches(r.ID(), r.Type()) {
				eligible = false
			}
		}
	})
	return eligible
}

// CountByType tallies the available resources per type label.
func CountByType(resources []Resource) map[string]int {
	counts := make(map[string]int, len(resources))
	for _, r := range resources {
		counts[r.Type()]++
	}
	return counts
}

// CoalitionSatisfied reports whether the resource pool covers every
// coalition requirement in the task's constraint tree.
func CoalitionSatisfied(task block.Task, resources []Resource) bool {
	expr := task.Constraints()
	if expr == nil {
		return true
	}
	available := CountByType(resources)
	satisfied := true
	expr.VisitLeaves(func(c constraint.Constraint) {
		if coalition, ok := c.(constraint.Coalition); ok {
			if !coalition.IsSatisfied(available) {
				satisfied = false
			}
		}
	})
	return satisfied
}

// SpacesByResource builds one solution space per resource. Each space holds
// the eligible tasks' valid intervals intersected with the resource's
// availability; ineligible tasks are left out of that resource's space.
func SpacesByResource(resources []Resource, blocks []*block.SchedulingBlock, horizon interval.Interval) map[string]*solution.Space {
	base := solution.Populate(blocks, horizon)
	spaces := make(map[string]*solution.Space, len(resources))
	for _, r := range resources {
		available := Availability(r, horizon)
		space := solution.NewSpace()
		for _, b := range blocks {
			for _, entry := range b.Tasks() {
				if !Eligible(entry.Task, r) {
					continue
				}
				set, ok := base.Intervals(entry.ID)
				if !ok {
					continue
				}
				space.Set(entry.ID, set.Intersect(available))
			}
		}
		spaces[r.ID()] = space
	}
	return spaces
}
