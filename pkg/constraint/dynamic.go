package constraint

import (
	"fmt"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// DynKind identifies a dynamic constraint between two tasks. Dynamic
// constraints live on dependency edges and are re-evaluated against the
// current schedule every time the target task is considered for placement.
type DynKind int

const (
	// Dependence requires the referenced task to be placed before the
	// target becomes schedulable anywhere in the window.
	Dependence DynKind = iota

	// Consecutive requires the target to start no earlier than the end of
	// the referenced task's placement.
	Consecutive

	// Exclusive forbids the target while the referenced task is placed.
	Exclusive
)

func (k DynKind) String() string {
	switch k {
	case Dependence:
		return "Dependence"
	case Consecutive:
		return "Consecutive"
	case Exclusive:
		return "Exclusive"
	default:
		return fmt.Sprintf("DynKind(%d)", int(k))
	}
}

// PlacementLookup exposes the placements of an evolving schedule to dynamic
// constraint evaluation.
type PlacementLookup interface {
	// Placement returns the placed interval of a task and whether the task
	// is currently placed.
	Placement(taskID string) (interval.Interval, bool)
}

// Context is the scheduling state a dynamic constraint is evaluated against.
type Context struct {
	Placements PlacementLookup
}

// Evaluate computes the valid intervals the kind allows for a target task
// within window, given the placement of the referenced task refID.
func (k DynKind) Evaluate(window interval.Interval, ctx Context, refID string) interval.Set {
	placed, ok := ctx.Placements.Placement(refID)
	switch k {
	case Dependence:
		if ok {
			return interval.NewSet(window)
		}
		return interval.Set{}
	case Consecutive:
		if !ok {
			return interval.Set{}
		}
		start := window.Start
		if placed.End > start {
			start = placed.End
		}
		if start >= window.End {
			return interval.Set{}
		}
		return interval.NewSet(interval.Interval{Start: start, End: window.End})
	case Exclusive:
		if !ok {
			return interval.NewSet(window)
		}
		return interval.Set{}
	default:
		return interval.Set{}
	}
}
