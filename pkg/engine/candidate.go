package engine

import (
	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Candidate is an unplaced task together with its placement metrics for the
// current iteration. Metrics are recomputed by the scheduler whenever the
// remaining horizon changes.
type Candidate struct {
	// Task is the underlying task.
	Task block.Task

	// TaskID is the task's stable string ID.
	TaskID string

	est         float64
	hasEST      bool
	deadline    float64
	hasDeadline bool
	flexibility float64
}

// EST returns the earliest feasible start time. The second return is false
// when the task cannot be placed in the remaining horizon.
func (c *Candidate) EST() (float64, bool) {
	return c.est, c.hasEST
}

// Deadline returns the latest feasible start time, when one exists.
func (c *Candidate) Deadline() (float64, bool) {
	return c.deadline, c.hasDeadline
}

// Flexibility returns how many times over the task fits across its valid
// intervals in the remaining horizon.
func (c *Candidate) Flexibility() float64 {
	return c.flexibility
}

// IsImpossible reports whether the task has no feasible start.
func (c *Candidate) IsImpossible() bool {
	return !c.hasEST
}

// IsEndangered reports whether the task is placeable but has flexibility
// strictly below the threshold.
func (c *Candidate) IsEndangered(threshold float64) bool {
	return c.hasEST && c.flexibility < threshold
}

// IsFlexible reports whether the task is placeable with flexibility at or
// above the threshold.
func (c *Candidate) IsFlexible(threshold float64) bool {
	return c.hasEST && c.flexibility >= threshold
}

// Interval returns the placement interval at the task's EST. Only valid
// when the candidate is not impossible.
func (c *Candidate) Interval() interval.Interval {
	return interval.Interval{Start: c.est, End: c.est + c.Task.Size()}
}
