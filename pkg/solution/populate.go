package solution

import (
	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Populate builds a solution space for every task in the given blocks.
//
// Tasks without a constraint tree receive the full scheduling window.
// Constrained tasks receive their computed intervals, filtered to those with
// enough room for the task's duration, so a task whose set is empty is
// provably unplaceable within the window.
func Populate(blocks []*block.SchedulingBlock, window interval.Interval) *Space {
	space := NewSpace()
	for _, b := range blocks {
		for _, entry := range b.Tasks() {
			space.Set(entry.ID, taskIntervals(entry.Task, entry.Task.Size(), window))
		}
	}
	return space
}

func taskIntervals(task block.Task, size float64, window interval.Interval) interval.Set {
	expr := task.Constraints()
	if expr == nil {
		return interval.NewSet(window)
	}
	var fitting interval.Set
	for _, iv := range expr.ComputeIntervals(window).Intervals() {
		if iv.Duration() >= size {
			fitting.Push(iv)
		}
	}
	return fitting
}

// CollectIntervals evaluates every constrained task in the blocks and
// returns all computed intervals in one flat slice, unfiltered, for
// analysis.
func CollectIntervals(blocks []*block.SchedulingBlock, window interval.Interval) []interval.Interval {
	var out []interval.Interval
	for _, b := range blocks {
		for _, entry := range b.Tasks() {
			if expr := entry.Task.Constraints(); expr != nil {
				out = append(out, expr.ComputeIntervals(window).Intervals()...)
			}
		}
	}
	return out
}
