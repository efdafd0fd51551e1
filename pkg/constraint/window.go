package constraint

import (
	"fmt"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Window restricts placement to a fixed time range. Evaluation intersects
// the window with the scheduling range, yielding the empty set when the two
// do not overlap.
type Window struct {
	Range interval.Interval
}

// NewWindow builds a window constraint over the given range.
func NewWindow(rng interval.Interval) Window {
	return Window{Range: rng}
}

// ComputeIntervals returns the overlap between the window and the scheduling
// range.
func (w Window) ComputeIntervals(window interval.Interval) interval.Set {
	if common, ok := w.Range.Intersection(window); ok {
		return interval.NewSet(common)
	}
	return interval.Set{}
}

func (w Window) String() string {
	return fmt.Sprintf("Window%s", w.Range)
}
