package engine

import (
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// computeEST returns the earliest start within horizon where a task of the
// given size fits in one of the windows. Windows must be canonical, so the
// scan stops at the first window starting past the horizon.
func computeEST(windows []interval.Interval, horizon interval.Interval, size float64) (float64, bool) {
	for _, w := range windows {
		if w.End <= horizon.Start {
			continue
		}
		if w.Start >= horizon.End {
			break
		}
		if common, ok := w.Intersection(horizon); ok && common.Duration() >= size {
			return common.Start, true
		}
	}
	return 0, false
}

// computeDeadline returns the latest start within horizon where the task
// still fits, scanning the windows from the back.
func computeDeadline(windows []interval.Interval, horizon interval.Interval, size float64) (float64, bool) {
	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if w.Start >= horizon.End {
			continue
		}
		if w.End <= horizon.Start {
			break
		}
		if common, ok := w.Intersection(horizon); ok && common.Duration() >= size {
			return common.End - size, true
		}
	}
	return 0, false
}

// computeFlexibility sums, over all windows the task fits in, how many times
// the task fits. A task that fits exactly once in one window has
// flexibility 1; higher values mean more placement slack.
func computeFlexibility(windows []interval.Interval, horizon interval.Interval, size float64) float64 {
	if size <= 0 {
		return 0
	}
	var flexibility float64
	for _, w := range windows {
		common, ok := w.Intersection(horizon)
		if !ok {
			continue
		}
		if d := common.Duration(); d >= size {
			flexibility += d / size
		}
	}
	return flexibility
}
