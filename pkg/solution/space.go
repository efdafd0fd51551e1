package solution

import (
	"math"
	"sort"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Space maps task IDs to the canonical interval sets where each task may be
// placed.
type Space struct {
	byTask map[string]interval.Set
}

// NewSpace creates an empty solution space.
func NewSpace() *Space {
	return &Space{byTask: make(map[string]interval.Set)}
}

// Set replaces the intervals of a task.
func (s *Space) Set(taskID string, set interval.Set) {
	s.byTask[taskID] = set
}

// Add merges one interval into a task's set.
func (s *Space) Add(taskID string, iv interval.Interval) {
	set := s.byTask[taskID]
	set.Push(iv)
	s.byTask[taskID] = set
}

// Intervals returns the interval set of a task. The second return is false
// for tasks the space does not know.
func (s *Space) Intervals(taskID string) (interval.Set, bool) {
	set, ok := s.byTask[taskID]
	return set, ok
}

// Len returns the number of tasks in the space.
func (s *Space) Len() int {
	return len(s.byTask)
}

// TaskIDs returns all task IDs in sorted order.
func (s *Space) TaskIDs() []string {
	ids := make([]string, 0, len(s.byTask))
	for id := range s.byTask {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ContainsPositionFor reports whether pos is a valid position for a task.
func (s *Space) ContainsPositionFor(taskID string, pos float64) bool {
	set, ok := s.byTask[taskID]
	return ok && set.ContainsPosition(pos)
}

// ContainsPosition reports whether pos is valid for any task.
func (s *Space) ContainsPosition(pos float64) bool {
	for _, set := range s.byTask {
		if set.ContainsPosition(pos) {
			return true
		}
	}
	return false
}

// FindIntervalContainingFor returns the task's interval containing pos.
func (s *Space) FindIntervalContainingFor(taskID string, pos float64) (interval.Interval, bool) {
	set, ok := s.byTask[taskID]
	if !ok {
		return interval.Interval{}, false
	}
	return findContaining(set, pos)
}

// FindIntervalContaining returns, per task, the interval containing pos.
// Tasks without such an interval are omitted.
func (s *Space) FindIntervalContaining(pos float64) map[string]interval.Interval {
	out := make(map[string]interval.Interval)
	for id, set := range s.byTask {
		if iv, ok := findContaining(set, pos); ok {
			out[id] = iv
		}
	}
	return out
}

func findContaining(set interval.Set, pos float64) (interval.Interval, bool) {
	items := set.Intervals()
	i := sort.Search(len(items), func(i int) bool {
		return items[i].End >= pos
	})
	if i < len(items) && items[i].Contains(pos) {
		return items[i], true
	}
	return interval.Interval{}, false
}

// CanPlace reports whether a task of the given size starting at pos fits in
// one of the task's intervals.
func (s *Space) CanPlace(taskID string, pos, size float64) bool {
	iv, ok := s.FindIntervalContainingFor(taskID, pos)
	return ok && iv.CanFit(pos, size)
}

// CanPlaceInterval reports whether the whole interval lies inside one of the
// task's intervals.
func (s *Space) CanPlaceInterval(taskID string, iv interval.Interval) bool {
	return s.CanPlace(taskID, iv.Start, iv.Duration())
}

// Capacity returns the total valid time of a task.
func (s *Space) Capacity(taskID string) float64 {
	return s.byTask[taskID].TotalDuration()
}

// TotalCapacity returns the summed capacity over all tasks.
func (s *Space) TotalCapacity() float64 {
	var total float64
	for _, set := range s.byTask {
		total += set.TotalDuration()
	}
	return total
}

// FindEarliestFitFor returns the start of the first interval of the task
// that can hold the given size.
func (s *Space) FindEarliestFitFor(taskID string, size float64) (float64, bool) {
	set, ok := s.byTask[taskID]
	if !ok {
		return 0, false
	}
	for _, iv := range set.Intervals() {
		if iv.Duration() >= size {
			return iv.Start, true
		}
	}
	return 0, false
}

// FindEarliestFit returns the earliest start across all tasks where an
// interval can hold the given size.
func (s *Space) FindEarliestFit(size float64) (float64, bool) {
	best := math.Inf(1)
	found := false
	for id := range s.byTask {
		if start, ok := s.FindEarliestFitFor(id, size); ok && start < best {
			best = start
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}
