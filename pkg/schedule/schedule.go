package schedule

import (
	"math"

	"github.com/google/btree"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

const btreeDegree = 32

// Entry is one placed task: its ID and the interval it occupies.
type Entry struct {
	TaskID   string
	Interval interval.Interval
}

// item is the B-tree element, sorted by the total-order start key.
type item struct {
	key   timeKey
	entry Entry
}

func lessItem(a, b item) bool {
	return a.key < b.key
}

// Schedule is a set of non-overlapping task placements ordered by start
// time. Not safe for concurrent use.
type Schedule struct {
	tree *btree.BTreeG[item]
	byID map[string]timeKey
}

// New creates an empty schedule.
func New() *Schedule {
	return &Schedule{
		tree: btree.NewG(btreeDegree, lessItem),
		byID: make(map[string]timeKey),
	}
}

// Add places a task on the schedule. It fails with ErrNaNTime for NaN
// bounds, DuplicateTaskError when the task is already placed, and
// OverlapError when the interval overlaps (or touches) an existing
// placement. The schedule is unchanged on error.
func (s *Schedule) Add(taskID string, iv interval.Interval) error {
	if math.IsNaN(iv.Start) || math.IsNaN(iv.End) {
		return ErrNaNTime
	}
	if _, exists := s.byID[taskID]; exists {
		return &DuplicateTaskError{TaskID: taskID}
	}

	key := makeTimeKey(iv.Start)
	pivot := item{key: key}

	var conflict *Entry
	s.tree.DescendLessOrEqual(pivot, func(it item) bool {
		if it.entry.Interval.Overlaps(iv) {
			conflict = &it.entry
		}
		return false
	})
	if conflict == nil {
		s.tree.AscendGreaterOrEqual(pivot, func(it item) bool {
			if it.entry.Interval.Overlaps(iv) {
				conflict = &it.entry
			}
			return false
		})
	}
	if conflict != nil {
		return &OverlapError{
			TaskID:     taskID,
			Interval:   iv,
			ExistingID: conflict.TaskID,
			Existing:   conflict.Interval,
		}
	}

	s.tree.ReplaceOrInsert(item{key: key, entry: Entry{TaskID: taskID, Interval: iv}})
	s.byID[taskID] = key
	return nil
}

// Remove takes a task off the schedule, returning the interval it occupied.
func (s *Schedule) Remove(taskID string) (interval.Interval, bool) {
	key, ok := s.byID[taskID]
	if !ok {
		return interval.Interval{}, false
	}
	removed, _ := s.tree.Delete(item{key: key})
	delete(s.byID, taskID)
	return removed.entry.Interval, true
}

// Placement returns the interval a task is placed at. Schedules satisfy
// constraint.PlacementLookup.
func (s *Schedule) Placement(taskID string) (interval.Interval, bool) {
	key, ok := s.byID[taskID]
	if !ok {
		return interval.Interval{}, false
	}
	it, _ := s.tree.Get(item{key: key})
	return it.entry.Interval, true
}

// Contains reports whether a task is placed.
func (s *Schedule) Contains(taskID string) bool {
	_, ok := s.byID[taskID]
	return ok
}

// Len returns the number of placed tasks.
func (s *Schedule) Len() int {
	return len(s.byID)
}

// Clear removes all placements.
func (s *Schedule) Clear() {
	s.tree.Clear(false)
	s.byID = make(map[string]timeKey)
}

// Conflicts returns all placements overlapping the query interval in start
// order. The scan starts at the placement just before the query and stops at
// the first placement starting after it, so the cost is O(log n + k).
func (s *Schedule) Conflicts(query interval.Interval) []Entry {
	var out []Entry
	scanFrom := query.Start
	s.tree.DescendLessOrEqual(item{key: makeTimeKey(query.Start)}, func(it item) bool {
		if it.entry.Interval.Overlaps(query) {
			scanFrom = it.entry.Interval.Start
		}
		return false
	})
	s.tree.AscendGreaterOrEqual(item{key: makeTimeKey(scanFrom)}, func(it item) bool {
		if it.entry.Interval.Start > query.End {
			return false
		}
		if it.entry.Interval.Overlaps(query) {
			out = append(out, it.entry)
		}
		return true
	})
	return out
}

// HasConflict reports whether any placement overlaps the query interval.
func (s *Schedule) HasConflict(query interval.Interval) bool {
	return len(s.Conflicts(query)) > 0
}

// IsFree reports whether the query interval overlaps no placement.
func (s *Schedule) IsFree(query interval.Interval) bool {
	return !s.HasConflict(query)
}

// TaskAt returns the placement containing the given position, if any.
func (s *Schedule) TaskAt(pos float64) (Entry, bool) {
	if math.IsNaN(pos) {
		return Entry{}, false
	}
	var found Entry
	ok := false
	s.tree.DescendLessOrEqual(item{key: makeTimeKey(pos)}, func(it item) bool {
		if it.entry.Interval.Contains(pos) {
			found = it.entry
			ok = true
		}
		return false
	})
	return found, ok
}

// Entries returns all placements in start order.
func (s *Schedule) Entries() []Entry {
	out := make([]Entry, 0, s.tree.Len())
	s.tree.Ascend(func(it item) bool {
		out = append(out, it.entry)
		return true
	})
	return out
}

// IDs returns all placed task IDs in start order.
func (s *Schedule) IDs() []string {
	out := make([]string, 0, s.tree.Len())
	s.tree.Ascend(func(it item) bool {
		out = append(out, it.entry.TaskID)
		return true
	})
	return out
}

// Intervals returns all placed intervals in start order.
func (s *Schedule) Intervals() []interval.Interval {
	out := make([]interval.Interval, 0, s.tree.Len())
	s.tree.Ascend(func(it item) bool {
		out = append(out, it.entry.Interval)
		return true
	})
	return out
}

// TotalDuration returns the summed duration of all placements.
func (s *Schedule) TotalDuration() float64 {
	var total float64
	s.tree.Ascend(func(it item) bool {
		total += it.entry.Interval.Duration()
		return true
	})
	return total
}

// EarliestStart returns the start of the first placement.
func (s *Schedule) EarliestStart() (float64, bool) {
	it, ok := s.tree.Min()
	if !ok {
		return 0, false
	}
	return it.entry.Interval.Start, true
}

// LatestEnd returns the end of the last placement. Placements never
// overlap, so the last placement by start also ends last.
func (s *Schedule) LatestEnd() (float64, bool) {
	it, ok := s.tree.Max()
	if !ok {
		return 0, false
	}
	return it.entry.Interval.End, true
}

// Span returns the interval from the first start to the last end.
func (s *Schedule) Span() (interval.Interval, bool) {
	start, ok := s.EarliestStart()
	if !ok {
		return interval.Interval{}, false
	}
	end, _ := s.LatestEnd()
	return interval.Interval{Start: start, End: end}, true
}
