package interval

import (
	"math"
	"sort"
	"strings"
)

// Set is a canonical collection of intervals: sorted by start, pairwise
// disjoint, with no two intervals sharing an endpoint. Construction through
// NewSet or Push keeps the invariant; the zero value is an empty set and
// ready to use.
type Set struct {
	items []Interval
}

// NewSet builds a canonical set from arbitrary intervals, sorting and merging
// any that overlap or touch.
func NewSet(ivs ...Interval) Set {
	items := make([]Interval, len(ivs))
	copy(items, ivs)
	return Set{items: normalize(items)}
}

// normalize sorts intervals by start and merges every overlapping or abutting
// pair in a single pass.
func normalize(items []Interval) []Interval {
	if len(items) <= 1 {
		return items
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Start < items[j].Start
	})
	out := items[:1]
	for _, iv := range items[1:] {
		last := &out[len(out)-1]
		if last.End >= iv.Start {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Len returns the number of disjoint intervals in the set.
func (s Set) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set covers no points at all.
func (s Set) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the i-th interval in start order.
func (s Set) At(i int) Interval {
	return s.items[i]
}

// Intervals returns the intervals in start order. The slice is shared with
// the set and must not be mutated.
func (s Set) Intervals() []Interval {
	return s.items
}

// Push appends an interval. Intervals arriving in ascending, disjoint order
// take an O(1) fast path; anything else falls back to a full renormalize.
func (s *Set) Push(iv Interval) {
	n := len(s.items)
	if n == 0 || iv.Start > s.items[n-1].End {
		s.items = append(s.items, iv)
		return
	}
	if iv.Start == s.items[n-1].End {
		if iv.End > s.items[n-1].End {
			s.items[n-1].End = iv.End
		}
		return
	}
	s.items = normalize(append(s.items, iv))
}

// IsCanonical reports whether the intervals are sorted by start, pairwise
// disjoint, and free of shared endpoints. Sets built through NewSet and Push
// always satisfy this.
func (s Set) IsCanonical() bool {
	for i := 1; i < len(s.items); i++ {
		prev, cur := s.items[i-1], s.items[i]
		if prev.Overlaps(cur) || prev.End > cur.Start {
			return false
		}
	}
	return true
}

// Union returns the set of points covered by either operand. Both operands
// must be canonical; the result is canonical.
func (s Set) Union(other Set) Set {
	if s.IsEmpty() {
		return NewSet(other.items...)
	}
	if other.IsEmpty() {
		return NewSet(s.items...)
	}
	out := make([]Interval, 0, len(s.items)+len(other.items))
	merge := func(iv Interval) {
		if n := len(out); n > 0 && (out[n-1].Overlaps(iv) || out[n-1].End == iv.Start) {
			if iv.End > out[n-1].End {
				out[n-1].End = iv.End
			}
			return
		}
		out = append(out, iv)
	}
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		if s.items[i].Start <= other.items[j].Start {
			merge(s.items[i])
			i++
		} else {
			merge(other.items[j])
			j++
		}
	}
	for ; i < len(s.items); i++ {
		merge(s.items[i])
	}
	for ; j < len(other.items); j++ {
		merge(other.items[j])
	}
	return Set{items: out}
}

// Intersect returns the set of points covered by both operands. Intervals
// that merely touch contribute a degenerate point interval.
func (s Set) Intersect(other Set) Set {
	var out []Interval
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		a, b := s.items[i], other.items[j]
		if a.Overlaps(b) {
			out = append(out, Interval{
				Start: math.Max(a.Start, b.Start),
				End:   math.Min(a.End, b.End),
			})
		}
		switch {
		case a.End < b.End:
			i++
		case b.End < a.End:
			j++
		default:
			i++
			j++
		}
	}
	return Set{items: out}
}

// Complement returns the gaps of the set within bounds. All intervals in the
// set are assumed to lie inside bounds. An empty set complements to the full
// bounds.
func (s Set) Complement(bounds Interval) Set {
	var out []Interval
	cursor := bounds.Start
	for _, iv := range s.items {
		if iv.Start > cursor {
			out = append(out, Interval{Start: cursor, End: iv.Start})
		}
		cursor = iv.End
	}
	if cursor < bounds.End {
		out = append(out, Interval{Start: cursor, End: bounds.End})
	}
	return Set{items: out}
}

// ContainsPosition reports whether any interval in the set contains pos.
func (s Set) ContainsPosition(pos float64) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].End >= pos
	})
	return i < len(s.items) && s.items[i].Contains(pos)
}

// TotalDuration returns the summed length of all intervals.
func (s Set) TotalDuration() float64 {
	var total float64
	for _, iv := range s.items {
		total += iv.Duration()
	}
	return total
}

// String renders the set as "{[a, b], [c, d]}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')
	return b.String()
}
