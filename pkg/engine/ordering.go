package engine

import "strings"

// compareCandidates orders candidates for greedy placement. Impossible
// tasks sink to the end; endangered tasks come before flexible ones unless
// the flexible task provably fits before the endangered task's deadline.
// Within a kind, earlier EST wins, then higher priority, then lower
// flexibility, and finally the task ID for a deterministic total order.
func compareCandidates(a, b *Candidate, threshold float64) int {
	switch {
	case a.IsImpossible() && b.IsImpossible():
		return strings.Compare(a.TaskID, b.TaskID)
	case a.IsImpossible():
		return 1
	case b.IsImpossible():
		return -1
	}

	if a.IsEndangered(threshold) && b.IsFlexible(threshold) {
		return compareEndangeredFlexible(a, b)
	}
	if a.IsFlexible(threshold) && b.IsEndangered(threshold) {
		return -compareEndangeredFlexible(b, a)
	}

	if c := compareFloat(a.est, b.est); c != 0 {
		return c
	}
	// Higher priority first.
	if pa, pb := a.Task.Priority(), b.Task.Priority(); pa != pb {
		if pa > pb {
			return -1
		}
		return 1
	}
	// Less slack first.
	if c := compareFloat(a.flexibility, b.flexibility); c != 0 {
		return c
	}
	return strings.Compare(a.TaskID, b.TaskID)
}

// compareEndangeredFlexible decides between an endangered task e and a
// flexible task f. The flexible task goes first only when running it at its
// EST, plus the gap e requires after it, still leaves e a start before its
// deadline.
func compareEndangeredFlexible(e, f *Candidate) int {
	if e.est <= f.est {
		return -1
	}
	if !e.hasDeadline {
		return -1
	}
	flexibleEnd := f.est + f.Task.Size()
	requiredGap := e.Task.ComputeGapAfter(f.Task)
	if flexibleEnd+requiredGap <= e.deadline {
		return 1
	}
	return -1
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
