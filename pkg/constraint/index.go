package constraint

import (
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Edge is a dynamic constraint from a source task to the target task it
// restricts.
type Edge struct {
	Source string
	Target string
	Kind   DynKind
}

// IncomingEdge is an edge as seen from its target: the referenced source
// task and the constraint kind.
type IncomingEdge struct {
	Source string
	Kind   DynKind
}

// DynamicIndex groups dynamic constraint edges by target task so that all
// constraints restricting a task can be evaluated in one lookup. Tasks
// without incoming edges pay nothing: Evaluate reports them as unconstrained
// and ComputeEffectiveIntervals passes their static intervals through
// untouched.
type DynamicIndex struct {
	byTarget map[string][]IncomingEdge
}

// NewDynamicIndex builds an index from dynamic constraint edges.
func NewDynamicIndex(edges []Edge) *DynamicIndex {
	byTarget := make(map[string][]IncomingEdge)
	for _, e := range edges {
		byTarget[e.Target] = append(byTarget[e.Target], IncomingEdge{Source: e.Source, Kind: e.Kind})
	}
	return &DynamicIndex{byTarget: byTarget}
}

// Evaluate intersects all dynamic constraints targeting taskID within the
// window. The second return is false when the task has no incoming dynamic
// constraints.
func (idx *DynamicIndex) Evaluate(taskID string, window interval.Interval, ctx Context) (interval.Set, bool) {
	edges := idx.byTarget[taskID]
	if len(edges) == 0 {
		return interval.Set{}, false
	}
	result := edges[0].Kind.Evaluate(window, ctx, edges[0].Source)
	for _, e := range edges[1:] {
		result = result.Intersect(e.Kind.Evaluate(window, ctx, e.Source))
	}
	return result, true
}

// ComputeEffectiveIntervals intersects a task's static intervals with its
// dynamic constraints. Unconstrained tasks get their static intervals back
// unchanged.
func (idx *DynamicIndex) ComputeEffectiveIntervals(taskID string, static interval.Set, window interval.Interval, ctx Context) interval.Set {
	dynamic, ok := idx.Evaluate(taskID, window, ctx)
	if !ok {
		return static
	}
	return static.Intersect(dynamic)
}

// HasConstraints reports whether any dynamic constraint targets taskID.
func (idx *DynamicIndex) HasConstraints(taskID string) bool {
	return len(idx.byTarget[taskID]) > 0
}

// Edges returns the incoming dynamic constraint edges for taskID.
func (idx *DynamicIndex) Edges(taskID string) []IncomingEdge {
	return idx.byTarget[taskID]
}

// TargetCount returns the number of tasks with at least one incoming
// dynamic constraint.
func (idx *DynamicIndex) TargetCount() int {
	return len(idx.byTarget)
}
