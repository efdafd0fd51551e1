// Package solution provides solution spaces: per-task sets of intervals
// where a task may validly be placed.
//
// A Space is typically built with Populate, which evaluates every task's
// constraint tree against the scheduling window. Tasks without constraints
// get the full window; constrained tasks get their computed intervals,
// pre-filtered to those long enough to hold the task at all. Scheduling
// algorithms then query the space for earliest fits and placement checks
// without re-evaluating constraints.
package solution
