// Package constraint provides composable scheduling constraints.
//
// A constraint answers one question: within a given scheduling window, which
// sub-intervals are valid placements? Leaf constraints compute intervals
// directly; the Expr tree combines them with intersection, union, and
// negation.
//
// Static constraints (Window, ResourceFilter, Coalition) depend only on the
// scheduling window. Dynamic constraints (Dependence, Consecutive, Exclusive)
// additionally depend on what has already been placed, and are evaluated
// through a DynamicIndex against a Context snapshot of the current schedule.
package constraint
