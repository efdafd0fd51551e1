// Package schedule provides a conflict-free store of task placements on the
// time axis.
//
// Placements are kept in a B-tree ordered by start time, giving O(log n)
// insertion, removal, and point lookup, and O(log n + k) conflict queries.
// The store enforces its own invariant: Add rejects any placement that
// overlaps an existing one, where intervals sharing a single endpoint count
// as overlapping. NaN times are rejected outright, so every stored start
// time participates in a total order.
package schedule
