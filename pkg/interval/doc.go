// Package interval provides closed intervals on a continuous time axis and
// canonical interval sets with union, intersection, and complement operations.
//
// An Interval is a closed range [Start, End] where both endpoints are included.
// Two intervals that merely touch at an endpoint are therefore considered
// overlapping.
//
// A Set maintains the canonical form used throughout the scheduler: intervals
// sorted by start, pairwise disjoint, with abutting intervals merged. All set
// operations preserve canonical form, which keeps queries O(log n) and scans
// single-pass.
package interval
