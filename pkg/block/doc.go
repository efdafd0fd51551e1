// Package block provides scheduling blocks: directed acyclic graphs of tasks
// connected by dependency edges.
//
// Tasks are stored in an arena and addressed by stable NodeID handles that
// survive removals of other tasks. Every task also carries a string ID,
// auto-generated on insert unless supplied, which stays valid across blocks
// and is the key used by solution spaces and schedules.
//
// Edges are ordering dependencies and may optionally carry a dynamic
// constraint kind (Dependence, Consecutive, Exclusive) that the scheduling
// engine re-evaluates against the evolving schedule. AddDependency rejects
// any edge that would create a cycle, so a block is a DAG at all times.
package block
