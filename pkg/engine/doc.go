// Package engine provides scheduling algorithms that turn scheduling blocks
// and a solution space into a concrete schedule.
//
// The main implementation is ESTScheduler, a greedy earliest-start-time
// scheduler. Each iteration it recomputes three metrics per unplaced task
// against the horizon remaining after the cursor:
//
//   - EST: the earliest start where the task fits in its valid intervals
//   - Deadline: the latest start where the task still fits
//   - Flexibility: how many times over the task fits across all intervals
//
// Tasks with no feasible start are impossible; the rest are endangered
// (flexibility below the threshold) or flexible. Endangered tasks are
// scheduled first unless a flexible task can provably run before them
// without pushing them past their deadline. The head of the resulting order
// is placed at its EST and the cursor advances past it, its required gap,
// and a small epsilon so the next placement cannot touch it.
package engine
