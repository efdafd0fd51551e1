package block

import (
	"github.com/VPRamon/virolai-sub000/pkg/constraint"
)

// Task is a schedulable unit of work.
type Task interface {
	// Name returns a human-readable label for logs and reports.
	Name() string

	// Size returns the duration the task occupies on the scheduling axis.
	Size() float64

	// Priority orders tasks with equal urgency; higher schedules first.
	Priority() int

	// GapAfter returns the idle time required after this task before the
	// next one may start.
	GapAfter() float64

	// ComputeGapAfter returns the gap required when this task follows
	// previous, e.g. repointing time between targets. previous may be nil.
	ComputeGapAfter(previous Task) float64

	// Constraints returns the task's constraint tree, or nil when the task
	// may be placed anywhere in the scheduling window.
	Constraints() *constraint.Expr
}

// MultiAxisTask is a task with sizes on more than one scheduling axis.
// Axis 0 is the primary time axis and must equal Size().
type MultiAxisTask interface {
	Task

	// SizeOnAxis returns the task's extent on the given axis.
	SizeOnAxis(axis int) float64
}

// BasicTask is the standard Task implementation.
type BasicTask struct {
	name        string
	size        float64
	priority    int
	gapAfter    float64
	constraints *constraint.Expr
}

// NewBasicTask creates a task with the given name and duration.
func NewBasicTask(name string, size float64) *BasicTask {
	return &BasicTask{name: name, size: size}
}

// WithPriority sets the task priority and returns the task.
func (t *BasicTask) WithPriority(priority int) *BasicTask {
	t.priority = priority
	return t
}

// WithGapAfter sets the required idle time after the task and returns the
// task.
func (t *BasicTask) WithGapAfter(gap float64) *BasicTask {
	t.gapAfter = gap
	return t
}

// WithConstraints attaches a constraint tree and returns the task.
func (t *BasicTask) WithConstraints(expr *constraint.Expr) *BasicTask {
	t.constraints = expr
	return t
}

func (t *BasicTask) Name() string { return t.name }

func (t *BasicTask) Size() float64 { return t.size }

func (t *BasicTask) Priority() int { return t.priority }

func (t *BasicTask) GapAfter() float64 { return t.gapAfter }

// ComputeGapAfter returns the fixed gap regardless of the previous task.
func (t *BasicTask) ComputeGapAfter(previous Task) float64 { return t.gapAfter }

func (t *BasicTask) Constraints() *constraint.Expr { return t.constraints }
