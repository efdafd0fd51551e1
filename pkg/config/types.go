package config

// Problem is the root of a scheduling problem definition.
type Problem struct {
	// Version is the problem file format version.
	Version int `yaml:"version" validate:"required,eq=1"`

	// Name is an optional human-readable problem name.
	Name string `yaml:"name,omitempty"`

	// Horizon is the scheduling horizon all tasks must fit into.
	Horizon Span `yaml:"horizon" validate:"required"`

	// Scheduler holds the engine parameters.
	Scheduler SchedulerConfig `yaml:"scheduler,omitempty"`

	// Tasks lists the tasks to schedule.
	Tasks []TaskConfig `yaml:"tasks" validate:"required,min=1,dive"`

	// Dependencies lists the dynamic constraints between tasks.
	Dependencies []DependencyConfig `yaml:"dependencies,omitempty" validate:"dive"`

	// Resources lists the schedulable resources. When empty the problem is
	// solved on a single implicit resource.
	Resources []ResourceConfig `yaml:"resources,omitempty" validate:"dive"`
}

// Span is a closed time range in the problem's time unit.
type Span struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end" validate:"gtfield=Start"`
}

// SchedulerConfig holds the engine parameters.
type SchedulerConfig struct {
	// Algorithm selects the scheduling algorithm.
	Algorithm string `yaml:"algorithm,omitempty" validate:"omitempty,oneof=est"`

	// EndangeredThreshold is the flexibility below which a task is
	// scheduled eagerly.
	EndangeredThreshold float64 `yaml:"endangered_threshold,omitempty" validate:"gte=0"`

	// Epsilon is the cursor advance added after each placement.
	Epsilon float64 `yaml:"epsilon,omitempty" validate:"gte=0"`
}

// TaskConfig declares one task.
type TaskConfig struct {
	// ID is the task's unique identifier within the problem.
	ID string `yaml:"id" validate:"required"`

	// Name is the display name; defaults to ID.
	Name string `yaml:"name,omitempty"`

	// Size is the task's duration in the problem's time unit.
	Size float64 `yaml:"size" validate:"required,gt=0"`

	// Priority orders tasks that tie on earliest start; higher wins.
	Priority int `yaml:"priority,omitempty"`

	// GapAfter is idle time required after the task.
	GapAfter float64 `yaml:"gap_after,omitempty" validate:"gte=0"`

	// Windows are the time ranges the task may run in. Multiple windows
	// are unioned; absent means the full horizon.
	Windows []Span `yaml:"windows,omitempty" validate:"dive"`

	// ExcludeWindows are time ranges the task must avoid.
	ExcludeWindows []Span `yaml:"exclude_windows,omitempty" validate:"dive"`

	// Resources restricts which resources the task may run on.
	Resources *ResourceFilterConfig `yaml:"resources,omitempty"`

	// Coalition maps resource types to the minimum count the task needs
	// simultaneously.
	Coalition map[string]int `yaml:"coalition,omitempty" validate:"omitempty,dive,gt=0"`
}

// ResourceFilterConfig restricts task-to-resource assignment.
type ResourceFilterConfig struct {
	// IDs lists acceptable resource IDs.
	IDs []string `yaml:"ids,omitempty"`

	// Types lists acceptable resource types.
	Types []string `yaml:"types,omitempty"`
}

// DependencyConfig declares a dynamic constraint between two tasks.
type DependencyConfig struct {
	// From is the source task ID the constraint refers to.
	From string `yaml:"from" validate:"required"`

	// To is the constrained task ID.
	To string `yaml:"to" validate:"required,nefield=From"`

	// Kind is the constraint kind.
	Kind string `yaml:"kind" validate:"required,oneof=dependence consecutive exclusive"`
}

// ResourceConfig declares one schedulable resource.
type ResourceConfig struct {
	// ID is the resource's unique identifier.
	ID string `yaml:"id" validate:"required"`

	// Name is the display name; defaults to ID.
	Name string `yaml:"name,omitempty"`

	// Type is the resource type label.
	Type string `yaml:"type" validate:"required"`

	// Windows are the availability ranges; absent means always available.
	Windows []Span `yaml:"windows,omitempty" validate:"dive"`
}
