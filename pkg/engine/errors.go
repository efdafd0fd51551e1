package engine

import (
	"errors"
	"fmt"
)

// ErrorClass classifies scheduler errors for callers deciding whether to
// repair input, relax constraints, or report a bug.
type ErrorClass string

const (
	// ErrorClassInvalidInput indicates malformed problem input.
	// Examples: inverted intervals, NaN times, unknown task references.
	ErrorClassInvalidInput ErrorClass = "invalid_input"

	// ErrorClassInfeasible indicates a well-formed problem with no valid
	// placement. Examples: empty solution space, unsatisfiable coalition.
	ErrorClassInfeasible ErrorClass = "infeasible"

	// ErrorClassConflict indicates a placement clash with existing state.
	ErrorClassConflict ErrorClass = "conflict"

	// ErrorClassInternal indicates a scheduler invariant violation.
	ErrorClassInternal ErrorClass = "internal"
)

// SchedulerError is a classified error with scheduling context.
type SchedulerError struct {
	// Class is the error classification.
	Class ErrorClass `json:"class"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Code is an optional error code for programmatic handling.
	Code string `json:"code,omitempty"`

	// TaskID is the task the error relates to, if any.
	TaskID string `json:"task_id,omitempty"`

	// Resource is the resource the error relates to, if any.
	Resource string `json:"resource,omitempty"`

	// Err is the wrapped underlying error.
	Err error `json:"-"`
}

func (e *SchedulerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Class, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Class, e.Message)
}

func (e *SchedulerError) Unwrap() error {
	return e.Err
}

// WithCode attaches an error code.
func (e *SchedulerError) WithCode(code string) *SchedulerError {
	e.Code = code
	return e
}

// WithTask attaches the related task ID.
func (e *SchedulerError) WithTask(taskID string) *SchedulerError {
	e.TaskID = taskID
	return e
}

// WithResource attaches the related resource name.
func (e *SchedulerError) WithResource(resource string) *SchedulerError {
	e.Resource = resource
	return e
}

// WithCause wraps an underlying error.
func (e *SchedulerError) WithCause(err error) *SchedulerError {
	e.Err = err
	return e
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) *SchedulerError {
	return &SchedulerError{Class: ErrorClassInvalidInput, Message: message}
}

// NewInfeasibleError creates an infeasibility error.
func NewInfeasibleError(message string) *SchedulerError {
	return &SchedulerError{Class: ErrorClassInfeasible, Message: message}
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *SchedulerError {
	return &SchedulerError{Class: ErrorClassConflict, Message: message}
}

// NewInternalError creates an internal error.
func NewInternalError(message string) *SchedulerError {
	return &SchedulerError{Class: ErrorClassInternal, Message: message}
}

func classOf(err error) (ErrorClass, bool) {
	var se *SchedulerError
	if errors.As(err, &se) {
		return se.Class, true
	}
	return "", false
}

// IsInvalidInput reports whether err is classified as invalid input.
func IsInvalidInput(err error) bool {
	class, ok := classOf(err)
	return ok && class == ErrorClassInvalidInput
}

// IsInfeasible reports whether err is classified as infeasible.
func IsInfeasible(err error) bool {
	class, ok := classOf(err)
	return ok && class == ErrorClassInfeasible
}

// IsConflict reports whether err is classified as a conflict.
func IsConflict(err error) bool {
	class, ok := classOf(err)
	return ok && class == ErrorClassConflict
}

// IsInternal reports whether err is classified as internal.
func IsInternal(err error) bool {
	class, ok := classOf(err)
	return ok && class == ErrorClassInternal
}
