package schedule

import (
	"errors"
	"fmt"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// ErrNaNTime indicates a placement with a NaN start or end time.
var ErrNaNTime = errors.New("schedule: placement times must not be NaN")

// DuplicateTaskError indicates that a task is already placed.
type DuplicateTaskError struct {
	TaskID string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("schedule: task %q is already placed", e.TaskID)
}

// OverlapError indicates a placement that overlaps an existing one.
type OverlapError struct {
	TaskID     string
	Interval   interval.Interval
	ExistingID string
	Existing   interval.Interval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("schedule: task %q at %s overlaps task %q at %s",
		e.TaskID, e.Interval, e.ExistingID, e.Existing)
}

// IsOverlap reports whether err is an OverlapError.
func IsOverlap(err error) bool {
	var overlap *OverlapError
	return errors.As(err, &overlap)
}
