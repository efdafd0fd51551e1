package block

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode indicates a NodeID that does not refer to a live task.
	ErrInvalidNode = errors.New("block: invalid node handle")

	// ErrCycle indicates a dependency that would create a cycle.
	ErrCycle = errors.New("block: dependency would create a cycle")

	// ErrGraphCycle indicates that the graph contains a cycle. AddDependency
	// makes this unreachable; topological operations still check.
	ErrGraphCycle = errors.New("block: graph contains a cycle")

	// ErrEmptyBlock indicates an operation that needs at least one task.
	ErrEmptyBlock = errors.New("block: block has no tasks")
)

// DuplicateIDError indicates an explicit task ID that is already in use.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("block: task ID %q already exists", e.ID)
}

// IsDuplicateID reports whether err is a DuplicateIDError.
func IsDuplicateID(err error) bool {
	var dup *DuplicateIDError
	return errors.As(err, &dup)
}
