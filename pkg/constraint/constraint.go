package constraint

import (
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Constraint is a leaf in a constraint tree. Implementations report which
// sub-intervals of a scheduling window are valid placements.
//
// The set is open for extension: any type satisfying this interface can be
// placed in an Expr leaf alongside the built-in Window, ResourceFilter, and
// Coalition constraints.
type Constraint interface {
	// ComputeIntervals returns the valid placement intervals within window.
	// The result is canonical and empty when nothing within window is valid.
	ComputeIntervals(window interval.Interval) interval.Set

	// String returns a short human-readable description.
	String() string
}
