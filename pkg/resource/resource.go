package resource

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/VPRamon/virolai-sub000/pkg/constraint"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Resource is anything a task can be scheduled onto.
type Resource interface {
	// ID returns the resource's stable unique identifier.
	ID() string

	// Name returns the human-readable name.
	Name() string

	// Type returns the resource's type label, matched against task
	// resource filters and coalition requirements.
	Type() string

	// Constraints returns the availability constraint tree, or nil when
	// the resource is always available.
	Constraints() *constraint.Expr
}

// Instrument is a concrete resource with an availability constraint tree.
type Instrument struct {
	id          string
	name        string
	typ         string
	constraints *constraint.Expr
}

// NewInstrument creates an instrument with a generated ID.
func NewInstrument(name, resourceType string) *Instrument {
	return NewInstrumentWithID(uuid.NewString(), name, resourceType)
}

// NewInstrumentWithID creates an instrument with a caller-chosen ID.
func NewInstrumentWithID(id, name, resourceType string) *Instrument {
	return &Instrument{id: id, name: name, typ: resourceType}
}

// WithConstraint intersects an availability constraint into the
// instrument's tree and returns the instrument for chaining.
func (r *Instrument) WithConstraint(expr *constraint.Expr) *Instrument {
	if r.constraints == nil {
		r.constraints = expr
	} else {
		r.constraints = constraint.And(r.constraints, expr)
	}
	return r
}

func (r *Instrument) ID() string { return r.id }

func (r *Instrument) Name() string { return r.name }

func (r *Instrument) Type() string { return r.typ }

func (r *Instrument) Constraints() *constraint.Expr { return r.constraints }

func (r *Instrument) String() string {
	return fmt.Sprintf("Instrument(%s, type=%s)", r.name, r.typ)
}

// Availability computes the intervals the resource can host work within the
// horizon. Resources without constraints are available for the full horizon.
func Availability(r Resource, horizon interval.Interval) interval.Set {
	expr := r.Constraints()
	if expr == nil {
		return interval.NewSet(horizon)
	}
	return expr.ComputeIntervals(horizon)
}
