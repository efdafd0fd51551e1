package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBounds indicates an attempt to build an interval whose start is
// after its end, or whose endpoints are NaN.
var ErrInvalidBounds = errors.New("interval: start must not exceed end and bounds must not be NaN")

// Interval is a closed range [Start, End] on the scheduling axis.
// Both endpoints belong to the interval, so Start == End is a valid
// degenerate point interval with zero duration.
type Interval struct {
	Start float64
	End   float64
}

// New builds an interval, rejecting NaN endpoints and inverted bounds.
func New(start, end float64) (Interval, error) {
	if math.IsNaN(start) || math.IsNaN(end) || start > end {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// MustNew is New for statically known bounds. It panics on invalid input.
func MustNew(start, end float64) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Duration returns the length of the interval.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Overlaps reports whether the two closed intervals share at least one point.
// Intervals that touch at an endpoint overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// Intersection returns the common sub-interval and true when the intervals
// overlap. Touching intervals yield a degenerate point interval.
func (iv Interval) Intersection(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	return Interval{
		Start: math.Max(iv.Start, other.Start),
		End:   math.Min(iv.End, other.End),
	}, true
}

// Contains reports whether the position lies within the closed interval.
func (iv Interval) Contains(pos float64) bool {
	return iv.Start <= pos && pos <= iv.End
}

// CanFit reports whether a task of the given size starting at pos fits
// entirely inside the interval.
func (iv Interval) CanFit(pos, size float64) bool {
	return pos >= iv.Start && pos+size <= iv.End
}

// Shift returns the interval translated by d.
func (iv Interval) Shift(d float64) Interval {
	return Interval{Start: iv.Start + d, End: iv.End + d}
}

// String renders the interval as "[start, end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Start, iv.End)
}
