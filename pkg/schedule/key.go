package schedule

import "math"

// timeKey is a float64 start time mapped to an integer whose natural order
// matches the IEEE 754 total order. Using it as the B-tree sort key keeps
// comparisons branch-free and well-defined for every representable float;
// NaN never reaches a key because Add rejects it first.
type timeKey uint64

func makeTimeKey(t float64) timeKey {
	bits := math.Float64bits(t)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	return timeKey(bits)
}
