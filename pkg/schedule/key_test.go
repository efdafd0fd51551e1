package schedule

import (
	"math"
	"sort"
	"testing"
)

func TestTimeKey_PreservesOrder(t *testing.T) {
	values := []float64{
		math.Inf(-1), -1e300, -42.5, -1, -0.001, math.Copysign(0, -1),
		0, 0.001, 1, 42.5, 1e300, math.Inf(1),
	}

	keys := make([]timeKey, len(values))
	for i, v := range values {
		keys[i] = makeTimeKey(v)
	}
	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }) {
		t.Errorf("Expected keys sorted like their floats, got %v", keys)
	}
}

func TestTimeKey_NegativeZeroBeforePositiveZero(t *testing.T) {
	neg := makeTimeKey(math.Copysign(0, -1))
	pos := makeTimeKey(0)
	if neg >= pos {
		t.Errorf("Expected -0 key < +0 key, got %d >= %d", neg, pos)
	}
}
