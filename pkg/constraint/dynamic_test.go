package constraint

import (
	"testing"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// placements is a minimal PlacementLookup backed by a map.
type placements map[string]interval.Interval

func (p placements) Placement(taskID string) (interval.Interval, bool) {
	iv, ok := p[taskID]
	return iv, ok
}

func ctxWith(p placements) Context {
	return Context{Placements: p}
}

func TestDependence_RefPlaced(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{"a": interval.MustNew(10, 20)})

	got := Dependence.Evaluate(window, ctx, "a")
	if got.Len() != 1 || got.At(0) != window {
		t.Errorf("Expected full window, got %v", got)
	}
}

func TestDependence_RefNotPlaced(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{})

	if got := Dependence.Evaluate(window, ctx, "a"); !got.IsEmpty() {
		t.Errorf("Expected empty set, got %v", got)
	}
}

func TestConsecutive_StartsAfterRefEnd(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{"a": interval.MustNew(10, 30)})

	got := Consecutive.Evaluate(window, ctx, "a")
	if got.Len() != 1 || got.At(0) != interval.MustNew(30, 100) {
		t.Errorf("Expected [30, 100], got %v", got)
	}
}

func TestConsecutive_RefEndsBeforeWindow(t *testing.T) {
	window := interval.MustNew(50, 100)
	ctx := ctxWith(placements{"a": interval.MustNew(10, 30)})

	got := Consecutive.Evaluate(window, ctx, "a")
	if got.Len() != 1 || got.At(0) != window {
		t.Errorf("Expected full window, got %v", got)
	}
}

func TestConsecutive_RefEndsAtWindowEnd(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{"a": interval.MustNew(50, 100)})

	if got := Consecutive.Evaluate(window, ctx, "a"); !got.IsEmpty() {
		t.Errorf("Expected empty set when nothing remains, got %v", got)
	}
}

func TestConsecutive_RefNotPlaced(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{})

	if got := Consecutive.Evaluate(window, ctx, "a"); !got.IsEmpty() {
		t.Errorf("Expected empty set, got %v", got)
	}
}

func TestExclusive_RefPlaced(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{"a": interval.MustNew(10, 20)})

	if got := Exclusive.Evaluate(window, ctx, "a"); !got.IsEmpty() {
		t.Errorf("Expected empty set, got %v", got)
	}
}

func TestExclusive_RefNotPlaced(t *testing.T) {
	window := interval.MustNew(0, 100)
	ctx := ctxWith(placements{})

	got := Exclusive.Evaluate(window, ctx, "a")
	if got.Len() != 1 || got.At(0) != window {
		t.Errorf("Expected full window, got %v", got)
	}
}

func TestDynKind_String(t *testing.T) {
	if Dependence.String() != "Dependence" || Consecutive.String() != "Consecutive" || Exclusive.String() != "Exclusive" {
		t.Error("Expected kind names to round-trip")
	}
}
