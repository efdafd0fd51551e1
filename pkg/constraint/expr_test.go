package constraint

import (
	"errors"
	"testing"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

func window(start, end float64) *Expr {
	return Leaf(NewWindow(interval.MustNew(start, end)))
}

func assertIntervals(t *testing.T, got interval.Set, want ...interval.Interval) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("Expected %d intervals, got %d: %v", len(want), got.Len(), got)
	}
	for i, iv := range want {
		if got.At(i) != iv {
			t.Errorf("Interval %d: expected %v, got %v", i, iv, got.At(i))
		}
	}
}

func TestLeaf_ComputeIntervals(t *testing.T) {
	rng := interval.MustNew(0, 100)
	assertIntervals(t, window(20, 80).ComputeIntervals(rng), interval.MustNew(20, 80))
}

func TestLeaf_WindowOutsideRange(t *testing.T) {
	rng := interval.MustNew(0, 100)
	got := window(200, 300).ComputeIntervals(rng)
	if !got.IsEmpty() {
		t.Errorf("Expected empty set for disjoint window, got %v", got)
	}
}

func TestLeaf_WindowClampedToRange(t *testing.T) {
	rng := interval.MustNew(0, 100)
	assertIntervals(t, window(-50, 30).ComputeIntervals(rng), interval.MustNew(0, 30))
}

func TestNot_ComplementsWithinRange(t *testing.T) {
	rng := interval.MustNew(0, 100)
	got := Not(window(20, 80)).ComputeIntervals(rng)
	assertIntervals(t, got, interval.MustNew(0, 20), interval.MustNew(80, 100))
}

func TestAnd_IntersectsChildren(t *testing.T) {
	rng := interval.MustNew(0, 100)
	got := And(window(0, 60), window(40, 100)).ComputeIntervals(rng)
	assertIntervals(t, got, interval.MustNew(40, 60))
}

func TestAnd_NoChildrenIsEmpty(t *testing.T) {
	rng := interval.MustNew(0, 100)
	if got := And().ComputeIntervals(rng); !got.IsEmpty() {
		t.Errorf("Expected empty set from childless intersection, got %v", got)
	}
}

func TestOr_UnionsChildren(t *testing.T) {
	rng := interval.MustNew(0, 100)
	got := Or(window(0, 20), window(50, 70)).ComputeIntervals(rng)
	assertIntervals(t, got, interval.MustNew(0, 20), interval.MustNew(50, 70))
}

func TestOr_NoChildrenIsEmpty(t *testing.T) {
	rng := interval.MustNew(0, 100)
	if got := Or().ComputeIntervals(rng); !got.IsEmpty() {
		t.Errorf("Expected empty set from childless union, got %v", got)
	}
}

func TestExpr_NestedEvaluation(t *testing.T) {
	rng := interval.MustNew(0, 100)
	// (0..60 and 40..100) or not(0..90) = 40..60 union 90..100
	expr := Or(
		And(window(0, 60), window(40, 100)),
		Not(window(0, 90)),
	)
	got := expr.ComputeIntervals(rng)
	assertIntervals(t, got, interval.MustNew(40, 60), interval.MustNew(90, 100))
}

func TestExpr_Introspection(t *testing.T) {
	expr := And(window(0, 10), Or(window(20, 30), Not(window(40, 50))))

	if d := expr.Depth(); d != 4 {
		t.Errorf("Expected depth 4, got %d", d)
	}
	if n := expr.NodeCount(); n != 6 {
		t.Errorf("Expected 6 nodes, got %d", n)
	}
	if n := expr.LeafCount(); n != 3 {
		t.Errorf("Expected 3 leaves, got %d", n)
	}
	if n := window(0, 10).Depth(); n != 1 {
		t.Errorf("Expected leaf depth 1, got %d", n)
	}
}

func TestExpr_VisitPreorder(t *testing.T) {
	expr := And(window(0, 10), Not(window(20, 30)))

	var kinds []NodeKind
	expr.VisitPreorder(func(node *Expr) {
		kinds = append(kinds, node.Kind())
	})

	want := []NodeKind{NodeIntersection, NodeLeaf, NodeNot, NodeLeaf}
	if len(kinds) != len(want) {
		t.Fatalf("Expected %d visits, got %d", len(want), len(kinds))
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("Visit %d: expected %v, got %v", i, k, kinds[i])
		}
	}
}

func TestExpr_VisitLeaves(t *testing.T) {
	expr := And(window(0, 10), Or(window(20, 30), window(40, 50)))

	count := 0
	expr.VisitLeaves(func(Constraint) { count++ })
	if count != 3 {
		t.Errorf("Expected 3 leaf visits, got %d", count)
	}
}

func TestExpr_MapLeaves(t *testing.T) {
	rng := interval.MustNew(0, 100)
	expr := And(window(0, 60), window(50, 100))

	shifted := expr.MapLeaves(func(c Constraint) Constraint {
		w := c.(Window)
		return NewWindow(interval.MustNew(w.Range.Start+5, w.Range.End+5))
	})

	// Original untouched.
	assertIntervals(t, expr.ComputeIntervals(rng), interval.MustNew(50, 60))
	assertIntervals(t, shifted.ComputeIntervals(rng), interval.MustNew(55, 65))

	if n := shifted.LeafCount(); n != 2 {
		t.Errorf("Expected mapped tree to keep 2 leaves, got %d", n)
	}
}

func TestExpr_Flatten(t *testing.T) {
	expr := And(And(window(0, 10), window(20, 30)), window(40, 50))
	flat := expr.Flatten()

	if len(flat.Children()) != 3 {
		t.Errorf("Expected 3 children after flatten, got %d", len(flat.Children()))
	}
	if flat.Kind() != NodeIntersection {
		t.Errorf("Expected intersection root, got %v", flat.Kind())
	}
}

func TestExpr_FlattenKeepsMixedOperators(t *testing.T) {
	expr := And(Or(window(0, 10), window(20, 30)), window(40, 50))
	flat := expr.Flatten()

	if len(flat.Children()) != 2 {
		t.Errorf("Expected union child to stay nested, got %d children", len(flat.Children()))
	}
}

func TestExpr_FlattenRecursesThroughNot(t *testing.T) {
	expr := Not(Or(Or(window(0, 10)), window(20, 30)))
	flat := expr.Flatten()

	if flat.Kind() != NodeNot {
		t.Fatalf("Expected negation root, got %v", flat.Kind())
	}
	if inner := flat.Children()[0]; len(inner.Children()) != 2 {
		t.Errorf("Expected inner union flattened to 2 children, got %d", len(inner.Children()))
	}
}

func TestExpr_AddChild(t *testing.T) {
	expr := And(window(0, 10))
	if err := expr.AddChild(window(20, 30)); err != nil {
		t.Fatalf("Expected no error adding child to intersection, got: %v", err)
	}
	if len(expr.Children()) != 2 {
		t.Errorf("Expected 2 children, got %d", len(expr.Children()))
	}
}

func TestExpr_AddChildToLeaf(t *testing.T) {
	err := window(0, 10).AddChild(window(20, 30))
	if !errors.Is(err, ErrChildOnLeaf) {
		t.Errorf("Expected ErrChildOnLeaf, got: %v", err)
	}
}

func TestExpr_AddChildToNot(t *testing.T) {
	err := Not(window(0, 10)).AddChild(window(20, 30))
	if !errors.Is(err, ErrChildOnNot) {
		t.Errorf("Expected ErrChildOnNot, got: %v", err)
	}
}

func TestExpr_String(t *testing.T) {
	expr := And(window(0, 10), Not(window(20, 30)))
	want := "And(Window[0, 10], Not(Window[20, 30]))"
	if got := expr.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
