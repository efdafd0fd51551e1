package interval

import (
	"math"
	"testing"
)

func TestNew_RejectsInvertedBounds(t *testing.T) {
	if _, err := New(10, 5); err == nil {
		t.Fatal("Expected error for start > end, got nil")
	}
}

func TestNew_RejectsNaN(t *testing.T) {
	if _, err := New(math.NaN(), 5); err == nil {
		t.Fatal("Expected error for NaN start, got nil")
	}
	if _, err := New(0, math.NaN()); err == nil {
		t.Fatal("Expected error for NaN end, got nil")
	}
}

func TestNew_AllowsPointInterval(t *testing.T) {
	iv, err := New(5, 5)
	if err != nil {
		t.Fatalf("Expected no error for point interval, got: %v", err)
	}
	if iv.Duration() != 0 {
		t.Errorf("Expected zero duration, got %g", iv.Duration())
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", MustNew(0, 10), MustNew(20, 30), false},
		{"partial overlap", MustNew(0, 15), MustNew(10, 30), true},
		{"containment", MustNew(0, 100), MustNew(20, 30), true},
		{"touching endpoints", MustNew(0, 10), MustNew(10, 20), true},
		{"identical", MustNew(5, 15), MustNew(5, 15), true},
		{"point inside", MustNew(5, 5), MustNew(0, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestInterval_Intersection(t *testing.T) {
	a := MustNew(0, 15)
	b := MustNew(10, 30)

	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("Expected intersection, got none")
	}
	if got != MustNew(10, 15) {
		t.Errorf("Expected [10, 15], got %v", got)
	}
}

func TestInterval_Intersection_Disjoint(t *testing.T) {
	a := MustNew(0, 10)
	b := MustNew(20, 30)

	if _, ok := a.Intersection(b); ok {
		t.Error("Expected no intersection for disjoint intervals")
	}
}

func TestInterval_Intersection_Touching(t *testing.T) {
	a := MustNew(0, 50)
	b := MustNew(50, 100)

	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("Expected point intersection, got none")
	}
	if got != MustNew(50, 50) {
		t.Errorf("Expected degenerate [50, 50], got %v", got)
	}
}

func TestInterval_Contains(t *testing.T) {
	iv := MustNew(10, 20)

	for _, pos := range []float64{10, 15, 20} {
		if !iv.Contains(pos) {
			t.Errorf("Expected %v to contain %g", iv, pos)
		}
	}
	for _, pos := range []float64{9.999, 20.001} {
		if iv.Contains(pos) {
			t.Errorf("Expected %v not to contain %g", iv, pos)
		}
	}
}

func TestInterval_CanFit(t *testing.T) {
	iv := MustNew(10, 20)

	if !iv.CanFit(10, 10) {
		t.Error("Expected exact fit to succeed")
	}
	if !iv.CanFit(12, 5) {
		t.Error("Expected interior fit to succeed")
	}
	if iv.CanFit(15, 10) {
		t.Error("Expected fit past the end to fail")
	}
	if iv.CanFit(5, 5) {
		t.Error("Expected fit before the start to fail")
	}
}

func TestInterval_Duration(t *testing.T) {
	if d := MustNew(2.5, 7.5).Duration(); d != 5 {
		t.Errorf("Expected duration 5, got %g", d)
	}
}

func TestInterval_Shift(t *testing.T) {
	if got := MustNew(10, 20).Shift(5); got != MustNew(15, 25) {
		t.Errorf("Expected [15, 25], got %v", got)
	}
	if got := MustNew(10, 20).Shift(-10); got != MustNew(0, 10) {
		t.Errorf("Expected [0, 10], got %v", got)
	}
}
