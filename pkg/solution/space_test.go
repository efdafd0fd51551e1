package solution

import (
	"testing"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

func TestSpace_SetAndIntervals(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(0, 10), interval.MustNew(50, 60)))

	set, ok := s.Intervals("t1")
	if !ok || set.Len() != 2 {
		t.Fatalf("Expected 2 intervals, got %v / %v", set, ok)
	}
	if _, ok := s.Intervals("missing"); ok {
		t.Error("Expected unknown task to report not present")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 task, got %d", s.Len())
	}
}

func TestSpace_AddMerges(t *testing.T) {
	s := NewSpace()
	s.Add("t1", interval.MustNew(0, 10))
	s.Add("t1", interval.MustNew(5, 20))

	set, _ := s.Intervals("t1")
	if set.Len() != 1 || set.At(0) != interval.MustNew(0, 20) {
		t.Errorf("Expected merged [0, 20], got %v", set)
	}
}

func TestSpace_ContainsPosition(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(0, 10)))
	s.Set("t2", interval.NewSet(interval.MustNew(50, 60)))

	if !s.ContainsPositionFor("t1", 5) {
		t.Error("Expected t1 to contain 5")
	}
	if s.ContainsPositionFor("t1", 55) {
		t.Error("Expected t1 not to contain 55")
	}
	if !s.ContainsPosition(55) {
		t.Error("Expected some task to contain 55")
	}
	if s.ContainsPosition(30) {
		t.Error("Expected no task to contain 30")
	}
	if s.ContainsPositionFor("missing", 5) {
		t.Error("Expected unknown task to contain nothing")
	}
}

func TestSpace_CanPlace(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(10, 40)))

	if !s.CanPlace("t1", 10, 30) {
		t.Error("Expected exact fit to succeed")
	}
	if !s.CanPlace("t1", 20, 10) {
		t.Error("Expected interior fit to succeed")
	}
	if s.CanPlace("t1", 30, 20) {
		t.Error("Expected overrun to fail")
	}
	if s.CanPlace("t1", 0, 5) {
		t.Error("Expected position outside intervals to fail")
	}
	if !s.CanPlaceInterval("t1", interval.MustNew(15, 35)) {
		t.Error("Expected contained interval to be placeable")
	}
}

func TestSpace_FindIntervalContaining(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(0, 10), interval.MustNew(50, 60)))
	s.Set("t2", interval.NewSet(interval.MustNew(55, 70)))

	iv, ok := s.FindIntervalContainingFor("t1", 55)
	if !ok || iv != interval.MustNew(50, 60) {
		t.Errorf("Expected [50, 60], got %v / %v", iv, ok)
	}
	if _, ok := s.FindIntervalContainingFor("t1", 30); ok {
		t.Error("Expected no interval at 30")
	}

	all := s.FindIntervalContaining(55)
	if len(all) != 2 {
		t.Errorf("Expected 2 tasks containing 55, got %v", all)
	}
}

func TestSpace_Capacity(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(0, 10), interval.MustNew(50, 65)))
	s.Set("t2", interval.NewSet(interval.MustNew(0, 5)))

	if c := s.Capacity("t1"); c != 25 {
		t.Errorf("Expected capacity 25, got %g", c)
	}
	if c := s.Capacity("missing"); c != 0 {
		t.Errorf("Expected zero capacity for unknown task, got %g", c)
	}
	if c := s.TotalCapacity(); c != 30 {
		t.Errorf("Expected total capacity 30, got %g", c)
	}
}

func TestSpace_FindEarliestFit(t *testing.T) {
	s := NewSpace()
	s.Set("t1", interval.NewSet(interval.MustNew(0, 5), interval.MustNew(20, 50)))
	s.Set("t2", interval.NewSet(interval.MustNew(10, 18)))

	// For t1 the first interval is too small for size 10.
	if start, ok := s.FindEarliestFitFor("t1", 10); !ok || start != 20 {
		t.Errorf("Expected fit at 20, got %g / %v", start, ok)
	}
	if start, ok := s.FindEarliestFitFor("t1", 3); !ok || start != 0 {
		t.Errorf("Expected fit at 0, got %g / %v", start, ok)
	}
	if _, ok := s.FindEarliestFitFor("t2", 10); ok {
		t.Error("Expected no fit for oversized task")
	}

	// Across tasks, t2 offers the earliest fit for size 8.
	if start, ok := s.FindEarliestFit(8); !ok || start != 10 {
		t.Errorf("Expected earliest fit 10, got %g / %v", start, ok)
	}
	if start, ok := s.FindEarliestFit(3); !ok || start != 0 {
		t.Errorf("Expected earliest fit 0, got %g / %v", start, ok)
	}
	if _, ok := s.FindEarliestFit(100); ok {
		t.Error("Expected no fit anywhere for size 100")
	}
}

func TestSpace_TaskIDsSorted(t *testing.T) {
	s := NewSpace()
	s.Set("b", interval.Set{})
	s.Set("a", interval.Set{})

	ids := s.TaskIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Expected [a b], got %v", ids)
	}
}
