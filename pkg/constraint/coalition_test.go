package constraint

import (
	"testing"
)

func TestCoalition_IsSatisfied(t *testing.T) {
	c := NewCoalition(map[string]int{"LST": 2, "MST": 1})

	tests := []struct {
		name      string
		available map[string]int
		want      bool
	}{
		{"exact", map[string]int{"LST": 2, "MST": 1}, true},
		{"surplus", map[string]int{"LST": 5, "MST": 3, "SST": 1}, true},
		{"short one type", map[string]int{"LST": 1, "MST": 1}, false},
		{"missing type", map[string]int{"LST": 2}, false},
		{"empty", map[string]int{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsSatisfied(tt.available); got != tt.want {
				t.Errorf("IsSatisfied(%v) = %v, want %v", tt.available, got, tt.want)
			}
		})
	}
}

func TestCoalition_EmptyAlwaysSatisfied(t *testing.T) {
	c := NewCoalition(nil)
	if !c.IsSatisfied(map[string]int{}) {
		t.Error("Expected empty coalition to be satisfied by nothing")
	}
}

func TestCoalition_Deficit(t *testing.T) {
	c := NewCoalition(map[string]int{"LST": 3, "MST": 1})

	deficit := c.Deficit(map[string]int{"LST": 1, "MST": 2})
	if len(deficit) != 1 {
		t.Fatalf("Expected 1 deficit entry, got %v", deficit)
	}
	if deficit["LST"] != 2 {
		t.Errorf("Expected LST deficit 2, got %d", deficit["LST"])
	}
}

func TestCoalition_DeficitSatisfiedIsEmpty(t *testing.T) {
	c := SingleType("LST", 2)
	if deficit := c.Deficit(map[string]int{"LST": 4}); len(deficit) != 0 {
		t.Errorf("Expected no deficit, got %v", deficit)
	}
}

func TestCoalition_TotalRequired(t *testing.T) {
	c := NewCoalition(map[string]int{"LST": 2, "MST": 3})
	if total := c.TotalRequired(); total != 5 {
		t.Errorf("Expected total 5, got %d", total)
	}
}

func TestCoalition_RequirementFor(t *testing.T) {
	c := SingleType("LST", 2)

	if count, ok := c.RequirementFor("LST"); !ok || count != 2 {
		t.Errorf("Expected (2, true), got (%d, %v)", count, ok)
	}
	if _, ok := c.RequirementFor("MST"); ok {
		t.Error("Expected unknown type to report not required")
	}
}

func TestCoalition_DropsNonPositiveCounts(t *testing.T) {
	c := NewCoalition(map[string]int{"LST": 2, "MST": 0, "SST": -1})

	if _, ok := c.RequirementFor("MST"); ok {
		t.Error("Expected zero count to be dropped")
	}
	if _, ok := c.RequirementFor("SST"); ok {
		t.Error("Expected negative count to be dropped")
	}
}

func TestCoalition_String(t *testing.T) {
	c := NewCoalition(map[string]int{"MST": 1, "LST": 2})
	want := "Coalition(2xLST, 1xMST)"
	if got := c.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
