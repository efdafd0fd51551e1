package engine

import (
	"testing"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

func TestComputeEST(t *testing.T) {
	windows := []interval.Interval{
		interval.MustNew(0, 5),
		interval.MustNew(20, 50),
	}

	tests := []struct {
		name    string
		horizon interval.Interval
		size    float64
		want    float64
		ok      bool
	}{
		{"skips short first window", interval.MustNew(0, 100), 10, 20, true},
		{"first window fits", interval.MustNew(0, 100), 3, 0, true},
		{"horizon clips window start", interval.MustNew(30, 100), 10, 30, true},
		{"window before horizon skipped", interval.MustNew(10, 100), 4, 20, true},
		{"nothing fits", interval.MustNew(0, 100), 40, 0, false},
		{"horizon past all windows", interval.MustNew(60, 100), 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := computeEST(windows, tt.horizon, tt.size)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("computeEST = %g/%v, want %g/%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestComputeEST_EmptyWindows(t *testing.T) {
	if _, ok := computeEST(nil, interval.MustNew(0, 100), 1); ok {
		t.Error("Expected no EST without windows")
	}
}

func TestComputeDeadline(t *testing.T) {
	windows := []interval.Interval{
		interval.MustNew(0, 30),
		interval.MustNew(50, 80),
	}

	tests := []struct {
		name    string
		horizon interval.Interval
		size    float64
		want    float64
		ok      bool
	}{
		{"last window wins", interval.MustNew(0, 100), 10, 70, true},
		{"horizon clips last window", interval.MustNew(0, 60), 10, 50, true},
		{"horizon excludes last window", interval.MustNew(0, 45), 10, 20, true},
		{"nothing fits", interval.MustNew(0, 100), 35, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := computeDeadline(windows, tt.horizon, tt.size)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("computeDeadline = %g/%v, want %g/%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestComputeFlexibility(t *testing.T) {
	windows := []interval.Interval{
		interval.MustNew(0, 10),
		interval.MustNew(20, 50),
	}
	horizon := interval.MustNew(0, 100)

	// 10/10 from the first window plus 30/10 from the second.
	if got := computeFlexibility(windows, horizon, 10); got != 4 {
		t.Errorf("Expected flexibility 4, got %g", got)
	}
	// Only the second window fits size 15.
	if got := computeFlexibility(windows, horizon, 15); got != 2 {
		t.Errorf("Expected flexibility 2, got %g", got)
	}
	// Nothing fits size 40.
	if got := computeFlexibility(windows, horizon, 40); got != 0 {
		t.Errorf("Expected flexibility 0, got %g", got)
	}
	// A shrunken horizon reduces slack.
	if got := computeFlexibility(windows, interval.MustNew(25, 100), 10); got != 2.5 {
		t.Errorf("Expected flexibility 2.5, got %g", got)
	}
}
