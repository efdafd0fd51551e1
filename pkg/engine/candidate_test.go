package engine

import (
	"testing"

	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

func TestCandidate_Classification(t *testing.T) {
	threshold := 5.0

	imp := impossible("x")
	if !imp.IsImpossible() || imp.IsEndangered(threshold) || imp.IsFlexible(threshold) {
		t.Error("Expected impossible candidate to be neither endangered nor flexible")
	}

	endangered := possible("e", 0, 10, 4.9, block.NewBasicTask("e", 10))
	if !endangered.IsEndangered(threshold) || endangered.IsFlexible(threshold) {
		t.Error("Expected flexibility 4.9 to classify endangered at threshold 5")
	}

	boundary := possible("b", 0, 10, 5.0, block.NewBasicTask("b", 10))
	if !boundary.IsFlexible(threshold) || boundary.IsEndangered(threshold) {
		t.Error("Expected flexibility 5.0 to classify flexible at threshold 5")
	}

	above := possible("a", 0, 10, 5.1, block.NewBasicTask("a", 10))
	if !above.IsFlexible(threshold) {
		t.Error("Expected flexibility 5.1 to classify flexible")
	}
}

func TestCandidate_Interval(t *testing.T) {
	c := possible("c", 15, 90, 3, block.NewBasicTask("c", 25))
	if got := c.Interval(); got != interval.MustNew(15, 40) {
		t.Errorf("Expected [15, 40], got %v", got)
	}
}

func TestCandidate_Accessors(t *testing.T) {
	c := possible("c", 15, 70, 3, block.NewBasicTask("c", 25))

	if est, ok := c.EST(); !ok || est != 15 {
		t.Errorf("Expected EST 15, got %g/%v", est, ok)
	}
	if deadline, ok := c.Deadline(); !ok || deadline != 70 {
		t.Errorf("Expected deadline 70, got %g/%v", deadline, ok)
	}
	if c.Flexibility() != 3 {
		t.Errorf("Expected flexibility 3, got %g", c.Flexibility())
	}

	imp := impossible("x")
	if _, ok := imp.EST(); ok {
		t.Error("Expected no EST on impossible candidate")
	}
}
