package validate

import (
	"testing"

	"github.com/chazu/cueform/pkg/cue"
)

func TestContinuityClean(t *testing.T) {
	c := NewChecker(nil)
	if issues := c.Continuity(validSections()); len(issues) != 0 {
		t.Errorf("abutting sections produced issues: %v", issues)
	}
}

func TestContinuityGap(t *testing.T) {
	c := NewChecker(nil)
	recs := []cue.SectionRecord{
		rec(cue.SectionForearm, 0, 12, 20, 22),
		rec(cue.SectionHandle, 12.5, 22, 22, 24),
	}
	issues := c.Continuity(recs)
	if countKind(issues, cue.IssueGap) != 1 {
		t.Fatalf("0.5in gap produced %v, want one gap issue", issues)
	}
	if issues[0].Subject != "forearm->handle" {
		t.Errorf("gap subject = %q, want forearm->handle", issues[0].Subject)
	}

	// Within the 0.01in record tolerance.
	recs[1].StartPositionIn = 12.005
	if issues := c.Continuity(recs); hasKind(issues, cue.IssueGap) {
		t.Errorf("0.005in gap wrongly flagged: %v", issues)
	}
}

func TestContinuityOverlap(t *testing.T) {
	c := NewChecker(nil)
	recs := []cue.SectionRecord{
		rec(cue.SectionForearm, 0, 12, 20, 22),
		rec(cue.SectionHandle, 11, 22, 22, 24),
	}
	if issues := c.Continuity(recs); !hasKind(issues, cue.IssueOverlap) {
		t.Errorf("1in overlap not flagged: %v", issues)
	}
}

func TestContinuityDiameterJump(t *testing.T) {
	c := NewChecker(nil)
	recs := []cue.SectionRecord{
		rec(cue.SectionForearm, 0, 12, 20, 22),
		rec(cue.SectionHandle, 12, 22, 23.5, 24), // 1.5mm step
	}
	if issues := c.Continuity(recs); !hasKind(issues, cue.IssueDiameterJump) {
		t.Errorf("1.5mm diameter jump not flagged: %v", issues)
	}

	// Exactly 1.0mm is within tolerance.
	recs[1].OuterDiameterStart = 23
	if issues := c.Continuity(recs); hasKind(issues, cue.IssueDiameterJump) {
		t.Errorf("1.0mm jump wrongly flagged: %v", issues)
	}
}

func TestContinuitySortsByPosition(t *testing.T) {
	c := NewChecker(nil)
	// Same abutting pair, given out of order.
	recs := []cue.SectionRecord{
		rec(cue.SectionHandle, 12, 22, 22, 24),
		rec(cue.SectionForearm, 0, 12, 20, 22),
	}
	if issues := c.Continuity(recs); len(issues) != 0 {
		t.Errorf("out-of-order records produced issues: %v", issues)
	}
}

func TestContinuitySingleRecord(t *testing.T) {
	c := NewChecker(nil)
	if issues := c.Continuity(validSections()[:1]); issues != nil {
		t.Errorf("single record produced issues: %v", issues)
	}
}
