package validate

import (
	"testing"

	"github.com/chazu/cueform/pkg/cue"
)

func TestSequenceCanonical(t *testing.T) {
	c := NewChecker(nil)
	if issues := c.Sequence(validSections()); len(issues) != 0 {
		t.Errorf("canonical sequence produced issues: %v", issues)
	}
}

func TestSequenceCanonicalPrefix(t *testing.T) {
	c := NewChecker(nil)
	// Partial design following the canonical prefix is clean.
	recs := []cue.SectionRecord{
		rec(cue.SectionJoint, 0, 2, 19, 19),
		rec(cue.SectionForearm, 2, 14, 19, 24),
	}
	if issues := c.Sequence(recs); len(issues) != 0 {
		t.Errorf("canonical prefix produced issues: %v", issues)
	}
}

func TestSequenceMismatches(t *testing.T) {
	c := NewChecker(nil)
	// forearm, handle, joint: every position disagrees with joint, forearm,
	// handle.
	recs := []cue.SectionRecord{
		rec(cue.SectionForearm, 0, 12, 20, 22),
		rec(cue.SectionHandle, 12, 22, 22, 24),
		rec(cue.SectionJoint, 22, 24, 24, 24),
	}
	issues := c.Sequence(recs)
	if countKind(issues, cue.IssueSequenceMismatch) != 3 {
		t.Fatalf("got %v, want three sequence mismatches", issues)
	}
	if issues[0].Subject != "section 1" {
		t.Errorf("first mismatch subject = %q, want section 1", issues[0].Subject)
	}
}

func TestSequenceOrdersByPosition(t *testing.T) {
	c := NewChecker(nil)
	// Records given out of storage order but canonically placed on the axis.
	recs := []cue.SectionRecord{
		rec(cue.SectionForearm, 2, 14, 19, 24),
		rec(cue.SectionJoint, 0, 2, 19, 19),
	}
	if issues := c.Sequence(recs); len(issues) != 0 {
		t.Errorf("axially canonical records produced issues: %v", issues)
	}
}

func TestSequenceEmpty(t *testing.T) {
	c := NewChecker(nil)
	if issues := c.Sequence(nil); issues != nil {
		t.Errorf("empty input produced issues: %v", issues)
	}
}
