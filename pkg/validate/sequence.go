package validate

import (
	"fmt"
	"sort"

	"github.com/chazu/cueform/pkg/cue"
)

// Sequence checks that the section types, ordered by start position, match
// the canonical physical ordering position by position. Comparison stops
// when the shorter of the two sequences runs out; partial designs that
// follow the canonical prefix are clean.
func (c *Checker) Sequence(recs []cue.SectionRecord) []cue.Issue {
	if len(recs) == 0 {
		return nil
	}

	sorted := make([]cue.SectionRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartPositionIn < sorted[j].StartPositionIn
	})

	var issues []cue.Issue
	for i, expected := range c.cons.Sequence {
		if i >= len(sorted) {
			break
		}
		if actual := sorted[i].SectionType; actual != expected {
			issues = append(issues, cue.Issue{
				Kind:    cue.IssueSequenceMismatch,
				Subject: fmt.Sprintf("section %d", i+1),
				Detail:  fmt.Sprintf("should be %q but found %q", expected, actual),
			})
		}
	}
	return issues
}
