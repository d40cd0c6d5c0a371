package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/chazu/cueform/pkg/cue"
)

// Continuity checks adjacency of the section records: axial gaps, overlaps,
// and diameter jumps between consecutive sections. Records are re-sorted by
// start position first; caller order is not trusted.
func (c *Checker) Continuity(recs []cue.SectionRecord) []cue.Issue {
	if len(recs) < 2 {
		return nil
	}

	sorted := make([]cue.SectionRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartPositionIn < sorted[j].StartPositionIn
	})

	var issues []cue.Issue
	for i := 0; i+1 < len(sorted); i++ {
		curr, next := sorted[i], sorted[i+1]
		subject := fmt.Sprintf("%s->%s", curr.SectionType, next.SectionType)

		gap := next.StartPositionIn - curr.EndPositionIn
		if gap > c.cons.GapToleranceIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueGap,
				Subject:  subject,
				Measured: gap,
				Limit:    c.cons.GapToleranceIn,
				Unit:     "in",
			})
		}
		if gap < 0 {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueOverlap,
				Subject:  subject,
				Measured: gap,
				Limit:    0,
				Unit:     "in",
			})
		}

		if jump := math.Abs(curr.OuterDiameterEnd - next.OuterDiameterStart); jump > c.cons.DiameterJumpMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueDiameterJump,
				Subject:  subject,
				Measured: jump,
				Limit:    c.cons.DiameterJumpMM,
				Unit:     "mm",
			})
		}
	}
	return issues
}
