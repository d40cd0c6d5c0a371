package validate

import (
	"fmt"
	"math"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
)

// DiameterTolerance flags sections whose diameter change per inch exceeds
// what a single turning pass holds to tolerance.
func (c *Checker) DiameterTolerance(d *geometry.Design) []cue.Issue {
	var issues []cue.Issue
	for _, s := range d.Sections() {
		if s.Length() <= 0 {
			continue
		}
		diameterChange := math.Abs(s.EndRadius()-s.StartRadius()) * 2
		taperPerInch := diameterChange / s.Length()
		if taperPerInch > c.cons.MaxDiameterTaperPerIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueExcessiveTaper,
				Subject:  string(s.Type),
				Measured: taperPerInch,
				Limit:    c.cons.MaxDiameterTaperPerIn,
				Unit:     "mm/in",
			})
		}
	}
	return issues
}

// TransitionSmoothness flags section boundaries whose diameters differ by
// more than the machining tolerance allows to blend out.
func (c *Checker) TransitionSmoothness(d *geometry.Design) []cue.Issue {
	sections := d.Sections()
	if len(sections) < 2 {
		return nil
	}

	limit := c.cons.DiameterToleranceMM * 2
	var issues []cue.Issue
	for i := 0; i+1 < len(sections); i++ {
		curr, next := sections[i], sections[i+1]
		diff := math.Abs(curr.EndRadius()*2 - next.StartRadius()*2)
		if diff > limit {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueAbruptDiameterChange,
				Subject:  fmt.Sprintf("%s->%s", curr.Type, next.Type),
				Measured: diff,
				Limit:    limit,
				Unit:     "mm",
			})
		}
	}
	return issues
}
