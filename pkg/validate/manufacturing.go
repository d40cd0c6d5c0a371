package validate

import (
	"math"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
)

// Manufacturing checks an assembled design against the lathe limits: taper
// angle, radius envelope, per-section and total length, and section-type
// uniqueness within one design.
func (c *Checker) Manufacturing(d *geometry.Design) []cue.Issue {
	var issues []cue.Issue

	for _, s := range d.Sections() {
		if angle := s.TaperAngle(); math.Abs(angle) > c.cons.MaxTaperAngleDeg {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueTaperTooSteep,
				Subject:  string(s.Type),
				Measured: angle,
				Limit:    c.cons.MaxTaperAngleDeg,
				Unit:     "deg",
			})
		}
		if min := math.Min(s.StartRadius(), s.EndRadius()); min < c.cons.MinRadiusMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueRadiusTooSmall,
				Subject:  string(s.Type),
				Measured: min,
				Limit:    c.cons.MinRadiusMM,
				Unit:     "mm",
			})
		}
		if max := math.Max(s.StartRadius(), s.EndRadius()); max > c.cons.MaxRadiusMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueRadiusTooLarge,
				Subject:  string(s.Type),
				Measured: max,
				Limit:    c.cons.MaxRadiusMM,
				Unit:     "mm",
			})
		}
		if length := s.Length(); length < c.cons.MinSectionLengthIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueSectionTooShort,
				Subject:  string(s.Type),
				Measured: length,
				Limit:    c.cons.MinSectionLengthIn,
				Unit:     "in",
			})
		} else if length > c.cons.MaxSectionLengthIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueSectionTooLong,
				Subject:  string(s.Type),
				Measured: length,
				Limit:    c.cons.MaxSectionLengthIn,
				Unit:     "in",
			})
		}
	}

	if total := d.TotalLength(); total > c.cons.MaxTotalLengthIn {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueDesignTooLong,
			Subject:  "design",
			Measured: total,
			Limit:    c.cons.MaxTotalLengthIn,
			Unit:     "in",
		})
	}

	seen := make(map[cue.SectionType]bool)
	reported := make(map[cue.SectionType]bool)
	for _, s := range d.Sections() {
		if seen[s.Type] && !reported[s.Type] {
			issues = append(issues, cue.Issue{
				Kind:    cue.IssueDuplicateSection,
				Subject: string(s.Type),
				Detail:  "section type appears more than once",
			})
			reported[s.Type] = true
		}
		seen[s.Type] = true
	}

	return issues
}
