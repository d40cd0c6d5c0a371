package validate

import (
	"fmt"
	"math"

	"github.com/chazu/cueform/pkg/cue"
)

// Section validates the fields of a single section record in isolation:
// position ordering, diameter bounds, and the raw diameter taper rate.
func (c *Checker) Section(rec cue.SectionRecord) []cue.Issue {
	var issues []cue.Issue

	if rec.StartPositionIn >= rec.EndPositionIn {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueInvalidValue,
			Subject:  "start_position_in",
			Measured: rec.StartPositionIn,
			Limit:    rec.EndPositionIn,
			Unit:     "in",
			Detail:   "start position must be less than end position",
		})
	}
	if rec.StartPositionIn < 0 {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueInvalidValue,
			Subject:  "start_position_in",
			Measured: rec.StartPositionIn,
			Limit:    0,
			Unit:     "in",
			Detail:   "start position cannot be negative",
		})
	}

	diameters := []struct {
		field string
		value float64
	}{
		{"outer_diameter_start_mm", rec.OuterDiameterStart},
		{"outer_diameter_end_mm", rec.OuterDiameterEnd},
	}
	for _, d := range diameters {
		field, dia := d.field, d.value
		if dia <= 0 {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueInvalidValue,
				Subject:  field,
				Measured: dia,
				Limit:    0,
				Unit:     "mm",
				Detail:   "outer diameter must be positive",
			})
		}
		if dia > c.cons.AbsoluteMaxDiameterMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueDiameterTooLarge,
				Subject:  field,
				Measured: dia,
				Limit:    c.cons.AbsoluteMaxDiameterMM,
				Unit:     "mm",
			})
		}
	}

	// Taper rate on diameters; skipped for degenerate lengths, which the
	// position check above already reports.
	if length := rec.Length(); length > 0 {
		rate := (rec.OuterDiameterEnd - rec.OuterDiameterStart) / length
		if math.Abs(rate) > c.cons.MaxTaperRateMMPerIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueTaperTooSteep,
				Subject:  string(rec.SectionType),
				Measured: rate,
				Limit:    c.cons.MaxTaperRateMMPerIn,
				Unit:     "mm/in",
			})
		}
	}

	return issues
}

// SectionBounds validates the record against the dimensional envelope for
// its section type. Unknown types are skipped without an issue — the
// envelope table is deliberately permissive about vocabulary it has no
// entry for.
func (c *Checker) SectionBounds(rec cue.SectionRecord) []cue.Issue {
	bounds, ok := c.cons.SectionBounds[rec.SectionType]
	if !ok {
		return nil
	}

	var issues []cue.Issue
	length := rec.Length()
	if length < bounds.MinLengthIn {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueSectionTooShort,
			Subject:  string(rec.SectionType),
			Measured: length,
			Limit:    bounds.MinLengthIn,
			Unit:     "in",
		})
	}
	if length > bounds.MaxLengthIn {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueSectionTooLong,
			Subject:  string(rec.SectionType),
			Measured: length,
			Limit:    bounds.MaxLengthIn,
			Unit:     "in",
		})
	}

	diameters := []struct {
		label string
		value float64
	}{
		{"start", rec.OuterDiameterStart},
		{"end", rec.OuterDiameterEnd},
	}
	for _, d := range diameters {
		label, dia := d.label, d.value
		subject := fmt.Sprintf("%s %s diameter", rec.SectionType, label)
		if dia < bounds.MinDiameterMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueDiameterTooSmall,
				Subject:  subject,
				Measured: dia,
				Limit:    bounds.MinDiameterMM,
				Unit:     "mm",
			})
		}
		if dia > bounds.MaxDiameterMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueDiameterTooLarge,
				Subject:  subject,
				Measured: dia,
				Limit:    bounds.MaxDiameterMM,
				Unit:     "mm",
			})
		}
	}

	return issues
}
