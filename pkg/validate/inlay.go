package validate

import (
	"fmt"

	"github.com/chazu/cueform/pkg/cue"
)

// Inlay validates one inlay pattern: required fields, vocabulary membership,
// repeat bounds, and the optional nested geometric definition and material
// assignment. A missing required field suppresses only that field's
// dependent checks; everything else is still evaluated.
func (c *Checker) Inlay(p cue.InlayPattern) []cue.Issue {
	var issues []cue.Issue

	missing := func(field string) cue.Issue {
		return cue.Issue{
			Kind:    cue.IssueMissingField,
			Subject: field,
			Detail:  "required field is missing",
		}
	}

	if p.PatternID == "" {
		issues = append(issues, missing("pattern_id"))
	}
	if p.PatternCategory == "" {
		issues = append(issues, missing("pattern_category"))
	} else if !p.PatternCategory.Valid() {
		issues = append(issues, cue.Issue{
			Kind:    cue.IssueInvalidValue,
			Subject: "pattern_category",
			Detail:  fmt.Sprintf("unknown category %q", p.PatternCategory),
		})
	}
	if p.PatternStyle == "" {
		issues = append(issues, missing("pattern_style"))
	} else if !p.PatternStyle.Valid() {
		issues = append(issues, cue.Issue{
			Kind:    cue.IssueInvalidValue,
			Subject: "pattern_style",
			Detail:  fmt.Sprintf("unknown style %q", p.PatternStyle),
		})
	}

	// Zero means unsupplied and defaults to one repetition.
	if rc := p.RepeatCount; rc != 0 && (rc < c.cons.MinRepeatCount || rc > c.cons.MaxRepeatCount) {
		issues = append(issues, cue.Issue{
			Kind:     cue.IssueInvalidValue,
			Subject:  "repeat_count",
			Measured: float64(rc),
			Limit:    float64(c.cons.MaxRepeatCount),
			Detail:   fmt.Sprintf("must be %d-%d", c.cons.MinRepeatCount, c.cons.MaxRepeatCount),
		})
	}

	if p.GeometricDefinition != nil {
		issues = append(issues, c.geometricDefinition(*p.GeometricDefinition)...)
	}
	if p.MaterialAssignment != nil {
		issues = append(issues, c.materialAssignment(*p.MaterialAssignment)...)
	}

	return issues
}

// geometricDefinition checks the pocket geometry: the primitive kind must
// be known, and the loosely-typed sub-payloads must be structured objects
// rather than scalars when present.
func (c *Checker) geometricDefinition(g cue.GeometricDefinition) []cue.Issue {
	var issues []cue.Issue

	if !g.GeometryType.Valid() {
		issues = append(issues, cue.Issue{
			Kind:    cue.IssueInvalidValue,
			Subject: "geometry_type",
			Detail:  fmt.Sprintf("unknown geometry type %q", g.GeometryType),
		})
	}

	objects := []struct {
		field string
		value any
	}{
		{"dimensions_mm", g.DimensionsMM},
		{"orientation", g.Orientation},
		{"positioning", g.Positioning},
	}
	for _, o := range objects {
		if o.value == nil {
			continue
		}
		if _, ok := o.value.(map[string]any); !ok {
			issues = append(issues, cue.Issue{
				Kind:    cue.IssueNotAnObject,
				Subject: o.field,
				Detail:  "must be an object",
			})
		}
	}

	return issues
}

// materialAssignment checks the base/inlay material pairing and the
// optional contrast and finish attributes.
func (c *Checker) materialAssignment(m cue.MaterialAssignment) []cue.Issue {
	var issues []cue.Issue

	materials := []struct {
		field string
		value cue.InlayMaterial
	}{
		{"base_material", m.BaseMaterial},
		{"inlay_material", m.InlayMaterial},
	}
	for _, mat := range materials {
		if mat.value == "" {
			issues = append(issues, cue.Issue{
				Kind:    cue.IssueMissingField,
				Subject: mat.field,
				Detail:  "required field is missing",
			})
		} else if !mat.value.Valid() {
			issues = append(issues, cue.Issue{
				Kind:    cue.IssueInvalidValue,
				Subject: mat.field,
				Detail:  fmt.Sprintf("unknown material %q", mat.value),
			})
		}
	}

	if m.ContrastLevel != "" && !m.ContrastLevel.Valid() {
		issues = append(issues, cue.Issue{
			Kind:    cue.IssueInvalidValue,
			Subject: "contrast_level",
			Detail:  fmt.Sprintf("unknown contrast level %q", m.ContrastLevel),
		})
	}
	if m.FinishType != "" && !m.FinishType.Valid() {
		issues = append(issues, cue.Issue{
			Kind:    cue.IssueInvalidValue,
			Subject: "finish_type",
			Detail:  fmt.Sprintf("unknown finish type %q", m.FinishType),
		})
	}

	return issues
}
