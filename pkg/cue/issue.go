package cue

import "fmt"

// IssueKind enumerates the rule violations a validator can report.
type IssueKind string

const (
	IssueGap                  IssueKind = "gap"
	IssueOverlap              IssueKind = "overlap"
	IssueRadiusJump           IssueKind = "radius_jump"
	IssueDiameterJump         IssueKind = "diameter_jump"
	IssueTaperTooSteep        IssueKind = "taper_too_steep"
	IssueRadiusTooSmall       IssueKind = "radius_too_small"
	IssueRadiusTooLarge       IssueKind = "radius_too_large"
	IssueDiameterTooSmall     IssueKind = "diameter_too_small"
	IssueDiameterTooLarge     IssueKind = "diameter_too_large"
	IssueSectionTooShort      IssueKind = "section_too_short"
	IssueSectionTooLong       IssueKind = "section_too_long"
	IssueDesignTooLong        IssueKind = "design_too_long"
	IssueDuplicateSection     IssueKind = "duplicate_section"
	IssueSequenceMismatch     IssueKind = "sequence_mismatch"
	IssueMissingField         IssueKind = "missing_field"
	IssueInvalidValue         IssueKind = "invalid_value"
	IssueExcessiveTaper       IssueKind = "excessive_taper"
	IssueAbruptDiameterChange IssueKind = "abrupt_diameter_change"
	IssueNotAnObject          IssueKind = "not_an_object"
)

// Issue is a single structured validation finding. Issues are values, not
// errors: a validation run collects every violation it can see and returns
// them all, leaving accept/reject decisions to the caller.
//
// Subject names what the finding is about — a section type, a transition
// ("forearm->handle"), or a field name. Measured and Limit carry the
// offending value and the bound it violated, in Unit; they are zero for
// findings with no meaningful measurement (missing fields, bad enum values).
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Subject  string    `json:"subject"`
	Measured float64   `json:"measured"`
	Limit    float64   `json:"limit"`
	Unit     string    `json:"unit,omitempty"`
	Detail   string    `json:"detail,omitempty"`
}

// String renders the issue for human consumption. Formatting is a
// presentation convenience only; machine consumers should use the fields.
func (i Issue) String() string {
	if i.Unit == "" {
		if i.Detail != "" {
			return fmt.Sprintf("[%s] %s: %s", i.Kind, i.Subject, i.Detail)
		}
		return fmt.Sprintf("[%s] %s", i.Kind, i.Subject)
	}
	return fmt.Sprintf("[%s] %s: %.2f%s (limit %.2f%s)",
		i.Kind, i.Subject, i.Measured, i.Unit, i.Limit, i.Unit)
}
