package validate

import (
	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
)

// Checker runs rule validations against an immutable constraint set.
// A zero-allocation value once built; safe for concurrent use.
type Checker struct {
	cons *Constraints
}

// NewChecker returns a checker over the given constraints; nil selects the
// defaults.
func NewChecker(cons *Constraints) *Checker {
	if cons == nil {
		cons = DefaultConstraints()
	}
	return &Checker{cons: cons}
}

// Constraints exposes the rule set the checker was built with.
func (c *Checker) Constraints() *Constraints { return c.cons }

// Result is the merged outcome of a full validation run.
type Result struct {
	Valid  bool        `json:"valid"`
	Issues []cue.Issue `json:"issues"`
}

// Design runs every validator relevant to a complete design record and
// merges the issue lists: per-record field and dimensional checks, inlay
// checks, record continuity and sequencing, then manufacturing and
// tolerance checks over the assembled geometry.
func (c *Checker) Design(rec *cue.DesignRecord) Result {
	var issues []cue.Issue

	for _, s := range rec.Sections {
		issues = append(issues, c.Section(s)...)
		issues = append(issues, c.SectionBounds(s)...)
		for _, p := range s.InlayPatterns {
			issues = append(issues, c.Inlay(p)...)
		}
	}
	issues = append(issues, c.Continuity(rec.Sections)...)
	issues = append(issues, c.Sequence(rec.Sections)...)

	d := geometry.FromRecords(rec.Sections)
	issues = append(issues, c.Manufacturing(d)...)
	issues = append(issues, c.DiameterTolerance(d)...)
	issues = append(issues, c.TransitionSmoothness(d)...)

	return Result{Valid: len(issues) == 0, Issues: issues}
}
