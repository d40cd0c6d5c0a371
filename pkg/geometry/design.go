package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/chazu/cueform/pkg/cue"
)

// Continuity tolerances between adjacent sections.
const (
	gapToleranceIn     = 0.001 // axial gap/overlap tolerance, inches
	radiusToleranceMM  = 0.1   // radius step tolerance at a boundary, mm
	maxTaperAngleDeg   = 5.0   // steepest machinable taper
	minSectionRadiusMM = 5.0   // thinnest turnable stock
	maxSectionRadiusMM = 25.0  // largest stock the lathe accepts
)

// Design is an ordered assembly of sections representing one complete cue.
// Construction sorts by start position; caller-provided order is not
// trusted. Validity (continuity, sequencing, bounds) is established by the
// validators, not by construction.
type Design struct {
	sections []Section
}

// NewDesign assembles a design from sections, sorting them by start
// position.
func NewDesign(sections []Section) *Design {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.AxialIn < sorted[j].Start.AxialIn
	})
	return &Design{sections: sorted}
}

// FromRecords assembles a design directly from persistence records.
func FromRecords(recs []cue.SectionRecord) *Design {
	sections := make([]Section, 0, len(recs))
	for _, rec := range recs {
		sections = append(sections, NewSection(rec))
	}
	return NewDesign(sections)
}

// Sections returns the sections in axial order. The slice is shared; do not
// mutate it.
func (d *Design) Sections() []Section { return d.sections }

// TotalLength returns the overall length in inches.
func (d *Design) TotalLength() float64 {
	if len(d.sections) == 0 {
		return 0
	}
	return d.sections[len(d.sections)-1].End.AxialIn - d.sections[0].Start.AxialIn
}

// SectionsByType groups the sections by their type tag.
func (d *Design) SectionsByType() map[cue.SectionType][]Section {
	byType := make(map[cue.SectionType][]Section)
	for _, s := range d.sections {
		byType[s.Type] = append(byType[s.Type], s)
	}
	return byType
}

// SectionAt returns the section containing axial position x, or ok=false
// when x falls outside every section.
func (d *Design) SectionAt(x float64) (Section, bool) {
	for _, s := range d.sections {
		if s.Start.AxialIn <= x && x <= s.End.AxialIn {
			return s, true
		}
	}
	return Section{}, false
}

// RadiusAt returns the radius in mm at axial position x. Querying a
// position outside the design is a caller error.
func (d *Design) RadiusAt(x float64) (float64, error) {
	s, ok := d.SectionAt(x)
	if !ok {
		return 0, fmt.Errorf("position %g outside cue design: %w", x, ErrOutOfRange)
	}
	return s.RadiusAt(x)
}

// MaxRadius returns the largest radius across all sections, mm.
func (d *Design) MaxRadius() float64 {
	max := 0.0
	for _, s := range d.sections {
		max = math.Max(max, math.Max(s.StartRadius(), s.EndRadius()))
	}
	return max
}

// MinRadius returns the smallest radius across all sections, mm.
func (d *Design) MinRadius() float64 {
	if len(d.sections) == 0 {
		return 0
	}
	min := math.Inf(1)
	for _, s := range d.sections {
		min = math.Min(min, math.Min(s.StartRadius(), s.EndRadius()))
	}
	return min
}

// AverageRadius returns the mean of the per-section average radii, mm.
func (d *Design) AverageRadius() float64 {
	if len(d.sections) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range d.sections {
		sum += (s.StartRadius() + s.EndRadius()) / 2
	}
	return sum / float64(len(d.sections))
}

// transition names the boundary between two adjacent sections for issue
// reporting.
func transition(a, b Section) string {
	return fmt.Sprintf("%s->%s", a.Type, b.Type)
}

// ValidateContinuity checks that adjacent sections abut without axial gaps
// and without radius steps beyond tolerance. Findings are reported, never
// raised: the returned slice is empty for a continuous design.
func (d *Design) ValidateContinuity() []cue.Issue {
	var issues []cue.Issue
	for i := 0; i+1 < len(d.sections); i++ {
		curr, next := d.sections[i], d.sections[i+1]

		if gap := math.Abs(curr.End.AxialIn - next.Start.AxialIn); gap > gapToleranceIn {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueGap,
				Subject:  transition(curr, next),
				Measured: gap,
				Limit:    gapToleranceIn,
				Unit:     "in",
			})
		}
		if jump := math.Abs(curr.EndRadius() - next.StartRadius()); jump > radiusToleranceMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueRadiusJump,
				Subject:  transition(curr, next),
				Measured: jump,
				Limit:    radiusToleranceMM,
				Unit:     "mm",
			})
		}
	}
	return issues
}

// ValidateManufacturing checks each section against the fixed lathe limits:
// taper angle, minimum and maximum radius. These bounds are engineering
// constants of the process, not per-call knobs.
func (d *Design) ValidateManufacturing() []cue.Issue {
	var issues []cue.Issue
	for _, s := range d.sections {
		if angle := s.TaperAngle(); math.Abs(angle) > maxTaperAngleDeg {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueTaperTooSteep,
				Subject:  string(s.Type),
				Measured: angle,
				Limit:    maxTaperAngleDeg,
				Unit:     "deg",
			})
		}
		if min := math.Min(s.StartRadius(), s.EndRadius()); min < minSectionRadiusMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueRadiusTooSmall,
				Subject:  string(s.Type),
				Measured: min,
				Limit:    minSectionRadiusMM,
				Unit:     "mm",
			})
		}
		if max := math.Max(s.StartRadius(), s.EndRadius()); max > maxSectionRadiusMM {
			issues = append(issues, cue.Issue{
				Kind:     cue.IssueRadiusTooLarge,
				Subject:  string(s.Type),
				Measured: max,
				Limit:    maxSectionRadiusMM,
				Unit:     "mm",
			})
		}
	}
	return issues
}
