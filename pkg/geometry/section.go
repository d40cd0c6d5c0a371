package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/cueform/pkg/cue"
)

// ErrOutOfRange reports a radius query outside the section or design. It is
// a contract violation by the caller, not a manufacturability finding.
var ErrOutOfRange = errors.New("position out of range")

// Section is one frustum-shaped segment of a cue. It assumes a valid input
// (Start.AxialIn < End.AxialIn); violated inputs are a validator concern and
// produce degenerate derived values here rather than panics.
type Section struct {
	Type  cue.SectionType
	Start Point
	End   Point
}

// NewSection builds a section from a flat record, halving the stored outer
// diameters into radii.
func NewSection(rec cue.SectionRecord) Section {
	return Section{
		Type:  rec.SectionType,
		Start: Point{AxialIn: rec.StartPositionIn, RadialMM: rec.OuterDiameterStart / 2},
		End:   Point{AxialIn: rec.EndPositionIn, RadialMM: rec.OuterDiameterEnd / 2},
	}
}

// Length returns the axial extent in inches.
func (s Section) Length() float64 { return s.End.AxialIn - s.Start.AxialIn }

// StartRadius returns the radius at the start of the section, mm.
func (s Section) StartRadius() float64 { return s.Start.RadialMM }

// EndRadius returns the radius at the end of the section, mm.
func (s Section) EndRadius() float64 { return s.End.RadialMM }

// TaperRate returns the change in radius per inch of length, mm/in.
// Zero-length sections report 0 rather than dividing by zero.
func (s Section) TaperRate() float64 {
	if s.Length() == 0 {
		return 0
	}
	return (s.EndRadius() - s.StartRadius()) / s.Length()
}

// TaperAngle returns the slope angle of the taper in degrees. The rate is
// converted from mm/in to a dimensionless slope before the arctangent so
// the result is a physically meaningful angle.
func (s Section) TaperAngle() float64 {
	if s.Length() == 0 {
		return 0
	}
	return math.Atan(s.TaperRate()/MMPerInch) * 180 / math.Pi
}

// RadiusAt linearly interpolates the radius at axial position x (inches).
// Positions outside [Start.AxialIn, End.AxialIn] are a caller error.
func (s Section) RadiusAt(x float64) (float64, error) {
	if x < s.Start.AxialIn || x > s.End.AxialIn {
		return 0, fmt.Errorf("position %g outside section [%g, %g]: %w",
			x, s.Start.AxialIn, s.End.AxialIn, ErrOutOfRange)
	}
	if s.Length() == 0 {
		return s.StartRadius(), nil
	}
	t := (x - s.Start.AxialIn) / s.Length()
	return s.StartRadius() + t*(s.EndRadius()-s.StartRadius()), nil
}

// SurfaceArea returns the lateral surface area in square inches, using the
// mean-radius-times-circumference approximation.
func (s Section) SurfaceArea() float64 {
	avgRadiusIn := (s.StartRadius() + s.EndRadius()) / 2 / MMPerInch
	return 2 * math.Pi * avgRadiusIn * s.Length()
}

// Volume returns the section volume in cubic inches using the exact
// frustum-of-cone formula.
func (s Section) Volume() float64 {
	r1 := s.StartRadius() / MMPerInch
	r2 := s.EndRadius() / MMPerInch
	h := s.Length()
	return math.Pi * h / 3 * (r1*r1 + r1*r2 + r2*r2)
}

// Midpoint returns the axial midpoint of the section in inches.
func (s Section) Midpoint() float64 {
	return (s.Start.AxialIn + s.End.AxialIn) / 2
}
