package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/cueform/pkg/geom2"
)

// Stateless operations over assembled designs. Every function here assumes
// a geometrically valid design; feeding an invalid one (overlaps, gaps)
// yields well-defined but possibly nonsensical numbers. Validate first when
// guarantees are needed.

const (
	profileSteps       = 50 // subdivisions per section in the outer profile
	crossSectionPoints = 64 // vertices of the cross-section polygon

	// DefaultDensity approximates ebony, g/cm³.
	DefaultDensity = 1.2

	cm3PerIn3     = 16.387
	gramsPerOunce = 28.3495
)

// Centerline returns the degenerate 1D axis of the design as a polyline with
// consecutive duplicate points collapsed.
func Centerline(d *Design) geom2.Polyline {
	var line geom2.Polyline
	for _, s := range d.Sections() {
		for _, x := range []float64{s.Start.AxialIn, s.End.AxialIn} {
			p := r2.Vec{X: x, Y: 0}
			if n := len(line); n == 0 || line[n-1] != p {
				line = append(line, p)
			}
		}
	}
	return line
}

// OuterProfile returns the closed profile curve in the axial/radius plane:
// the taper edge traced forward across all sections, then backward, each
// section sampled at fixed resolution so piecewise-linear tapers still
// render as dense curves.
func OuterProfile(d *Design) geom2.Polyline {
	sections := d.Sections()
	line := make(geom2.Polyline, 0, 2*(profileSteps+1)*len(sections))

	for _, s := range sections {
		for i := 0; i <= profileSteps; i++ {
			t := float64(i) / profileSteps
			line = append(line, r2.Vec{
				X: s.Start.AxialIn + t*s.Length(),
				Y: s.StartRadius() + t*(s.EndRadius()-s.StartRadius()),
			})
		}
	}
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		for j := 0; j <= profileSteps; j++ {
			t := float64(j) / profileSteps
			line = append(line, r2.Vec{
				X: s.End.AxialIn - t*s.Length(),
				Y: s.EndRadius() - t*(s.EndRadius()-s.StartRadius()),
			})
		}
	}
	return line
}

// CrossSection returns the cross-section at axial position x as a regular
// polygon in the plane perpendicular to the axis, or ok=false when x lies
// outside the design.
func CrossSection(d *Design, x float64) ([]r2.Vec, bool) {
	s, ok := d.SectionAt(x)
	if !ok {
		return nil, false
	}
	radius, err := s.RadiusAt(x)
	if err != nil {
		return nil, false
	}

	polygon := make([]r2.Vec, crossSectionPoints)
	for i := range polygon {
		angle := 2 * math.Pi * float64(i) / crossSectionPoints
		polygon[i] = r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return polygon, true
}

// CrossSectionArea returns the area of the cross-section polygon at x in
// mm², or ok=false outside the design.
func CrossSectionArea(d *Design, x float64, eng geom2.Engine) (float64, bool) {
	polygon, ok := CrossSection(d, x)
	if !ok {
		return 0, false
	}
	return eng.Area(polygon), true
}

// SurfaceArea returns the total lateral surface area in square inches.
func SurfaceArea(d *Design) float64 {
	total := 0.0
	for _, s := range d.Sections() {
		total += s.SurfaceArea()
	}
	return total
}

// Volume returns the total volume in cubic inches.
func Volume(d *Design) float64 {
	total := 0.0
	for _, s := range d.Sections() {
		total += s.Volume()
	}
	return total
}

// Weight estimates the design weight in ounces from total volume and the
// "default" entry of the density map (g/cm³, DefaultDensity when absent).
// This is a deliberate uniform-density simplification: per-section material
// fields on the records are not consulted.
func Weight(d *Design, densities map[string]float64) float64 {
	density, ok := densities["default"]
	if !ok {
		density = DefaultDensity
	}
	volumeCm3 := Volume(d) * cm3PerIn3
	return volumeCm3 * density / gramsPerOunce
}

// IntersectionPoints returns the discrete points where the outer profiles
// of the two designs cross, as 2D curves in the axial/radius plane. This is
// curve intersection, not 3D solid intersection.
func IntersectionPoints(a, b *Design, eng geom2.Engine) []r2.Vec {
	return eng.Intersections(OuterProfile(a), OuterProfile(b))
}

// CenterOfMass returns the volume-weighted centroid. Under the uniform
// density, axially symmetric assumption the lateral coordinates are always
// zero; the axial coordinate is in inches.
func CenterOfMass(d *Design) r3.Vec {
	totalVolume := 0.0
	weightedX := 0.0
	for _, s := range d.Sections() {
		v := s.Volume()
		totalVolume += v
		weightedX += v * s.Midpoint()
	}
	if totalVolume == 0 {
		return r3.Vec{}
	}
	return r3.Vec{X: weightedX / totalVolume}
}

// Moments holds the two scalar moment-of-inertia approximations.
type Moments struct {
	Axial         float64 `json:"axial"`
	Perpendicular float64 `json:"perpendicular"`
}

// MomentOfInertia approximates the design as a single uniform cylinder of
// the maximum radius and total length, with mass = volume × DefaultDensity.
// It is intentionally not a segment-wise integral.
func MomentOfInertia(d *Design) Moments {
	mass := Volume(d) * DefaultDensity
	radiusIn := d.MaxRadius() / MMPerInch
	length := d.TotalLength()
	return Moments{
		Axial:         0.5 * mass * radiusIn * radiusIn,
		Perpendicular: mass / 12 * (3*radiusIn*radiusIn + length*length),
	}
}

// Properties is the consolidated geometric report for one design.
type Properties struct {
	TotalLengthIn    float64 `json:"total_length_in"`
	SurfaceAreaIn2   float64 `json:"total_surface_area_in2"`
	VolumeIn3        float64 `json:"total_volume_in3"`
	CenterOfMass     r3.Vec  `json:"center_of_mass"`
	MomentOfInertia  Moments `json:"moment_of_inertia"`
	SectionCount     int     `json:"sections_count"`
	MaxRadiusMM      float64 `json:"max_radius_mm"`
	MinRadiusMM      float64 `json:"min_radius_mm"`
	AverageRadiusMM  float64 `json:"average_radius_mm"`
	EstimatedWtOunce float64 `json:"estimated_weight_oz"`
}

// GeometricProperties assembles the full report.
func GeometricProperties(d *Design) Properties {
	return Properties{
		TotalLengthIn:    d.TotalLength(),
		SurfaceAreaIn2:   SurfaceArea(d),
		VolumeIn3:        Volume(d),
		CenterOfMass:     CenterOfMass(d),
		MomentOfInertia:  MomentOfInertia(d),
		SectionCount:     len(d.Sections()),
		MaxRadiusMM:      d.MaxRadius(),
		MinRadiusMM:      d.MinRadius(),
		AverageRadiusMM:  d.AverageRadius(),
		EstimatedWtOunce: Weight(d, nil),
	}
}
