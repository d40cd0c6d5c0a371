// Package geometry models a cue design as an ordered sequence of frustum
// sections in a cylindrical coordinate frame and derives its physical
// properties. All computation here is pure: geometry objects are ephemeral
// views assembled from section records, never long-lived mutable state.
//
// Units follow shop convention: axial positions and lengths are inches,
// radii and diameters are millimeters. Conversions happen inside the
// formulas that need them.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MMPerInch converts millimeters to inches and back.
const MMPerInch = 25.4

// Point is a location in the cue's cylindrical frame: axial position along
// the centerline (inches), radial distance from it (mm), and rotational
// angle (degrees). Points are immutable values.
type Point struct {
	AxialIn  float64 // position along the cue, inches
	RadialMM float64 // distance from centerline, mm
	AngleDeg float64 // rotation about the centerline, degrees
}

// Cartesian converts the point to Cartesian coordinates. The axial
// component stays in inches and the radial components in mm; callers that
// need a single unit convert the result themselves.
func (p Point) Cartesian() r3.Vec {
	theta := p.AngleDeg * math.Pi / 180
	return r3.Vec{
		X: p.AxialIn,
		Y: p.RadialMM * math.Cos(theta),
		Z: p.RadialMM * math.Sin(theta),
	}
}

// DistanceTo returns the Euclidean distance between the Cartesian images
// of the two points.
func (p Point) DistanceTo(q Point) float64 {
	return r3.Norm(r3.Sub(p.Cartesian(), q.Cartesian()))
}
