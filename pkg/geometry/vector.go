package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Free-vector helpers over r3.Vec for auxiliary geometric calculations.
// These are not persisted anywhere; all stored geometry is Points.

// Magnitude returns the Euclidean length of v.
func Magnitude(v r3.Vec) float64 { return r3.Norm(v) }

// Normalize returns the unit vector along v. The zero vector maps to the
// zero vector rather than NaN, so callers need no special casing.
func Normalize(v r3.Vec) r3.Vec {
	if r3.Norm(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// Dot returns the dot product of a and b.
func Dot(a, b r3.Vec) float64 { return r3.Dot(a, b) }

// Cross returns the cross product of a and b.
func Cross(a, b r3.Vec) r3.Vec { return r3.Cross(a, b) }
