// Package geom2 isolates the 2D computational-geometry facility behind a
// narrow interface so the backing implementation is swappable. The engine
// works in the axial/radius plane used by profile curves; it knows nothing
// about cues.
package geom2

import "gonum.org/v1/gonum/spatial/r2"

// Polyline is an open piecewise-linear 2D curve.
type Polyline []r2.Vec

// Engine is the computational-geometry facility consumed by the geometry
// operations: discrete intersection of two polylines and area of a simple
// polygon.
type Engine interface {
	// Intersections returns the points where the two polylines cross,
	// deduplicated. Collinear overlapping spans contribute no points.
	Intersections(a, b Polyline) []r2.Vec

	// Area returns the unsigned area of a simple polygon. The polygon may
	// be given open or explicitly closed.
	Area(polygon []r2.Vec) float64
}

// Default returns the standard engine implementation.
func Default() Engine { return NewRTreeEngine() }
