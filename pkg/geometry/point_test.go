package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func approx(t *testing.T, got, want, tolerance float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (tol %v)", what, got, want, tolerance)
	}
}

func TestPointCartesian(t *testing.T) {
	p := Point{AxialIn: 10, RadialMM: 5, AngleDeg: 0}
	c := p.Cartesian()
	approx(t, c.X, 10, tol, "X")
	approx(t, c.Y, 5, tol, "Y")
	approx(t, c.Z, 0, tol, "Z")

	q := Point{AxialIn: 10, RadialMM: 5, AngleDeg: 90}
	c = q.Cartesian()
	approx(t, c.Y, 0, 1e-12, "Y at 90 deg")
	approx(t, c.Z, 5, tol, "Z at 90 deg")
}

func TestPointDistanceTo(t *testing.T) {
	p := Point{AxialIn: 10, RadialMM: 5}
	q := Point{AxialIn: 15, RadialMM: 5}
	approx(t, p.DistanceTo(q), 5, tol, "axial distance")

	// Same axial position, opposite sides of the centerline.
	a := Point{AxialIn: 0, RadialMM: 3, AngleDeg: 0}
	b := Point{AxialIn: 0, RadialMM: 3, AngleDeg: 180}
	approx(t, a.DistanceTo(b), 6, 1e-9, "diametral distance")
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Normalize(r3.Vec{})
	if v != (r3.Vec{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", v)
	}
}

func TestVectorHelpers(t *testing.T) {
	v := r3.Vec{X: 3, Y: 4, Z: 0}
	approx(t, Magnitude(v), 5, tol, "magnitude")

	u := Normalize(v)
	approx(t, Magnitude(u), 1, tol, "unit magnitude")

	approx(t, Dot(r3.Vec{X: 1}, r3.Vec{Y: 1}), 0, tol, "orthogonal dot")

	c := Cross(r3.Vec{X: 1}, r3.Vec{Y: 1})
	if c != (r3.Vec{Z: 1}) {
		t.Errorf("Cross(x, y) = %v, want z", c)
	}
}
