package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geom2"
)

func TestCenterline(t *testing.T) {
	d := twoSectionDesign()
	line := Centerline(d)
	if len(line) != 3 {
		t.Fatalf("centerline has %d points, want 3 (shared boundary deduped)", len(line))
	}
	approx(t, line[0].X, 0, tol, "centerline start")
	approx(t, line[1].X, 10, tol, "centerline boundary")
	approx(t, line[2].X, 20, tol, "centerline end")
	for _, p := range line {
		approx(t, p.Y, 0, tol, "centerline y")
	}
}

func TestOuterProfileShape(t *testing.T) {
	d := twoSectionDesign()
	line := OuterProfile(d)

	want := 2 * (profileSteps + 1) * 2 // forward + return, two sections
	if len(line) != want {
		t.Fatalf("profile has %d points, want %d", len(line), want)
	}

	// Forward pass starts at the first section start on the +radius edge.
	approx(t, line[0].X, 0, tol, "profile start x")
	approx(t, line[0].Y, 10, tol, "profile start radius")

	// Turnaround at the far end of the handle.
	mid := (profileSteps + 1) * 2
	approx(t, line[mid-1].X, 20, tol, "profile turnaround x")
	approx(t, line[mid-1].Y, 12, tol, "profile turnaround radius")

	// Return pass ends back at the origin.
	last := line[len(line)-1]
	approx(t, last.X, 0, tol, "profile end x")
	approx(t, last.Y, 10, tol, "profile end radius")
}

func TestCrossSection(t *testing.T) {
	d := twoSectionDesign()

	polygon, ok := CrossSection(d, 15)
	if !ok {
		t.Fatal("CrossSection(15) not ok")
	}
	if len(polygon) != crossSectionPoints {
		t.Fatalf("polygon has %d vertices, want %d", len(polygon), crossSectionPoints)
	}
	for _, v := range polygon {
		approx(t, math.Hypot(v.X, v.Y), 11, 1e-9, "vertex radius")
	}

	if _, ok := CrossSection(d, 30); ok {
		t.Error("CrossSection(30) should be out of range")
	}
}

func TestCrossSectionArea(t *testing.T) {
	d := twoSectionDesign()
	eng := geom2.Default()

	area, ok := CrossSectionArea(d, 5, eng)
	if !ok {
		t.Fatal("CrossSectionArea(5) not ok")
	}
	// A 64-gon slightly undershoots the circle area πr².
	circle := math.Pi * 100
	if area >= circle || area < 0.995*circle {
		t.Errorf("64-gon area = %v, want slightly below %v", area, circle)
	}
}

func TestVolumeAndSurfaceArea(t *testing.T) {
	d := twoSectionDesign()
	sections := d.Sections()
	approx(t, Volume(d), sections[0].Volume()+sections[1].Volume(), tol, "volume sum")
	approx(t, SurfaceArea(d), sections[0].SurfaceArea()+sections[1].SurfaceArea(), tol, "surface sum")
}

func TestWeight(t *testing.T) {
	// 10in cylinder, radius 10mm: volume in in³, then converted at 1.2 g/cm³.
	d := NewDesign([]Section{mkSection(cue.SectionForearm, 0, 10, 10, 10)})
	rIn := 10.0 / MMPerInch
	volumeIn3 := math.Pi * rIn * rIn * 10
	wantOz := volumeIn3 * cm3PerIn3 * DefaultDensity / gramsPerOunce

	approx(t, Weight(d, nil), wantOz, 1e-9, "default density weight")
	approx(t, Weight(d, map[string]float64{"default": 0.6}), wantOz/2, 1e-9, "custom density weight")
}

func TestCenterOfMass(t *testing.T) {
	// Uniform cylinder: centroid at the axial midpoint, on the axis.
	d := NewDesign([]Section{mkSection(cue.SectionForearm, 0, 10, 10, 10)})
	com := CenterOfMass(d)
	approx(t, com.X, 5, tol, "centroid x")
	approx(t, com.Y, 0, tol, "centroid y")
	approx(t, com.Z, 0, tol, "centroid z")

	// A fatter back half pulls the centroid rearward.
	d = NewDesign([]Section{
		mkSection(cue.SectionForearm, 0, 10, 10, 10),
		mkSection(cue.SectionHandle, 10, 20, 15, 15),
	})
	if com := CenterOfMass(d); com.X <= 10 {
		t.Errorf("centroid x = %v, want > 10", com.X)
	}

	if com := CenterOfMass(NewDesign(nil)); com != (r3.Vec{}) {
		t.Errorf("empty design centroid = %v, want zero", com)
	}
}

func TestMomentOfInertia(t *testing.T) {
	d := NewDesign([]Section{mkSection(cue.SectionForearm, 0, 10, 10, 10)})
	m := MomentOfInertia(d)

	rIn := 10.0 / MMPerInch
	mass := Volume(d) * DefaultDensity
	approx(t, m.Axial, 0.5*mass*rIn*rIn, 1e-9, "axial moment")
	approx(t, m.Perpendicular, mass/12*(3*rIn*rIn+100), 1e-9, "perpendicular moment")
}

func TestGeometricProperties(t *testing.T) {
	d := twoSectionDesign()
	p := GeometricProperties(d)

	approx(t, p.TotalLengthIn, 20, tol, "report length")
	approx(t, p.VolumeIn3, Volume(d), tol, "report volume")
	approx(t, p.MaxRadiusMM, 12, tol, "report max radius")
	approx(t, p.EstimatedWtOunce, Weight(d, nil), tol, "report weight")
	if p.SectionCount != 2 {
		t.Errorf("report sections = %d, want 2", p.SectionCount)
	}
}

func TestIntersectionPoints(t *testing.T) {
	// Constant radius 10 against an 8→12 taper: the profiles cross where the
	// taper passes 10mm, at the axial midpoint.
	a := NewDesign([]Section{mkSection(cue.SectionForearm, 0, 10, 10, 10)})
	b := NewDesign([]Section{mkSection(cue.SectionForearm, 0, 10, 8, 12)})

	points := IntersectionPoints(a, b, geom2.Default())
	if len(points) == 0 {
		t.Fatal("expected at least one crossing")
	}
	found := false
	for _, p := range points {
		if math.Abs(p.X-5) < 1e-6 && math.Abs(p.Y-10) < 1e-6 {
			found = true
		}
	}
	if !found {
		t.Errorf("crossing (5,10) not found in %v", points)
	}
}
