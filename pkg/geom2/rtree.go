package geom2

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r2"
)

// Compile-time interface check.
var _ Engine = (*RTreeEngine)(nil)

const (
	// rectPad keeps degenerate (axis-aligned) segment bounding boxes legal
	// for the R-tree, which requires positive extents.
	rectPad = 1e-9
	// pointTol is the distance under which two intersection points are
	// considered the same point.
	pointTol = 1e-9
)

// RTreeEngine implements Engine with an R-tree over the segments of one
// polyline to prune candidate pairs, so intersecting two n-segment profiles
// stays near O(n log n) instead of O(n²).
type RTreeEngine struct{}

// NewRTreeEngine returns a ready-to-use RTreeEngine. The engine is
// stateless; one instance may serve any number of concurrent calls.
func NewRTreeEngine() *RTreeEngine { return &RTreeEngine{} }

// segment is one polyline edge, indexable by its bounding rectangle.
type segment struct {
	a, b r2.Vec
}

func (s segment) Bounds() rtreego.Rect {
	minX := math.Min(s.a.X, s.b.X)
	minY := math.Min(s.a.Y, s.b.Y)
	lenX := math.Abs(s.a.X-s.b.X) + rectPad
	lenY := math.Abs(s.a.Y-s.b.Y) + rectPad
	r, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{lenX, lenY})
	if err != nil {
		panic(fmt.Sprintf("geom2: segment bounds: %v", err))
	}
	return r
}

// Intersections returns the crossing points of the two polylines, sorted by
// X then Y for determinism.
func (e *RTreeEngine) Intersections(a, b Polyline) []r2.Vec {
	if len(a) < 2 || len(b) < 2 {
		return nil
	}

	tree := rtreego.NewTree(2, 4, 16)
	for i := 0; i+1 < len(b); i++ {
		tree.Insert(segment{a: b[i], b: b[i+1]})
	}

	var points []r2.Vec
	for i := 0; i+1 < len(a); i++ {
		seg := segment{a: a[i], b: a[i+1]}
		for _, hit := range tree.SearchIntersect(seg.Bounds()) {
			other := hit.(segment)
			if p, ok := segmentIntersection(seg, other); ok {
				points = appendUnique(points, p)
			}
		}
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
	return points
}

// segmentIntersection solves the parametric form of the two segments.
// Parallel and collinear pairs report no intersection point.
func segmentIntersection(s, t segment) (r2.Vec, bool) {
	d1 := r2.Sub(s.b, s.a)
	d2 := r2.Sub(t.b, t.a)

	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return r2.Vec{}, false
	}

	w := r2.Sub(t.a, s.a)
	u := (w.X*d2.Y - w.Y*d2.X) / denom
	v := (w.X*d1.Y - w.Y*d1.X) / denom
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(s.a, r2.Scale(u, d1)), true
}

func appendUnique(points []r2.Vec, p r2.Vec) []r2.Vec {
	for _, q := range points {
		if math.Abs(p.X-q.X) <= pointTol && math.Abs(p.Y-q.Y) <= pointTol {
			return points
		}
	}
	return append(points, p)
}

// Area computes the unsigned polygon area with the shoelace formula.
func (e *RTreeEngine) Area(polygon []r2.Vec) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += polygon[i].X*polygon[j].Y - polygon[j].X*polygon[i].Y
	}
	return math.Abs(sum) / 2
}
