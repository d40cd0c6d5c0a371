// Package render turns cue design geometry into its 2D presentations: an
// SVG profile view and a flat list of profile samples. It consumes valid
// designs and draws exactly what it is given; manufacturability is the
// validators' problem.
package render

import "github.com/chazu/cueform/pkg/geometry"

// Default drawing canvas, in SVG user units.
const (
	DefaultWidth   = 1200.0
	DefaultHeight  = 400.0
	DefaultPadding = 50.0
)

// Transform maps engineering coordinates (axial inches, radial mm) onto the
// drawing canvas. X maps linearly across the padded width; radius maps
// linearly across half the padded height, mirrored about the horizontal
// centerline.
type Transform struct {
	Width   float64
	Height  float64
	Padding float64

	availableWidth  float64
	availableHeight float64
}

// NewTransform builds a transform for the given canvas.
func NewTransform(width, height, padding float64) Transform {
	return Transform{
		Width:           width,
		Height:          height,
		Padding:         padding,
		availableWidth:  width - 2*padding,
		availableHeight: height - 2*padding,
	}
}

// ToCanvas maps a single profile point. totalLength and maxRadius define
// the engineering extents being fitted to the canvas; positive radii land
// above the centerline, negative below.
func (t Transform) ToCanvas(xIn, radiusMM, totalLength, maxRadius float64) (x, y float64) {
	x = t.Padding + xIn/totalLength*t.availableWidth
	y = t.Height/2 - radiusMM/maxRadius*(t.availableHeight/2)
	return x, y
}

// DiameterSpan maps a diameter at an axial position to the vertical line it
// spans on the canvas.
func (t Transform) DiameterSpan(xIn, diameterMM, totalLength, maxDiameter float64) (x, yTop, yBottom float64) {
	x = t.Padding + xIn/totalLength*t.availableWidth
	half := diameterMM / maxDiameter * (t.availableHeight / 2)
	return x, t.Height/2 - half, t.Height/2 + half
}

// ScaleFactors returns the pixels-per-inch and pixels-per-mm factors for
// legend display.
func (t Transform) ScaleFactors(totalLength, maxRadius float64) (xScale, yScale float64) {
	return t.availableWidth / totalLength, t.availableHeight / 2 / maxRadius
}

// maxRadiusFor returns the radial extent used for scaling a design: the
// largest section radius plus 10% headroom, with a floor for empty designs.
func maxRadiusFor(d *geometry.Design) float64 {
	if len(d.Sections()) == 0 {
		return 10.0
	}
	return d.MaxRadius() * 1.1
}
