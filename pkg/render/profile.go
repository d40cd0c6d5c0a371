package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/chazu/cueform/pkg/geometry"
)

// pathSteps is the sampling resolution per section for the profile path.
const pathSteps = 20

// ProfileView renders the 2D side view of a cue design as a self-contained
// SVG document.
type ProfileView struct {
	design    *geometry.Design
	width     float64
	height    float64
	transform Transform
	maxRadius float64
}

// NewProfileView builds a profile view on the default canvas.
func NewProfileView(d *geometry.Design) *ProfileView {
	return NewProfileViewSize(d, DefaultWidth, DefaultHeight)
}

// NewProfileViewSize builds a profile view on a custom canvas.
func NewProfileViewSize(d *geometry.Design, width, height float64) *ProfileView {
	return &ProfileView{
		design:    d,
		width:     width,
		height:    height,
		transform: NewTransform(width, height, DefaultPadding),
		maxRadius: maxRadiusFor(d),
	}
}

// Render writes the SVG document. The drawing is deterministic: the same
// design always produces byte-identical output.
func (v *ProfileView) Render(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(v.width, v.height,
		fmt.Sprintf(`viewBox="0 0 %.0f %.0f"`, v.width, v.height),
		`style="font-family: Arial, sans-serif"`)

	canvas.Rect(0, 0, v.width, v.height, `fill="#f8f9fa"`)
	v.drawGrid(canvas)
	v.drawCenterline(canvas)
	v.drawProfile(canvas)
	v.drawDividers(canvas)
	v.drawDimensions(canvas)
	v.drawLegend(canvas)

	canvas.End()
}

// drawGrid draws the reference grid: one vertical line per inch and one
// horizontal pair per 5mm of diameter.
func (v *ProfileView) drawGrid(canvas *svg.SVG) {
	canvas.Group(`class="grid"`, `opacity="0.3"`)
	defer canvas.Gend()

	const gridStyle = `stroke="#cccccc" stroke-width="1"`

	total := v.design.TotalLength()
	if total > 0 {
		for i := 0; i <= int(total); i++ {
			x := v.transform.Padding + float64(i)/total*(v.width-2*v.transform.Padding)
			canvas.Line(x, v.transform.Padding, x, v.height-v.transform.Padding, gridStyle)
		}
	}

	for mm := 0; mm < int(v.maxRadius*2); mm += 5 {
		offset := float64(mm) / (v.maxRadius * 2) * (v.height - 2*v.transform.Padding)
		canvas.Line(v.transform.Padding, v.height/2-offset,
			v.width-v.transform.Padding, v.height/2-offset, gridStyle)
		canvas.Line(v.transform.Padding, v.height/2+offset,
			v.width-v.transform.Padding, v.height/2+offset, gridStyle)
	}
}

func (v *ProfileView) drawCenterline(canvas *svg.SVG) {
	canvas.Group(`class="centerline"`)
	canvas.Line(v.transform.Padding, v.height/2, v.width-v.transform.Padding, v.height/2,
		`stroke="#666666" stroke-width="2" stroke-dasharray="10,5"`)
	canvas.Gend()
}

// drawProfile draws the closed cue silhouette: the taper curve sampled
// forward along the top edge, then backward along the mirrored bottom edge.
func (v *ProfileView) drawProfile(canvas *svg.SVG) {
	sections := v.design.Sections()
	if len(sections) == 0 {
		return
	}

	canvas.Group(`class="cue-profile"`)
	defer canvas.Gend()

	total := v.design.TotalLength()
	var points []string

	appendPoint := func(xIn, radiusMM float64) {
		x, y := v.transform.ToCanvas(xIn, radiusMM, total, v.maxRadius)
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
	}

	for _, s := range sections {
		for i := 0; i <= pathSteps; i++ {
			t := float64(i) / pathSteps
			appendPoint(s.Start.AxialIn+t*s.Length(),
				s.StartRadius()+t*(s.EndRadius()-s.StartRadius()))
		}
	}
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		for j := 0; j <= pathSteps; j++ {
			t := float64(j) / pathSteps
			appendPoint(s.End.AxialIn-t*s.Length(),
				-(s.EndRadius() - t*(s.EndRadius()-s.StartRadius())))
		}
	}
	points = append(points, points[0])

	d := "M " + strings.Join(points, " L ") + " Z"
	canvas.Path(d, `fill="#8B4513" stroke="#654321" stroke-width="2"`)

	v.drawWoodGrain(canvas)
}

// drawWoodGrain overlays faint diagonal strokes for a wood texture hint.
func (v *ProfileView) drawWoodGrain(canvas *svg.SVG) {
	canvas.Group(`class="wood-grain"`, `opacity="0.1"`)
	for i := 0; i < 5; i++ {
		offset := float64(i) * 100
		canvas.Line(offset, 0, offset+200, v.height, `stroke="#333333" stroke-width="1"`)
	}
	canvas.Gend()
}

// drawDividers marks the section boundaries with dashed lines and labels
// each boundary with the type of the section it closes.
func (v *ProfileView) drawDividers(canvas *svg.SVG) {
	sections := v.design.Sections()
	if len(sections) <= 1 {
		return
	}

	canvas.Group(`class="section-dividers"`)
	defer canvas.Gend()

	total := v.design.TotalLength()
	for i := 0; i+1 < len(sections); i++ {
		curr := sections[i]
		x := v.transform.Padding + curr.End.AxialIn/total*(v.width-2*v.transform.Padding)

		canvas.Line(x, v.transform.Padding, x, v.height-v.transform.Padding,
			`stroke="#ff6600" stroke-width="2" stroke-dasharray="5,5"`)
		canvas.Text(x, v.transform.Padding-10, typeLabel(string(curr.Type)),
			`text-anchor="middle" font-size="10" fill="#666666"`)
	}
}

// drawDimensions annotates total length and the starting diameter.
func (v *ProfileView) drawDimensions(canvas *svg.SVG) {
	sections := v.design.Sections()
	if len(sections) == 0 {
		return
	}

	canvas.Group(`class="dimensions"`, `font-size="12"`)
	defer canvas.Gend()

	canvas.Text(v.width/2, v.height-10,
		fmt.Sprintf("%.1f\"", v.design.TotalLength()),
		`text-anchor="middle" fill="#333333" font-weight="bold"`)

	first := sections[0]
	x, _ := v.transform.ToCanvas(first.Start.AxialIn, first.StartRadius(),
		v.design.TotalLength(), v.maxRadius)
	canvas.Text(x, v.transform.Padding-20,
		fmt.Sprintf("Ø%.1fmm", first.StartRadius()*2),
		`text-anchor="middle" fill="#333333" font-size="10"`)
}

// drawLegend reports the drawing scale and section count.
func (v *ProfileView) drawLegend(canvas *svg.SVG) {
	canvas.Group(`class="legend"`, `font-size="10"`)
	defer canvas.Gend()

	total := v.design.TotalLength()
	if total > 0 {
		xScale, yScale := v.transform.ScaleFactors(total, v.maxRadius)
		canvas.Text(v.width-v.transform.Padding, v.height-20,
			fmt.Sprintf("Scale: %.1f px/in, %.1f px/mm", xScale, yScale),
			`text-anchor="end" fill="#666666"`)
	}
	canvas.Text(v.width-v.transform.Padding, v.height-10,
		fmt.Sprintf("Sections: %d", len(v.design.Sections())),
		`text-anchor="end" fill="#666666"`)
}

// typeLabel converts a section type tag into a display label.
func typeLabel(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
