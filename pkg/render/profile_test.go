package render

import (
	"strings"
	"testing"

	"github.com/chazu/cueform/pkg/cue"
	"github.com/chazu/cueform/pkg/geometry"
)

func testDesign() *geometry.Design {
	return geometry.FromRecords([]cue.SectionRecord{
		{SectionType: cue.SectionForearm, StartPositionIn: 0, EndPositionIn: 10,
			OuterDiameterStart: 20, OuterDiameterEnd: 20},
		{SectionType: cue.SectionHandle, StartPositionIn: 10, EndPositionIn: 20,
			OuterDiameterStart: 20, OuterDiameterEnd: 24},
	})
}

func renderToString(v *ProfileView) string {
	var sb strings.Builder
	v.Render(&sb)
	return sb.String()
}

func TestRenderStructure(t *testing.T) {
	out := renderToString(NewProfileView(testDesign()))

	for _, want := range []string{
		"<svg",
		"</svg>",
		`viewBox="0 0 1200 400"`,
		`class="grid"`,
		`class="centerline"`,
		`class="cue-profile"`,
		`class="section-dividers"`,
		`class="dimensions"`,
		`class="legend"`,
		"Sections: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestRenderProfilePath(t *testing.T) {
	out := renderToString(NewProfileView(testDesign()))

	if !strings.Contains(out, `fill="#8B4513"`) {
		t.Error("profile path fill missing")
	}
	// The silhouette is one closed path.
	if !strings.Contains(out, "M ") || !strings.Contains(out, " Z") {
		t.Error("profile path is not a closed M...Z path")
	}
}

func TestRenderAnnotations(t *testing.T) {
	out := renderToString(NewProfileView(testDesign()))

	if !strings.Contains(out, `20.0&#34;`) && !strings.Contains(out, `20.0"`) {
		t.Error("total length annotation missing")
	}
	if !strings.Contains(out, "Ø20.0mm") {
		t.Error("start diameter annotation missing")
	}
	// Divider label for the section the boundary closes.
	if !strings.Contains(out, "Forearm") {
		t.Error("section divider label missing")
	}
}

func TestRenderDeterministic(t *testing.T) {
	d := testDesign()
	if renderToString(NewProfileView(d)) != renderToString(NewProfileView(d)) {
		t.Error("identical designs rendered differently")
	}
}

func TestRenderCustomSize(t *testing.T) {
	out := renderToString(NewProfileViewSize(testDesign(), 800, 300))
	if !strings.Contains(out, `viewBox="0 0 800 300"`) {
		t.Error("custom canvas viewBox missing")
	}
}

func TestRenderEmptyDesign(t *testing.T) {
	out := renderToString(NewProfileView(geometry.NewDesign(nil)))
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("empty design did not render a document")
	}
	if strings.Contains(out, `class="cue-profile"`) && strings.Contains(out, "<path") {
		t.Error("empty design rendered a profile path")
	}
}

func TestTypeLabel(t *testing.T) {
	cases := map[string]string{
		"forearm": "Forearm",
		"joint":   "Joint",
	}
	for tag, want := range cases {
		if got := typeLabel(tag); got != want {
			t.Errorf("typeLabel(%q) = %q, want %q", tag, got, want)
		}
	}
}
