package cue

import (
	"strings"
	"testing"
)

const designJSON = `{
	"cue_id": "cue-001",
	"design_style": "traditional_classic",
	"sections": [
		{
			"section_type": "forearm",
			"start_position_in": 0,
			"end_position_in": 12,
			"outer_diameter_start_mm": 20.5,
			"outer_diameter_end_mm": 22.0,
			"wood_species": "maple",
			"inlay_patterns": [
				{
					"pattern_id": "p1",
					"pattern_category": "dot",
					"pattern_style": "single_dot",
					"repeat_count": 6
				}
			]
		}
	]
}`

func TestDecodeDesign(t *testing.T) {
	rec, err := DecodeDesign(strings.NewReader(designJSON))
	if err != nil {
		t.Fatalf("DecodeDesign: %v", err)
	}

	if rec.CueID != "cue-001" {
		t.Errorf("cue_id = %q, want cue-001", rec.CueID)
	}
	if rec.DesignStyle != StyleTraditionalClassic {
		t.Errorf("design_style = %q", rec.DesignStyle)
	}
	if len(rec.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(rec.Sections))
	}

	s := rec.Sections[0]
	if s.SectionType != SectionForearm {
		t.Errorf("section_type = %q", s.SectionType)
	}
	if s.Length() != 12 {
		t.Errorf("length = %v, want 12", s.Length())
	}
	if s.OuterDiameterStart != 20.5 || s.OuterDiameterEnd != 22.0 {
		t.Errorf("diameters = %v/%v", s.OuterDiameterStart, s.OuterDiameterEnd)
	}
	if len(s.InlayPatterns) != 1 || s.InlayPatterns[0].RepeatCount != 6 {
		t.Errorf("inlay patterns = %+v", s.InlayPatterns)
	}
}

func TestDecodeDesignAssignsID(t *testing.T) {
	rec, err := DecodeDesign(strings.NewReader(`{"sections": []}`))
	if err != nil {
		t.Fatalf("DecodeDesign: %v", err)
	}
	if rec.CueID == "" {
		t.Error("blank cue_id not assigned")
	}

	other, err := DecodeDesign(strings.NewReader(`{"sections": []}`))
	if err != nil {
		t.Fatalf("DecodeDesign: %v", err)
	}
	if rec.CueID == other.CueID {
		t.Error("generated cue IDs collide")
	}
}

func TestDecodeDesignMalformed(t *testing.T) {
	if _, err := DecodeDesign(strings.NewReader(`{"sections": [`)); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := DecodeDesign(strings.NewReader(``)); err == nil {
		t.Error("empty input accepted")
	}
}
