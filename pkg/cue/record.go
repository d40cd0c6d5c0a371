package cue

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// SectionRecord is the flat section row handed over by the persistence
// layer. Positions are inches from the joint end; diameters are millimeters.
// The geometry engine consumes only the type, positions and diameters; the
// remaining fields ride along for validators and presentation.
type SectionRecord struct {
	SectionID           string         `json:"section_id,omitempty"`
	SectionType         SectionType    `json:"section_type"`
	StartPositionIn     float64        `json:"start_position_in"`
	EndPositionIn       float64        `json:"end_position_in"`
	OuterDiameterStart  float64        `json:"outer_diameter_start_mm"`
	OuterDiameterEnd    float64        `json:"outer_diameter_end_mm"`
	WoodSpecies         WoodSpecies    `json:"wood_species,omitempty"`
	JointType           JointType      `json:"joint_type,omitempty"`
	JointCollarDiameter float64        `json:"joint_collar_diameter_mm,omitempty"`
	WrapType            WrapType       `json:"wrap_type,omitempty"`
	WrapColor           string         `json:"wrap_color,omitempty"`
	FinishType          string         `json:"finish_type,omitempty"`
	StainColor          string         `json:"stain_color,omitempty"`
	ProductionNotes     string         `json:"production_notes,omitempty"`
	InlayPatterns       []InlayPattern `json:"inlay_patterns,omitempty"`
}

// Length returns the axial extent of the record in inches.
func (r SectionRecord) Length() float64 {
	return r.EndPositionIn - r.StartPositionIn
}

// DesignRecord is one complete cue design as stored by the collaborator.
type DesignRecord struct {
	CueID           string          `json:"cue_id"`
	DesignStyle     DesignStyle     `json:"design_style,omitempty"`
	OverallLengthIn float64         `json:"overall_length_in,omitempty"`
	SymmetryType    SymmetryType    `json:"symmetry_type,omitempty"`
	EraInfluence    string          `json:"era_influence,omitempty"`
	ComplexityLevel string          `json:"complexity_level,omitempty"`
	TipType         TipType         `json:"tip_type,omitempty"`
	TipSizeMM       float64         `json:"tip_size_mm,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Sections        []SectionRecord `json:"sections"`
}

// DecodeDesign reads a JSON design record. Records without a cue ID are
// assigned a fresh one so downstream consumers can key on it; section IDs
// are left as-is because the engine never depends on them.
func DecodeDesign(r io.Reader) (*DesignRecord, error) {
	var rec DesignRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode design record: %w", err)
	}
	if rec.CueID == "" {
		rec.CueID = uuid.NewString()
	}
	return &rec, nil
}

// LoadDesign reads a JSON design record from a file.
func LoadDesign(path string) (*DesignRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load design: %w", err)
	}
	defer f.Close()
	return DecodeDesign(f)
}
