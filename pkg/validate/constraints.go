// Package validate implements the manufacturability rule checks for cue
// designs. Every validator is a pure function over record values or an
// assembled design: findings are collected into cue.Issue slices and
// returned in full, never raised as errors and never short-circuited, so a
// caller sees all problems in one pass.
package validate

import "github.com/chazu/cueform/pkg/cue"

// Bounds is a per-section-type dimensional envelope.
type Bounds struct {
	MinLengthIn   float64
	MaxLengthIn   float64
	MinDiameterMM float64
	MaxDiameterMM float64
}

// Constraints is the process-wide rule configuration. It is built once at
// startup and passed by reference into the checker; nothing mutates it
// afterwards.
type Constraints struct {
	// Field-level limits on raw section records.
	AbsoluteMaxDiameterMM float64 // hard cap on any outer diameter
	MaxTaperRateMMPerIn   float64 // |Δdiameter| per inch of length

	// Continuity limits between adjacent records.
	GapToleranceIn float64
	DiameterJumpMM float64

	// Manufacturing limits on assembled designs.
	MaxTaperAngleDeg   float64
	MinRadiusMM        float64
	MaxRadiusMM        float64
	MinSectionLengthIn float64
	MaxSectionLengthIn float64
	MaxTotalLengthIn   float64

	// Machining tolerances.
	DiameterToleranceMM      float64
	LengthToleranceMM        float64
	TaperToleranceDeg        float64
	ConcentricityToleranceMM float64
	MaxDiameterTaperPerIn    float64 // diameter change per inch before re-chucking

	// Per-type dimensional envelopes and the canonical physical ordering.
	SectionBounds map[cue.SectionType]Bounds
	Sequence      []cue.SectionType

	// Inlay repeat count bounds.
	MinRepeatCount int
	MaxRepeatCount int
}

// DefaultConstraints returns the standard cue-making rule set.
func DefaultConstraints() *Constraints {
	return &Constraints{
		AbsoluteMaxDiameterMM: 50.0,
		MaxTaperRateMMPerIn:   2.0,

		GapToleranceIn: 0.01,
		DiameterJumpMM: 1.0,

		MaxTaperAngleDeg:   5.0,
		MinRadiusMM:        5.0,
		MaxRadiusMM:        25.0,
		MinSectionLengthIn: 2.0,
		MaxSectionLengthIn: 20.0,
		MaxTotalLengthIn:   40.0,

		DiameterToleranceMM:      0.05,
		LengthToleranceMM:        0.1,
		TaperToleranceDeg:        0.5,
		ConcentricityToleranceMM: 0.02,
		MaxDiameterTaperPerIn:    1.0,

		SectionBounds: map[cue.SectionType]Bounds{
			cue.SectionJoint:   {MinLengthIn: 0.5, MaxLengthIn: 2.0, MinDiameterMM: 18.0, MaxDiameterMM: 25.0},
			cue.SectionForearm: {MinLengthIn: 8.0, MaxLengthIn: 14.0, MinDiameterMM: 19.0, MaxDiameterMM: 24.0},
			cue.SectionHandle:  {MinLengthIn: 8.0, MaxLengthIn: 12.0, MinDiameterMM: 20.0, MaxDiameterMM: 26.0},
			cue.SectionSleeve:  {MinLengthIn: 4.0, MaxLengthIn: 8.0, MinDiameterMM: 24.0, MaxDiameterMM: 32.0},
			cue.SectionButt:    {MinLengthIn: 2.0, MaxLengthIn: 6.0, MinDiameterMM: 26.0, MaxDiameterMM: 32.0},
		},
		Sequence: cue.CanonicalSequence,

		MinRepeatCount: 1,
		MaxRepeatCount: 24,
	}
}
