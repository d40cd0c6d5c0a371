package cue

// ---------------------------------------------------------------------------
// Inlay pattern vocabulary
// ---------------------------------------------------------------------------

// PatternCategory groups inlay styles into broad families.
type PatternCategory string

const (
	CategoryBoxed PatternCategory = "boxed"
	CategorySlash PatternCategory = "slash"
	CategoryDot   PatternCategory = "dot"
	CategoryWrap  PatternCategory = "wrap"
	CategoryInlay PatternCategory = "inlay"
)

// Valid reports whether c is a known pattern category.
func (c PatternCategory) Valid() bool {
	switch c {
	case CategoryBoxed, CategorySlash, CategoryDot, CategoryWrap, CategoryInlay:
		return true
	default:
		return false
	}
}

// PatternStyle is the concrete decorative style within a category.
type PatternStyle string

const (
	StyleWindowBox    PatternStyle = "window_box"
	StyleRaisedBox    PatternStyle = "raised_box"
	StyleRecessedBox  PatternStyle = "recessed_box"
	StyleSingleSlash  PatternStyle = "single_slash"
	StyleDoubleSlash  PatternStyle = "double_slash"
	StyleCrossSlash   PatternStyle = "cross_slash"
	StyleSingleDot    PatternStyle = "single_dot"
	StyleDoubleDot    PatternStyle = "double_dot"
	StyleClusterDot   PatternStyle = "cluster_dot"
	StyleFullWrap     PatternStyle = "full_wrap"
	StylePartialWrap  PatternStyle = "partial_wrap"
	StyleSpiralWrap   PatternStyle = "spiral_wrap"
	StyleSurfaceInlay PatternStyle = "surface_inlay"
	StylePocketInlay  PatternStyle = "pocket_inlay"
	StyleInlayRing    PatternStyle = "inlay_ring"
)

// Valid reports whether s is a known pattern style.
func (s PatternStyle) Valid() bool {
	switch s {
	case StyleWindowBox, StyleRaisedBox, StyleRecessedBox,
		StyleSingleSlash, StyleDoubleSlash, StyleCrossSlash,
		StyleSingleDot, StyleDoubleDot, StyleClusterDot,
		StyleFullWrap, StylePartialWrap, StyleSpiralWrap,
		StyleSurfaceInlay, StylePocketInlay, StyleInlayRing:
		return true
	default:
		return false
	}
}

// InlayMaterial enumerates materials usable as inlay stock or base wood.
type InlayMaterial string

const (
	MaterialEbony         InlayMaterial = "ebony"
	MaterialMaple         InlayMaterial = "maple"
	MaterialRosewood      InlayMaterial = "rosewood"
	MaterialCocobolo      InlayMaterial = "cocobolo"
	MaterialIvory         InlayMaterial = "ivory"
	MaterialAbalone       InlayMaterial = "abalone"
	MaterialMotherOfPearl InlayMaterial = "mother_of_pearl"
	MaterialTurquoise     InlayMaterial = "turquoise"
	MaterialSilver        InlayMaterial = "silver"
	MaterialGold          InlayMaterial = "gold"
	MaterialBrass         InlayMaterial = "brass"
)

// Valid reports whether m is a known inlay material.
func (m InlayMaterial) Valid() bool {
	switch m {
	case MaterialEbony, MaterialMaple, MaterialRosewood, MaterialCocobolo,
		MaterialIvory, MaterialAbalone, MaterialMotherOfPearl,
		MaterialTurquoise, MaterialSilver, MaterialGold, MaterialBrass:
		return true
	default:
		return false
	}
}

// ContrastLevel describes how strongly an inlay stands out from the base.
type ContrastLevel string

const (
	ContrastLow    ContrastLevel = "low"
	ContrastMedium ContrastLevel = "medium"
	ContrastHigh   ContrastLevel = "high"
)

// Valid reports whether c is a known contrast level.
func (c ContrastLevel) Valid() bool {
	return c == ContrastLow || c == ContrastMedium || c == ContrastHigh
}

// FinishType enumerates surface finishes applied over an inlay.
type FinishType string

const (
	FinishMatte     FinishType = "matte"
	FinishSatin     FinishType = "satin"
	FinishHighGloss FinishType = "high_gloss"
)

// Valid reports whether f is a known finish type.
func (f FinishType) Valid() bool {
	return f == FinishMatte || f == FinishSatin || f == FinishHighGloss
}

// GeometryKind names the solid primitive an inlay pocket is cut as.
type GeometryKind string

const (
	GeometryRectangularPrism GeometryKind = "rectangular_prism"
	GeometryCylinder         GeometryKind = "cylinder"
	GeometrySphere           GeometryKind = "sphere"
	GeometryCustom           GeometryKind = "custom"
)

// Valid reports whether k is a known geometry kind.
func (k GeometryKind) Valid() bool {
	switch k {
	case GeometryRectangularPrism, GeometryCylinder, GeometrySphere, GeometryCustom:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// Inlay pattern records
// ---------------------------------------------------------------------------

// GeometricDefinition describes the 3D shape of an inlay pocket. The
// dimension, orientation and positioning payloads are kept untyped because
// their schemas vary per geometry kind; validation only requires that they
// are structured objects when present.
type GeometricDefinition struct {
	GeometryType GeometryKind `json:"geometry_type"`
	DimensionsMM any          `json:"dimensions_mm,omitempty"`
	Orientation  any          `json:"orientation,omitempty"`
	Positioning  any          `json:"positioning,omitempty"`
}

// MaterialAssignment pairs an inlay with its surrounding base material.
type MaterialAssignment struct {
	BaseMaterial  InlayMaterial `json:"base_material"`
	InlayMaterial InlayMaterial `json:"inlay_material"`
	ContrastLevel ContrastLevel `json:"contrast_level,omitempty"`
	FinishType    FinishType    `json:"finish_type,omitempty"`
}

// InlayPattern is one decorative feature attached to a section record.
// RepeatCount of zero means the field was not supplied and defaults to 1.
type InlayPattern struct {
	PatternID           string               `json:"pattern_id"`
	PatternCategory     PatternCategory      `json:"pattern_category"`
	PatternStyle        PatternStyle         `json:"pattern_style"`
	RepeatCount         int                  `json:"repeat_count,omitempty"`
	GeometricDefinition *GeometricDefinition `json:"geometric_definition,omitempty"`
	MaterialAssignment  *MaterialAssignment  `json:"material_assignment,omitempty"`
}
