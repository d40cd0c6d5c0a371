package cue

// SectionType identifies one tapered segment of a cue by its role.
type SectionType string

const (
	SectionJoint   SectionType = "joint"
	SectionForearm SectionType = "forearm"
	SectionHandle  SectionType = "handle"
	SectionSleeve  SectionType = "sleeve"
	SectionButt    SectionType = "butt"
)

// CanonicalSequence is the physical ordering of section types along a cue
// butt, joint end first.
var CanonicalSequence = []SectionType{
	SectionJoint,
	SectionForearm,
	SectionHandle,
	SectionSleeve,
	SectionButt,
}

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionJoint, SectionForearm, SectionHandle, SectionSleeve, SectionButt:
		return true
	default:
		return false
	}
}

func (t SectionType) String() string { return string(t) }

// ---------------------------------------------------------------------------
// Design-level vocabulary
// ---------------------------------------------------------------------------

// DesignStyle classifies the overall aesthetic of a cue design.
type DesignStyle string

const (
	StyleTraditionalClassic DesignStyle = "traditional_classic"
	StyleModernMinimal      DesignStyle = "modern_minimal"
	StyleOrnate             DesignStyle = "ornate"
	StyleArtDeco            DesignStyle = "art_deco"
	StyleContemporary       DesignStyle = "contemporary"
)

// SymmetryType describes the rotational symmetry of the decoration.
type SymmetryType string

const (
	SymmetryRadial     SymmetryType = "radial"
	SymmetryBilateral  SymmetryType = "bilateral"
	SymmetryAsymmetric SymmetryType = "asymmetric"
)

// TipType enumerates cue tip constructions.
type TipType string

const (
	TipLeather  TipType = "leather"
	TipPhenolic TipType = "phenolic"
	TipLayered  TipType = "layered"
)

// WoodSpecies enumerates the woods used for cue blanks.
type WoodSpecies string

const (
	WoodMaple       WoodSpecies = "maple"
	WoodEbony       WoodSpecies = "ebony"
	WoodRosewood    WoodSpecies = "rosewood"
	WoodCocobolo    WoodSpecies = "cocobolo"
	WoodBubinga     WoodSpecies = "bubinga"
	WoodPurpleheart WoodSpecies = "purpleheart"
)

// JointType enumerates cue joint threadings and pin systems.
type JointType string

const (
	Joint51618        JointType = "5_16_18"
	Joint3810         JointType = "3_8_10"
	Joint51614        JointType = "5_16_14"
	JointRadialPin    JointType = "radial"
	JointUniLoc       JointType = "uni_loc"
	JointQuickRelease JointType = "quick_release"
)

// WrapType enumerates handle wrap materials.
type WrapType string

const (
	WrapIrishLinen WrapType = "irish_linen"
	WrapLeather    WrapType = "leather"
	WrapSynthetic  WrapType = "synthetic"
	WrapNone       WrapType = "none"
)
