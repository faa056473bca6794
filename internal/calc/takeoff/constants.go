package takeoff

// Concrete constants (cft domain)
const (
	// DryVolumeFactor inflates wet volume to the dry volume of loose constituents.
	DryVolumeFactor = 1.54

	// CementBagCft is the volume of one 50 kg cement bag.
	CementBagCft = 1.25

	// MortarDryFactor inflates wet mortar volume to dry cement + sand volume.
	MortarDryFactor = 1.33
)

// Reinforcement constants
const (
	// SteelWeightDivisor gives bar weight in kg/m as d²/162 with d in mm.
	SteelWeightDivisor = 162.0

	MetresPerFoot = 0.3048
	MMPerFoot     = 304.8
	InchesPerFoot = 12.0

	// AnchorageDiameters is the development length in bar diameters.
	AnchorageDiameters = 40.0

	// HookDiameters is the length of one standard hook in bar diameters.
	HookDiameters = 10.0
)

// Brick constants (inches). Standard brick 9.5" x 4.5" x 2.75" laid with 0.5" joints.
const (
	BrickLengthIn  = 9.5
	BrickWidthIn   = 4.5
	BrickHeightIn  = 2.75
	MortarJointIn  = 0.5
	cubicInPerCft  = 1728.0
	squareInPerSft = 144.0
)

var (
	// BrickVolumeCft is the effective volume of one brick including its mortar joints.
	BrickVolumeCft = (BrickLengthIn + MortarJointIn) * (BrickWidthIn + MortarJointIn) *
		(BrickHeightIn + MortarJointIn) / cubicInPerCft

	// MortarFraction is the share of brickwork volume taken by mortar.
	MortarFraction = 1 - (BrickLengthIn*BrickWidthIn*BrickHeightIn)/
		((BrickLengthIn+MortarJointIn)*(BrickWidthIn+MortarJointIn)*(BrickHeightIn+MortarJointIn))

	// SolingBricksPerSqft is the number of bricks laid flat per square foot of soling.
	SolingBricksPerSqft = squareInPerSft / ((BrickLengthIn + MortarJointIn) * (BrickWidthIn + MortarJointIn))
)

// DefaultBricksPerAggregateCft is the number of bricks broken into chips to
// replace one cft of stone aggregate.
const DefaultBricksPerAggregateCft = 12.0

// eps absorbs floating noise before floor/ceil on exact multiples.
const eps = 1e-9
