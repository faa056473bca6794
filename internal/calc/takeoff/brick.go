package takeoff

import "math"

// Bricks is the brick count for a volume of brickwork.
func Bricks(volumeCft float64) float64 {
	return math.Round(volumeCft / BrickVolumeCft)
}

// Mortar is the material split of the mortar in brickwork.
type Mortar struct {
	Ratio      MortarRatio
	WetCft     float64
	DryCft     float64
	CementBags int
	SandCft    float64
}

// BrickMortar sizes the mortar for volumeCft of brickwork.
func BrickMortar(volumeCft float64, ratio MortarRatio) Mortar {
	wet := volumeCft * MortarFraction
	dry := wet * MortarDryFactor
	parts := ratio.Cement + ratio.Sand
	return Mortar{
		Ratio:      ratio,
		WetCft:     wet,
		DryCft:     dry,
		CementBags: Bags(dry * ratio.Cement / parts),
		SandCft:    dry * ratio.Sand / parts,
	}
}
