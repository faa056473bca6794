package brickwork

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt        float64 `json:"length_ft"`
	HeightFt        float64 `json:"height_ft"`
	ThicknessIn     float64 `json:"thickness_in"`
	Count           int     `json:"count"`
	MortarRatio     string  `json:"mortar_ratio"`
	OpeningAreaSqft float64 `json:"opening_area_sqft,omitempty"`
}

func (Input) Variant() part.Variant { return part.Brickwork }

// Calculate takes off brick walls laid in cement mortar. Door and window
// openings are deducted from the face area. Brickwork carries no steel.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("height_ft", in.HeightFt),
		takeoff.Positive("thickness_in", in.ThicknessIn),
		takeoff.NonNegative("opening_area_sqft", in.OpeningAreaSqft),
	); err != nil {
		return nil, err
	}
	face := in.LengthFt * in.HeightFt
	if in.OpeningAreaSqft >= face {
		return nil, takeoff.Invalid("opening_area_sqft", "%g sqft leaves no wall out of %g sqft", in.OpeningAreaSqft, face)
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}
	ratio, err := takeoff.ParseMortarRatio(in.MortarRatio)
	if err != nil {
		return nil, err
	}

	volume := (face - in.OpeningAreaSqft) * takeoff.Inches(in.ThicknessIn) * float64(n)
	mortar := takeoff.BrickMortar(volume, ratio)

	r := takeoff.NewReport()
	r.Set(takeoff.KeyBrickworkVolume, volume)
	r.Set(takeoff.KeyTotalBricks, takeoff.Bricks(volume))
	r.Set(takeoff.KeyCement, float64(mortar.CementBags))
	r.Set(takeoff.KeySand, mortar.SandCft)
	r.SetText(takeoff.KeyMortarRatio, ratio.Label)
	return r, nil
}
