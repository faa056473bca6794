package gradebeam

import (
	"Takeoff/internal/calc/beam"
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

// Input has the same shape as a beam; only the formwork differs.
type Input struct {
	LengthFt         float64 `json:"length_ft"`
	WidthFt          float64 `json:"width_ft"`
	DepthFt          float64 `json:"depth_ft"`
	Count            int     `json:"count"`
	MixRatio         string  `json:"mix_ratio"`
	MainBarDiaMM     float64 `json:"main_bar_dia_mm"`
	MainBarCount     int     `json:"main_bar_count"`
	StirrupDiaMM     float64 `json:"stirrup_dia_mm"`
	StirrupSpacingIn float64 `json:"stirrup_spacing_in"`
	ClearCoverIn     float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.GradeBeam }

// Calculate takes off a grade beam. It is cast on the ground or on lean
// concrete, so only the two sides are formed.
func Calculate(in Input) (*takeoff.Report, error) {
	r, err := beam.Members(beam.Input(in))
	if err != nil {
		return nil, err
	}
	r.Set(takeoff.KeyShuttering, 2*in.DepthFt*in.LengthFt*float64(max(in.Count, 1)))
	return r, nil
}
