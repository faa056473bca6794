package slab

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt      float64 `json:"length_ft"`
	WidthFt       float64 `json:"width_ft"`
	ThicknessIn   float64 `json:"thickness_in"`
	Count         int     `json:"count"`
	MixRatio      string  `json:"mix_ratio"`
	MainBarDiaMM  float64 `json:"main_bar_dia_mm"`
	MainSpacingIn float64 `json:"main_spacing_in"`
	DistBarDiaMM  float64 `json:"dist_bar_dia_mm"`
	DistSpacingIn float64 `json:"dist_spacing_in"`
	ClearCoverIn  float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.Slab }

// Calculate takes off a suspended slab panel. Main bars run along the
// length, distribution bars along the width; both end in hooks.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("thickness_in", in.ThicknessIn),
		takeoff.CheckBar("main_bar_dia_mm", in.MainBarDiaMM),
		takeoff.Positive("main_spacing_in", in.MainSpacingIn),
		takeoff.CheckBar("dist_bar_dia_mm", in.DistBarDiaMM),
		takeoff.Positive("dist_spacing_in", in.DistSpacingIn),
	); err != nil {
		return nil, err
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}
	t := takeoff.Inches(in.ThicknessIn)

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*t*float64(n), in.MixRatio); err != nil {
		return nil, err
	}

	l, err := takeoff.Inset("length_ft", in.LengthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	w, err := takeoff.Inset("width_ft", in.WidthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	mainBars, err := takeoff.BarCount(w, in.MainSpacingIn)
	if err != nil {
		return nil, err
	}
	distBars, err := takeoff.BarCount(l, in.DistSpacingIn)
	if err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	steel.AddBars(in.MainBarDiaMM, mainBars*n, l+2*takeoff.Hook(in.MainBarDiaMM))
	steel.AddBars(in.DistBarDiaMM, distBars*n, w+2*takeoff.Hook(in.DistBarDiaMM))
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, (in.LengthFt*in.WidthFt+2*(in.LengthFt+in.WidthFt)*t)*float64(n))
	return r, nil
}
