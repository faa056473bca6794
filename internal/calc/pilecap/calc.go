package pilecap

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt     float64 `json:"length_ft"`
	WidthFt      float64 `json:"width_ft"`
	DepthFt      float64 `json:"depth_ft"`
	Count        int     `json:"count"`
	MixRatio     string  `json:"mix_ratio"`
	BarDiaMM     float64 `json:"bar_dia_mm"`
	BarSpacingIn float64 `json:"bar_spacing_in"`
	ClearCoverIn float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.PileCap }

// Calculate takes off pile caps with a bottom mesh whose bars are bent up
// both ends to the top cover.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("depth_ft", in.DepthFt),
		takeoff.CheckBar("bar_dia_mm", in.BarDiaMM),
		takeoff.Positive("bar_spacing_in", in.BarSpacingIn),
	); err != nil {
		return nil, err
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.DepthFt*float64(n), in.MixRatio); err != nil {
		return nil, err
	}

	leg, err := takeoff.Inset("depth_ft", in.DepthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	if err := steel.Mesh(in.BarDiaMM, in.BarSpacingIn, in.LengthFt, in.WidthFt, in.ClearCoverIn, 2*leg, n); err != nil {
		return nil, err
	}
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, 2*(in.LengthFt+in.WidthFt)*in.DepthFt*float64(n))
	return r, nil
}
