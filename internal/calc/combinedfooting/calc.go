package combinedfooting

import (
	"Takeoff/internal/calc/footing"
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
	TopBarDiaMM  float64 `json:"top_bar_dia_mm"`
	TopSpacingIn float64 `json:"top_spacing_in"`
	ClearCoverIn float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.CombinedFooting }

// Calculate takes off a footing shared by two columns: the pad's bottom mesh
// plus top bars running between the columns.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.CheckBar("top_bar_dia_mm", in.TopBarDiaMM),
		takeoff.Positive("top_spacing_in", in.TopSpacingIn),
	); err != nil {
		return nil, err
	}
	pad := footing.Input{
		LengthFt:     in.LengthFt,
		WidthFt:      in.WidthFt,
		DepthFt:      in.DepthFt,
		Count:        in.Count,
		MixRatio:     in.MixRatio,
		BarDiaMM:     in.BarDiaMM,
		BarSpacingIn: in.BarSpacingIn,
		ClearCoverIn: in.ClearCoverIn,
	}
	var steel takeoff.Steel
	r, n, err := footing.Pad(pad, &steel)
	if err != nil {
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
	top, err := takeoff.BarCount(w, in.TopSpacingIn)
	if err != nil {
		return nil, err
	}
	steel.AddBars(in.TopBarDiaMM, top*n, l+2*takeoff.Anchorage(in.TopBarDiaMM))
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, footing.SideForms(pad, n))
	return r, nil
}
