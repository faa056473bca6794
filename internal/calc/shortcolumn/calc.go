package shortcolumn

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt     float64 `json:"length_ft"`
	WidthFt      float64 `json:"width_ft"`
	HeightFt     float64 `json:"height_ft"`
	Count        int     `json:"count"`
	MixRatio     string  `json:"mix_ratio"`
	MainBarDiaMM float64 `json:"main_bar_dia_mm"`
	MainBarCount int     `json:"main_bar_count"`
	TieBarDiaMM  float64 `json:"tie_bar_dia_mm"`
	TieSpacingIn float64 `json:"tie_spacing_in"`
	ClearCoverIn float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.ShortColumn }

// Calculate takes off neck columns between footing and plinth. Main bars
// are anchored into the footing below.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("height_ft", in.HeightFt),
		takeoff.CheckBar("main_bar_dia_mm", in.MainBarDiaMM),
		takeoff.CheckBar("tie_bar_dia_mm", in.TieBarDiaMM),
		takeoff.Positive("tie_spacing_in", in.TieSpacingIn),
	); err != nil {
		return nil, err
	}
	if in.MainBarCount <= 0 {
		return nil, takeoff.Invalid("main_bar_count", "must be positive, got %d", in.MainBarCount)
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.HeightFt*float64(n), in.MixRatio); err != nil {
		return nil, err
	}

	core, err := takeoff.CorePerimeter(in.LengthFt, in.WidthFt, in.ClearCoverIn, "length_ft", "width_ft")
	if err != nil {
		return nil, err
	}
	ties, err := takeoff.BarCount(in.HeightFt, in.TieSpacingIn)
	if err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	steel.AddBars(in.MainBarDiaMM, in.MainBarCount*n, in.HeightFt+takeoff.Anchorage(in.MainBarDiaMM))
	steel.AddBars(in.TieBarDiaMM, ties*n, takeoff.Ring(core, in.TieBarDiaMM))
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, 2*(in.LengthFt+in.WidthFt)*in.HeightFt*float64(n))
	return r, nil
}
