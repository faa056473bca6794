package pile

import (
	"math"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	DiameterFt      float64 `json:"diameter_ft"`
	LengthFt        float64 `json:"length_ft"`
	Count           int     `json:"count"`
	MixRatio        string  `json:"mix_ratio"`
	MainBarDiaMM    float64 `json:"main_bar_dia_mm"`
	MainBarCount    int     `json:"main_bar_count"`
	SpiralBarDiaMM  float64 `json:"spiral_bar_dia_mm"`
	SpiralSpacingIn float64 `json:"spiral_spacing_in"`
	ClearCoverIn    float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.Pile }

// Calculate takes off cast-in-situ bored piles. Main bars are anchored into
// the pile cap; lateral rings sit inside the cover. The bore is the form, so
// no shuttering is reported.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("diameter_ft", in.DiameterFt),
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.CheckBar("main_bar_dia_mm", in.MainBarDiaMM),
		takeoff.CheckBar("spiral_bar_dia_mm", in.SpiralBarDiaMM),
		takeoff.Positive("spiral_spacing_in", in.SpiralSpacingIn),
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
	wet := math.Pi / 4 * in.DiameterFt * in.DiameterFt * in.LengthFt * float64(n)
	if _, err := takeoff.Pour(r, wet, in.MixRatio); err != nil {
		return nil, err
	}

	core, err := takeoff.Inset("diameter_ft", in.DiameterFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	rings, err := takeoff.BarCount(in.LengthFt, in.SpiralSpacingIn)
	if err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	steel.AddBars(in.MainBarDiaMM, in.MainBarCount*n, in.LengthFt+takeoff.Anchorage(in.MainBarDiaMM))
	steel.AddBars(in.SpiralBarDiaMM, rings*n, takeoff.Ring(math.Pi*core, in.SpiralBarDiaMM))
	if err := steel.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}
