package column

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
	BarDiaMM     float64 `json:"bar_dia_mm"`
	BarSpacingIn float64 `json:"bar_spacing_in"`
	ClearCoverIn float64 `json:"clear_cover_in"`
	TieBarDiaMM  float64 `json:"tie_bar_dia_mm,omitempty"`
	TieSpacingIn float64 `json:"tie_spacing_in,omitempty"`
}

func (Input) Variant() part.Variant { return part.Column }

// Calculate takes off a rectangular column. Vertical bars are counted along
// the height at the given spacing and each runs the full height; ties are
// optional.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("height_ft", in.HeightFt),
		takeoff.Positive("bar_spacing_in", in.BarSpacingIn),
		takeoff.CheckBar("bar_dia_mm", in.BarDiaMM),
		takeoff.NonNegative("clear_cover_in", in.ClearCoverIn),
	); err != nil {
		return nil, err
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.HeightFt*float64(n), in.MixRatio); err != nil {
		return nil, err
	}

	var steel takeoff.Steel
	bars, err := takeoff.BarCount(in.HeightFt, in.BarSpacingIn)
	if err != nil {
		return nil, err
	}
	steel.AddBars(in.BarDiaMM, bars*n, in.HeightFt)

	if in.TieBarDiaMM > 0 {
		if err := takeoff.Check(
			takeoff.CheckBar("tie_bar_dia_mm", in.TieBarDiaMM),
			takeoff.Positive("tie_spacing_in", in.TieSpacingIn),
		); err != nil {
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
		steel.AddBars(in.TieBarDiaMM, ties*n, takeoff.Ring(core, in.TieBarDiaMM))
	}
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, 2*(in.LengthFt+in.WidthFt)*in.HeightFt*float64(n))
	return r, nil
}
