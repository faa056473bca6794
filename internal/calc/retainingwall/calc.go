package retainingwall

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt            float64 `json:"length_ft"`
	HeightFt            float64 `json:"height_ft"`
	StemThicknessFt     float64 `json:"stem_thickness_ft"`
	BaseWidthFt         float64 `json:"base_width_ft"`
	BaseThicknessFt     float64 `json:"base_thickness_ft"`
	MixRatio            string  `json:"mix_ratio"`
	VerticalBarDiaMM    float64 `json:"vertical_bar_dia_mm"`
	VerticalSpacingIn   float64 `json:"vertical_spacing_in"`
	HorizontalBarDiaMM  float64 `json:"horizontal_bar_dia_mm"`
	HorizontalSpacingIn float64 `json:"horizontal_spacing_in"`
	ClearCoverIn        float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.RetainingWall }

// Calculate takes off a cantilever wall: a vertical stem standing on a base
// slab. The stem is reinforced on both faces.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("height_ft", in.HeightFt),
		takeoff.Positive("stem_thickness_ft", in.StemThicknessFt),
		takeoff.Positive("base_width_ft", in.BaseWidthFt),
		takeoff.Positive("base_thickness_ft", in.BaseThicknessFt),
		takeoff.CheckBar("vertical_bar_dia_mm", in.VerticalBarDiaMM),
		takeoff.Positive("vertical_spacing_in", in.VerticalSpacingIn),
		takeoff.CheckBar("horizontal_bar_dia_mm", in.HorizontalBarDiaMM),
		takeoff.Positive("horizontal_spacing_in", in.HorizontalSpacingIn),
	); err != nil {
		return nil, err
	}
	if in.BaseWidthFt < in.StemThicknessFt {
		return nil, takeoff.Invalid("base_width_ft", "must be at least the stem thickness %g ft", in.StemThicknessFt)
	}

	stem := in.LengthFt * in.HeightFt * in.StemThicknessFt
	base := in.LengthFt * in.BaseWidthFt * in.BaseThicknessFt
	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, stem+base, in.MixRatio); err != nil {
		return nil, err
	}

	l, err := takeoff.Inset("length_ft", in.LengthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	bw, err := takeoff.Inset("base_width_ft", in.BaseWidthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	vertical, err := takeoff.BarCount(l, in.VerticalSpacingIn)
	if err != nil {
		return nil, err
	}
	horizontal, err := takeoff.BarCount(in.HeightFt, in.HorizontalSpacingIn)
	if err != nil {
		return nil, err
	}
	across, err := takeoff.BarCount(bw, in.HorizontalSpacingIn)
	if err != nil {
		return nil, err
	}

	var steel takeoff.Steel
	steel.AddBars(in.VerticalBarDiaMM, 2*vertical, in.HeightFt+takeoff.Anchorage(in.VerticalBarDiaMM))
	steel.AddBars(in.HorizontalBarDiaMM, 2*horizontal, l)
	steel.AddBars(in.VerticalBarDiaMM, vertical, bw)
	steel.AddBars(in.HorizontalBarDiaMM, across, l)
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering,
		2*in.LengthFt*in.HeightFt+2*in.StemThicknessFt*in.HeightFt+2*(in.LengthFt+in.BaseWidthFt)*in.BaseThicknessFt)
	return r, nil
}
