package beam

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

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

func (Input) Variant() part.Variant { return part.Beam }

// Calculate takes off a suspended beam formed on its soffit and both sides.
func Calculate(in Input) (*takeoff.Report, error) {
	r, err := Members(in)
	if err != nil {
		return nil, err
	}
	r.Set(takeoff.KeyShuttering, (in.WidthFt+2*in.DepthFt)*in.LengthFt*float64(max(in.Count, 1)))
	return r, nil
}

// Members computes concrete and steel for beam-like members, leaving
// shuttering to the caller since it depends on how the member is supported.
func Members(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("depth_ft", in.DepthFt),
		takeoff.CheckBar("main_bar_dia_mm", in.MainBarDiaMM),
		takeoff.CheckBar("stirrup_dia_mm", in.StirrupDiaMM),
		takeoff.Positive("stirrup_spacing_in", in.StirrupSpacingIn),
		takeoff.NonNegative("clear_cover_in", in.ClearCoverIn),
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
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.DepthFt*float64(n), in.MixRatio); err != nil {
		return nil, err
	}

	var steel takeoff.Steel
	steel.AddBars(in.MainBarDiaMM, in.MainBarCount*n, in.LengthFt+2*takeoff.Anchorage(in.MainBarDiaMM))

	span, err := takeoff.Inset("length_ft", in.LengthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	stirrups, err := takeoff.BarCount(span, in.StirrupSpacingIn)
	if err != nil {
		return nil, err
	}
	core, err := takeoff.CorePerimeter(in.WidthFt, in.DepthFt, in.ClearCoverIn, "width_ft", "depth_ft")
	if err != nil {
		return nil, err
	}
	steel.AddBars(in.StirrupDiaMM, stirrups*n, takeoff.Ring(core, in.StirrupDiaMM))
	if err := steel.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}
