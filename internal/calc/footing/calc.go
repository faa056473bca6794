package footing

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

func (Input) Variant() part.Variant { return part.StandaloneFooting }

// Calculate takes off isolated pad footings poured in an excavated pit.
func Calculate(in Input) (*takeoff.Report, error) {
	var steel takeoff.Steel
	r, n, err := Pad(in, &steel)
	if err != nil {
		return nil, err
	}
	if err := steel.Apply(r); err != nil {
		return nil, err
	}
	r.Set(takeoff.KeyShuttering, SideForms(in, n))
	return r, nil
}

// Pad pours the footing concrete and adds its bottom mesh to steel without
// writing the steel keys, so callers can add further bars first. It returns
// the resolved element count.
func Pad(in Input, steel *takeoff.Steel) (*takeoff.Report, int, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("depth_ft", in.DepthFt),
		takeoff.CheckBar("bar_dia_mm", in.BarDiaMM),
		takeoff.Positive("bar_spacing_in", in.BarSpacingIn),
	); err != nil {
		return nil, 0, err
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, 0, err
	}

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.DepthFt*float64(n), in.MixRatio); err != nil {
		return nil, 0, err
	}
	anchorage := 2 * takeoff.Anchorage(in.BarDiaMM)
	if err := steel.Mesh(in.BarDiaMM, in.BarSpacingIn, in.LengthFt, in.WidthFt, in.ClearCoverIn, anchorage, n); err != nil {
		return nil, 0, err
	}
	return r, n, nil
}

// SideForms is the formwork of the four vertical faces. The underside is
// cast against the pit and needs none.
func SideForms(in Input, n int) float64 {
	return 2 * (in.LengthFt + in.WidthFt) * in.DepthFt * float64(n)
}
