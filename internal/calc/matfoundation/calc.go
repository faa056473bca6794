package matfoundation

import (
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt     float64 `json:"length_ft"`
	WidthFt      float64 `json:"width_ft"`
	DepthFt      float64 `json:"depth_ft"`
	MixRatio     string  `json:"mix_ratio"`
	BarDiaMM     float64 `json:"bar_dia_mm"`
	BarSpacingIn float64 `json:"bar_spacing_in"`
	ClearCoverIn float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.MatFoundation }

// layers is the number of two-way meshes in a raft (top and bottom).
const layers = 2

// Calculate takes off a raft under the whole building. There is one raft
// per structure, so the input has no count.
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

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, in.LengthFt*in.WidthFt*in.DepthFt, in.MixRatio); err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	anchorage := 2 * takeoff.Anchorage(in.BarDiaMM)
	if err := steel.Mesh(in.BarDiaMM, in.BarSpacingIn, in.LengthFt, in.WidthFt, in.ClearCoverIn, anchorage, layers); err != nil {
		return nil, err
	}
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	r.Set(takeoff.KeyShuttering, 2*(in.LengthFt+in.WidthFt)*in.DepthFt)
	return r, nil
}
