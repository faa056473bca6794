package staircase

import (
	"math"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	StepCount       int     `json:"step_count"`
	RiserIn         float64 `json:"riser_in"`
	TreadIn         float64 `json:"tread_in"`
	WidthFt         float64 `json:"width_ft"`
	WaistIn         float64 `json:"waist_in"`
	Flights         int     `json:"flights"`
	LandingLengthFt float64 `json:"landing_length_ft,omitempty"`
	LandingWidthFt  float64 `json:"landing_width_ft,omitempty"`
	MixRatio        string  `json:"mix_ratio"`
	MainBarDiaMM    float64 `json:"main_bar_dia_mm"`
	MainSpacingIn   float64 `json:"main_spacing_in"`
	DistBarDiaMM    float64 `json:"dist_bar_dia_mm"`
	DistSpacingIn   float64 `json:"dist_spacing_in"`
	ClearCoverIn    float64 `json:"clear_cover_in"`
}

func (Input) Variant() part.Variant { return part.Staircase }

// Calculate takes off a dog-legged or straight stair. Each flight is an
// inclined waist slab with triangular steps cast on top, optionally
// followed by a landing slab of the same thickness.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("riser_in", in.RiserIn),
		takeoff.Positive("tread_in", in.TreadIn),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("waist_in", in.WaistIn),
		takeoff.NonNegative("landing_length_ft", in.LandingLengthFt),
		takeoff.NonNegative("landing_width_ft", in.LandingWidthFt),
		takeoff.CheckBar("main_bar_dia_mm", in.MainBarDiaMM),
		takeoff.Positive("main_spacing_in", in.MainSpacingIn),
		takeoff.CheckBar("dist_bar_dia_mm", in.DistBarDiaMM),
		takeoff.Positive("dist_spacing_in", in.DistSpacingIn),
	); err != nil {
		return nil, err
	}
	if in.StepCount <= 0 {
		return nil, takeoff.Invalid("step_count", "must be positive, got %d", in.StepCount)
	}
	if (in.LandingLengthFt == 0) != (in.LandingWidthFt == 0) {
		return nil, takeoff.Invalid("landing_width_ft", "landing needs both length and width")
	}
	flights, err := takeoff.Count("flights", in.Flights)
	if err != nil {
		return nil, err
	}

	n := float64(in.StepCount)
	riser := takeoff.Inches(in.RiserIn)
	tread := takeoff.Inches(in.TreadIn)
	waist := takeoff.Inches(in.WaistIn)
	incline := n * math.Hypot(riser, tread)

	perFlight := incline*in.WidthFt*waist +
		n*(riser*tread/2)*in.WidthFt +
		in.LandingLengthFt*in.LandingWidthFt*waist

	r := takeoff.NewReport()
	if _, err := takeoff.Pour(r, perFlight*float64(flights), in.MixRatio); err != nil {
		return nil, err
	}

	w, err := takeoff.Inset("width_ft", in.WidthFt, in.ClearCoverIn)
	if err != nil {
		return nil, err
	}
	run := incline + in.LandingLengthFt
	main, err := takeoff.BarCount(w, in.MainSpacingIn)
	if err != nil {
		return nil, err
	}
	dist, err := takeoff.BarCount(run, in.DistSpacingIn)
	if err != nil {
		return nil, err
	}
	var steel takeoff.Steel
	steel.AddBars(in.MainBarDiaMM, main*flights, run+2*takeoff.Anchorage(in.MainBarDiaMM))
	steel.AddBars(in.DistBarDiaMM, dist*flights, w)
	if err := steel.Apply(r); err != nil {
		return nil, err
	}

	soffit := incline*in.WidthFt + in.LandingLengthFt*in.LandingWidthFt
	risers := n * riser * in.WidthFt
	r.Set(takeoff.KeyShuttering, (soffit+risers)*float64(flights))
	return r, nil
}
