package earthwork

import (
	"math"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type Input struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
	DepthFt  float64 `json:"depth_ft"`
}

func (Input) Variant() part.Variant { return part.Earthwork }

// Volume is the excavated volume in cft. It is the only quantity handed to
// the external time and manpower estimator.
func Volume(lengthFt, widthFt, depthFt float64) (float64, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", lengthFt),
		takeoff.Positive("width_ft", widthFt),
		takeoff.Positive("depth_ft", depthFt),
	); err != nil {
		return 0, err
	}
	v := lengthFt * widthFt * depthFt
	if v <= 0 || math.IsInf(v, 0) {
		return 0, takeoff.Invalid("depth_ft", "volume %g cft is out of range", v)
	}
	return v, nil
}

func Calculate(in Input) (*takeoff.Report, error) {
	v, err := Volume(in.LengthFt, in.WidthFt, in.DepthFt)
	if err != nil {
		return nil, err
	}
	r := takeoff.NewReport()
	r.Set(takeoff.KeyVolume, v)
	return r, nil
}
