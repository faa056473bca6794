package cccasting

import (
	"math"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

// Aggregate kinds.
const (
	Stone = "stone"
	Brick = "brick"
)

type Input struct {
	LengthFt              float64 `json:"length_ft"`
	WidthFt               float64 `json:"width_ft"`
	ThicknessIn           float64 `json:"thickness_in"`
	Count                 int     `json:"count"`
	MixRatio              string  `json:"mix_ratio"`
	Aggregate             string  `json:"aggregate,omitempty"`
	BrickSoling           bool    `json:"brick_soling,omitempty"`
	BricksPerAggregateCft float64 `json:"bricks_per_aggregate_cft,omitempty"`
}

func (Input) Variant() part.Variant { return part.CCCasting }

// Calculate takes off lean concrete cast on ground. With brick aggregate
// the aggregate volume is reported as a brick count instead, so it is
// never counted twice. Soling adds a flat brick layer under the cast area.
func Calculate(in Input) (*takeoff.Report, error) {
	if err := takeoff.Check(
		takeoff.Positive("length_ft", in.LengthFt),
		takeoff.Positive("width_ft", in.WidthFt),
		takeoff.Positive("thickness_in", in.ThicknessIn),
		takeoff.NonNegative("bricks_per_aggregate_cft", in.BricksPerAggregateCft),
	); err != nil {
		return nil, err
	}
	n, err := takeoff.Count("count", in.Count)
	if err != nil {
		return nil, err
	}
	kind := in.Aggregate
	if kind == "" {
		kind = Stone
	}
	if kind != Stone && kind != Brick {
		return nil, takeoff.Invalid("aggregate", "%q is not one of %s, %s", in.Aggregate, Stone, Brick)
	}
	ratio, err := takeoff.ParseMixRatio(in.MixRatio)
	if err != nil {
		return nil, err
	}

	area := in.LengthFt * in.WidthFt * float64(n)
	mix, err := takeoff.Concrete(area*takeoff.Inches(in.ThicknessIn), ratio)
	if err != nil {
		return nil, err
	}

	r := takeoff.NewReport()
	mix.Apply(r, kind == Stone)
	if kind == Brick {
		per := in.BricksPerAggregateCft
		if per == 0 {
			per = takeoff.DefaultBricksPerAggregateCft
		}
		r.Set(takeoff.KeyBricksForAggregate, math.Round(mix.AggregateCft*per))
	}
	if in.BrickSoling {
		r.Set(takeoff.KeySolingBricks, math.Round(area*takeoff.SolingBricksPerSqft))
	}
	return r, nil
}
