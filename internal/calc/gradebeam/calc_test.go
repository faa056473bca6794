package gradebeam

import (
	"math"
	"testing"

	"Takeoff/internal/calc/beam"
	"Takeoff/internal/calc/takeoff"
)

func TestGradeBeamFormsSidesOnly(t *testing.T) {
	in := Input{
		LengthFt:         20,
		WidthFt:          1,
		DepthFt:          1.5,
		MixRatio:         "1:2:4",
		MainBarDiaMM:     12,
		MainBarCount:     4,
		StirrupDiaMM:     8,
		StirrupSpacingIn: 8,
		ClearCoverIn:     1.5,
	}
	g, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := beam.Calculate(beam.Input(in))
	if err != nil {
		t.Fatal(err)
	}

	gs, _ := g.Get(takeoff.KeyShuttering)
	if math.Abs(gs-2*1.5*20) > 1e-9 {
		t.Fatalf("shuttering = %v, want 60", gs)
	}
	for _, key := range []string{takeoff.KeyConcreteVolume, takeoff.SteelKey(12), takeoff.SteelKey(8)} {
		gv, _ := g.Get(key)
		bv, _ := b.Get(key)
		if gv != bv {
			t.Errorf("%s: grade beam %v, beam %v", key, gv, bv)
		}
	}
}
