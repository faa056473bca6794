package beam

import (
	"errors"
	"math"
	"testing"

	"Takeoff/internal/calc/takeoff"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestBeam(t *testing.T) {
	in := Input{
		LengthFt:         12,
		WidthFt:          0.75,
		DepthFt:          1.5,
		Count:            2,
		MixRatio:         "1:1.5:3",
		MainBarDiaMM:     16,
		MainBarCount:     4,
		StirrupDiaMM:     8,
		StirrupSpacingIn: 6,
		ClearCoverIn:     1.5,
	}
	r, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}

	v, _ := r.Get(takeoff.KeyConcreteVolume)
	nearlyEqual(t, "concrete", v, 12*0.75*1.5*2)

	main := 4 * 2 * (12 + 2*takeoff.Anchorage(16))
	v, _ = r.Get(takeoff.SteelKey(16))
	nearlyEqual(t, "main steel", v, main*takeoff.KgPerFoot(16))

	// 11.75 ft inside cover at 6 in gives 24 stirrups per beam.
	ring := 2*(0.5+1.25) + 2*takeoff.Hook(8)
	v, _ = r.Get(takeoff.SteelKey(8))
	nearlyEqual(t, "stirrups", v, 24*2*ring*takeoff.KgPerFoot(8))

	v, _ = r.Get(takeoff.KeyShuttering)
	nearlyEqual(t, "shuttering", v, (0.75+2*1.5)*12*2)
}

func TestBeamNeedsMainBars(t *testing.T) {
	in := Input{LengthFt: 10, WidthFt: 1, DepthFt: 1, MixRatio: "1:2:4", MainBarDiaMM: 12, StirrupDiaMM: 8, StirrupSpacingIn: 6}
	_, err := Calculate(in)
	var ie *takeoff.InvalidInputError
	if !errors.As(err, &ie) || ie.Field != "main_bar_count" {
		t.Fatalf("err = %v", err)
	}
}
