package retainingwall

import (
	"errors"
	"math"
	"testing"

	"Takeoff/internal/calc/takeoff"
)

func wall() Input {
	return Input{
		LengthFt:            20,
		HeightFt:            8,
		StemThicknessFt:     1,
		BaseWidthFt:         5,
		BaseThicknessFt:     1,
		MixRatio:            "1:2:4",
		VerticalBarDiaMM:    12,
		VerticalSpacingIn:   6,
		HorizontalBarDiaMM:  10,
		HorizontalSpacingIn: 8,
		ClearCoverIn:        3,
	}
}

func TestRetainingWall(t *testing.T) {
	r, err := Calculate(wall())
	if err != nil {
		t.Fatal(err)
	}
	v, _ := r.Get(takeoff.KeyConcreteVolume)
	if v != 20*8*1+20*5*1 {
		t.Fatalf("concrete = %v", v)
	}

	// 19.5 ft and 4.5 ft inside cover.
	vertical := 40   // floor(19.5*12/6)+1
	horizontal := 13 // floor(8*12/8)+1
	across := 7      // floor(4.5*12/8)+1
	v12 := 2*float64(vertical)*(8+takeoff.Anchorage(12)) + float64(vertical)*4.5
	v10 := 2*float64(horizontal)*19.5 + float64(across)*19.5

	v, _ = r.Get(takeoff.SteelKey(12))
	if want := v12 * takeoff.KgPerFoot(12); math.Abs(v-want) > 1e-6 {
		t.Fatalf("12mm = %v, want %v", v, want)
	}
	v, _ = r.Get(takeoff.SteelKey(10))
	if want := v10 * takeoff.KgPerFoot(10); math.Abs(v-want) > 1e-6 {
		t.Fatalf("10mm = %v, want %v", v, want)
	}

	v, _ = r.Get(takeoff.KeyShuttering)
	if want := 2*20*8 + 2*1*8 + 2*25*1.0; v != want {
		t.Fatalf("shuttering = %v, want %v", v, want)
	}
}

func TestRetainingWallBaseNarrowerThanStem(t *testing.T) {
	in := wall()
	in.BaseWidthFt = 0.5
	if _, err := Calculate(in); !errors.Is(err, takeoff.ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}
