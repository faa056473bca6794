package takeoff

import (
	"testing"
)

func TestConcrete(t *testing.T) {
	ratio, err := ParseMixRatio("1:2:4")
	if err != nil {
		t.Fatal(err)
	}
	m, err := Concrete(10, ratio)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "dry", m.DryCft, 15.4)
	nearlyEqual(t, "cement cft", m.CementCft, 2.2)
	nearlyEqual(t, "sand", m.SandCft, 4.4)
	nearlyEqual(t, "aggregate", m.AggregateCft, 8.8)
	if m.CementBags != 2 {
		t.Fatalf("bags = %d, want 2", m.CementBags)
	}
}

func TestBagsRoundUp(t *testing.T) {
	cases := map[float64]int{
		0:     0,
		0.01:  1,
		1.25:  1,
		1.26:  2,
		2.5:   2,
		12.49: 10,
	}
	for cft, want := range cases {
		if got := Bags(cft); got != want {
			t.Errorf("Bags(%v) = %d, want %d", cft, got, want)
		}
	}
}

func TestParseMixRatio(t *testing.T) {
	for _, s := range MixRatios {
		if _, err := ParseMixRatio(s); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
	m, err := ParseMixRatio(" 1 : 1.5 : 3 ")
	if err != nil {
		t.Fatal(err)
	}
	if m.Label != "1:1.5:3" || m.Parts() != 5.5 {
		t.Fatalf("ratio = %+v", m)
	}
	_, err = ParseMixRatio("1:2:5")
	wantInvalid(t, err, "mix_ratio")
	_, err = ParseMixRatio("")
	wantInvalid(t, err, "mix_ratio")
}

func TestParseMortarRatio(t *testing.T) {
	m, err := ParseMortarRatio("1:4")
	if err != nil {
		t.Fatal(err)
	}
	if m.Cement != 1 || m.Sand != 4 {
		t.Fatalf("ratio = %+v", m)
	}
	_, err = ParseMortarRatio("1:2:4")
	wantInvalid(t, err, "mortar_ratio")
}

func TestPourWritesKeysInOrder(t *testing.T) {
	r := NewReport()
	if _, err := Pour(r, 10, "1:2:4"); err != nil {
		t.Fatal(err)
	}
	want := []string{KeyConcreteVolume, KeyDryVolume, KeyMixRatio, KeyCement, KeySand, KeyAggregate}
	got := r.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
	if text, _ := r.Text(KeyMixRatio); text != "1:2:4" {
		t.Fatalf("mix ratio = %q", text)
	}
}

func TestConcreteRejectsZeroVolume(t *testing.T) {
	ratio, _ := ParseMixRatio("1:2:4")
	_, err := Concrete(0, ratio)
	wantInvalid(t, err, "volume")
}
