package takeoff

import (
	"math"
	"strconv"
	"strings"
)

// MixRatio is a cement:sand:aggregate proportion by volume.
type MixRatio struct {
	Label     string
	Cement    float64
	Sand      float64
	Aggregate float64
}

// Parts returns the sum of the three proportions.
func (m MixRatio) Parts() float64 { return m.Cement + m.Sand + m.Aggregate }

// MixRatios is the enumerated set accepted by every concrete calculator.
var MixRatios = []string{"1:1:2", "1:1.5:3", "1:2:4", "1:3:6", "1:4:8"}

// MortarRatios is the cement:sand set accepted for brickwork mortar.
var MortarRatios = []string{"1:3", "1:4", "1:5", "1:6"}

// ParseMixRatio parses one of MixRatios.
func ParseMixRatio(s string) (MixRatio, error) {
	label := normalizeRatio(s)
	if !contains(MixRatios, label) {
		return MixRatio{}, Invalid("mix_ratio", "%q is not one of %s", s, strings.Join(MixRatios, ", "))
	}
	p := ratioParts(label)
	return MixRatio{Label: label, Cement: p[0], Sand: p[1], Aggregate: p[2]}, nil
}

// MortarRatio is a cement:sand proportion by volume.
type MortarRatio struct {
	Label  string
	Cement float64
	Sand   float64
}

// ParseMortarRatio parses one of MortarRatios.
func ParseMortarRatio(s string) (MortarRatio, error) {
	label := normalizeRatio(s)
	if !contains(MortarRatios, label) {
		return MortarRatio{}, Invalid("mortar_ratio", "%q is not one of %s", s, strings.Join(MortarRatios, ", "))
	}
	p := ratioParts(label)
	return MortarRatio{Label: label, Cement: p[0], Sand: p[1]}, nil
}

func normalizeRatio(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

// ratioParts assumes label has already been matched against a fixed set.
func ratioParts(label string) []float64 {
	fields := strings.Split(label, ":")
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i], _ = strconv.ParseFloat(f, 64)
	}
	return out
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Mix is the material split of one concrete pour.
type Mix struct {
	Ratio        MixRatio
	WetCft       float64
	DryCft       float64
	CementCft    float64
	CementBags   int
	SandCft      float64
	AggregateCft float64
}

// Concrete splits a wet volume into dry constituents.
func Concrete(wetCft float64, ratio MixRatio) (Mix, error) {
	if err := Positive("volume", wetCft); err != nil {
		return Mix{}, err
	}
	if ratio.Parts() <= 0 {
		return Mix{}, Invalid("mix_ratio", "is not set")
	}
	dry := wetCft * DryVolumeFactor
	parts := ratio.Parts()
	cement := dry * ratio.Cement / parts
	return Mix{
		Ratio:        ratio,
		WetCft:       wetCft,
		DryCft:       dry,
		CementCft:    cement,
		CementBags:   Bags(cement),
		SandCft:      dry * ratio.Sand / parts,
		AggregateCft: dry * ratio.Aggregate / parts,
	}, nil
}

// Bags converts a cement volume to whole bags, always rounding up.
func Bags(cementCft float64) int {
	if cementCft <= 0 {
		return 0
	}
	return int(math.Ceil(cementCft/CementBagCft - eps))
}

// Apply writes the concrete keys. Aggregate is left out when withAggregate is false.
func (m Mix) Apply(r *Report, withAggregate bool) {
	r.Set(KeyConcreteVolume, m.WetCft)
	r.Set(KeyDryVolume, m.DryCft)
	r.SetText(KeyMixRatio, m.Ratio.Label)
	r.Set(KeyCement, float64(m.CementBags))
	r.Set(KeySand, m.SandCft)
	if withAggregate {
		r.Set(KeyAggregate, m.AggregateCft)
	}
}

// Pour is the common path for calculators that cast one concrete volume.
func Pour(r *Report, wetCft float64, ratio string) (Mix, error) {
	mr, err := ParseMixRatio(ratio)
	if err != nil {
		return Mix{}, err
	}
	mix, err := Concrete(wetCft, mr)
	if err != nil {
		return Mix{}, err
	}
	mix.Apply(r, true)
	return mix, nil
}
