package takeoff

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// BarDiameters is the standard set of reinforcing bar sizes in mm.
var BarDiameters = []float64{6, 8, 10, 12, 16, 20, 22, 25, 28, 32}

// CheckBar rejects a diameter outside BarDiameters.
func CheckBar(field string, diaMM float64) error {
	for _, d := range BarDiameters {
		if d == diaMM {
			return nil
		}
	}
	return Invalid(field, "%g mm is not a standard bar size", diaMM)
}

// BarCount is the number of bars at spacingIn over spanFt, counting both ends.
func BarCount(spanFt, spacingIn float64) (int, error) {
	if err := Positive("bar_spacing_in", spacingIn); err != nil {
		return 0, err
	}
	if err := Positive("span", spanFt); err != nil {
		return 0, err
	}
	return int(math.Floor(spanFt*InchesPerFoot/spacingIn+eps)) + 1, nil
}

// KgPerFoot is the linear weight of one bar.
func KgPerFoot(diaMM float64) float64 {
	return diaMM * diaMM / SteelWeightDivisor * MetresPerFoot
}

// BarWeightKg is the weight of lengthFt of bar of the given diameter.
func BarWeightKg(diaMM, lengthFt float64) (float64, error) {
	if err := CheckBar("bar_dia_mm", diaMM); err != nil {
		return 0, err
	}
	if err := NonNegative("bar_length", lengthFt); err != nil {
		return 0, err
	}
	return lengthFt * KgPerFoot(diaMM), nil
}

// Anchorage is the development length of a bar, in feet.
func Anchorage(diaMM float64) float64 { return AnchorageDiameters * MMToFt(diaMM) }

// Hook is the length of one standard hook, in feet.
func Hook(diaMM float64) float64 { return HookDiameters * MMToFt(diaMM) }

// SteelKey is the report key for bars of one diameter.
func SteelKey(diaMM float64) string {
	return fmt.Sprintf("%s%smm (kg)", steelPrefix, strconv.FormatFloat(diaMM, 'f', -1, 64))
}

// Steel accumulates bar lengths per diameter.
type Steel struct {
	lengths map[float64]float64
}

// AddBars records count bars of lengthEachFt. Diameter must already be checked.
func (s *Steel) AddBars(diaMM float64, count int, lengthEachFt float64) {
	if s.lengths == nil {
		s.lengths = make(map[float64]float64)
	}
	s.lengths[diaMM] += float64(count) * lengthEachFt
}

// LengthFt returns the accumulated length for one diameter.
func (s *Steel) LengthFt(diaMM float64) float64 { return s.lengths[diaMM] }

// Apply writes one steel key per diameter, smallest first.
func (s *Steel) Apply(r *Report) error {
	dias := make([]float64, 0, len(s.lengths))
	for d := range s.lengths {
		dias = append(dias, d)
	}
	sort.Float64s(dias)
	for _, d := range dias {
		kg, err := BarWeightKg(d, s.lengths[d])
		if err != nil {
			return err
		}
		r.Add(SteelKey(d), kg)
	}
	return nil
}

// Ring is the cut length of a closed tie around a core perimeter, two hooks included.
func Ring(corePerimeterFt, diaMM float64) float64 {
	return corePerimeterFt + 2*Hook(diaMM)
}

// CorePerimeter is the perimeter of a rectangular section inside its clear cover.
func CorePerimeter(aFt, bFt, coverIn float64, aField, bField string) (float64, error) {
	a, err := Inset(aField, aFt, coverIn)
	if err != nil {
		return 0, err
	}
	b, err := Inset(bField, bFt, coverIn)
	if err != nil {
		return 0, err
	}
	return 2 * (a + b), nil
}

// Mesh adds a two-way bar mesh over a lengthFt x widthFt plan. Bars running
// along the length are spread across the width and vice versa; each bar is
// cut to the covered span plus extraFt.
func (s *Steel) Mesh(diaMM, spacingIn, lengthFt, widthFt, coverIn, extraFt float64, times int) error {
	l, err := Inset("length_ft", lengthFt, coverIn)
	if err != nil {
		return err
	}
	w, err := Inset("width_ft", widthFt, coverIn)
	if err != nil {
		return err
	}
	alongLength, err := BarCount(w, spacingIn)
	if err != nil {
		return err
	}
	alongWidth, err := BarCount(l, spacingIn)
	if err != nil {
		return err
	}
	s.AddBars(diaMM, alongLength*times, l+extraFt)
	s.AddBars(diaMM, alongWidth*times, w+extraFt)
	return nil
}
