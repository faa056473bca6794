package takeoff

// Inches converts inches to feet.
func Inches(in float64) float64 { return in / InchesPerFoot }

// MMToFt converts millimetres to feet.
func MMToFt(mm float64) float64 { return mm / MMPerFoot }

// Inset returns span less the clear cover on both faces, rejecting a cover
// that consumes the whole span.
func Inset(field string, spanFt, coverIn float64) (float64, error) {
	if err := Positive(field, spanFt); err != nil {
		return 0, err
	}
	if err := NonNegative("clear_cover_in", coverIn); err != nil {
		return 0, err
	}
	inner := spanFt - 2*Inches(coverIn)
	if inner <= 0 {
		return 0, Invalid("clear_cover_in", "%g in leaves no room in %s of %g ft", coverIn, field, spanFt)
	}
	return inner, nil
}
