// Package part defines the closed set of structural-part variants and the
// transient Part value a calculation runs on.
package part

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant tags a structural part.
type Variant string

const (
	Pile              Variant = "pile"
	PileCap           Variant = "pile-cap"
	Column            Variant = "column"
	Beam              Variant = "beam"
	GradeBeam         Variant = "grade-beam"
	Slab              Variant = "slab"
	MatFoundation     Variant = "mat-foundation"
	StandaloneFooting Variant = "standalone-footing"
	CombinedFooting   Variant = "combined-footing"
	ShortColumn       Variant = "short-column"
	RetainingWall     Variant = "retaining-wall"
	Staircase         Variant = "staircase"
	Brickwork         Variant = "brickwork"
	CCCasting         Variant = "cc-casting"
	Earthwork         Variant = "earthwork"
)

var variants = []Variant{
	Pile, PileCap, Column, Beam, GradeBeam, Slab, MatFoundation,
	StandaloneFooting, CombinedFooting, ShortColumn, RetainingWall,
	Staircase, Brickwork, CCCasting, Earthwork,
}

// Variants lists every variant in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Valid reports whether v is one of the closed set of tags.
func (v Variant) Valid() bool {
	for _, known := range variants {
		if v == known {
			return true
		}
	}
	return false
}

// DisplayName renders the tag for people, e.g. "pile-cap" -> "Pile Cap".
func (v Variant) DisplayName() string {
	switch v {
	case CCCasting:
		return "CC Casting"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(v), "-", " "))
}

// Params is implemented by the input record of every variant.
type Params interface {
	Variant() Variant
}

// Part is one structural element to take off. Decoding needs the variant
// before the parameters can be typed, so it lives with the registry.
type Part struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Variant Variant `json:"variant"`
	Params  Params  `json:"parameters"`
}
