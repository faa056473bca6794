// Package estimate maps each structural part variant to its quantity
// calculator and runs parts through it.
package estimate

import (
	"errors"
	"fmt"

	"Takeoff/internal/calc/beam"
	"Takeoff/internal/calc/brickwork"
	"Takeoff/internal/calc/cccasting"
	"Takeoff/internal/calc/column"
	"Takeoff/internal/calc/combinedfooting"
	"Takeoff/internal/calc/earthwork"
	"Takeoff/internal/calc/footing"
	"Takeoff/internal/calc/gradebeam"
	"Takeoff/internal/calc/matfoundation"
	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/pile"
	"Takeoff/internal/calc/pilecap"
	"Takeoff/internal/calc/retainingwall"
	"Takeoff/internal/calc/shortcolumn"
	"Takeoff/internal/calc/slab"
	"Takeoff/internal/calc/staircase"
	"Takeoff/internal/calc/takeoff"
)

// ErrUnsupportedVariant is returned for a variant tag with no calculator.
var ErrUnsupportedVariant = errors.New("unsupported variant")

// Calculator computes the material report of one part's parameters.
type Calculator func(part.Params) (*takeoff.Report, error)

type binding struct {
	calc Calculator
	zero func() part.Params
}

// bind adapts a typed Calculate function to the registry. Parameters may be
// held by value or by pointer.
func bind[T part.Params](fn func(T) (*takeoff.Report, error)) binding {
	return binding{
		calc: func(p part.Params) (*takeoff.Report, error) {
			switch in := any(p).(type) {
			case T:
				return fn(in)
			case *T:
				if in != nil {
					return fn(*in)
				}
			}
			var want T
			return nil, takeoff.Invalid("parameters", "expected %T, got %T", want, p)
		},
		zero: func() part.Params {
			// *T has T's value-receiver methods, so the assertion holds.
			return any(new(T)).(part.Params)
		},
	}
}

var registry = map[part.Variant]binding{
	part.Pile:              bind(pile.Calculate),
	part.PileCap:           bind(pilecap.Calculate),
	part.Column:            bind(column.Calculate),
	part.Beam:              bind(beam.Calculate),
	part.GradeBeam:         bind(gradebeam.Calculate),
	part.Slab:              bind(slab.Calculate),
	part.MatFoundation:     bind(matfoundation.Calculate),
	part.StandaloneFooting: bind(footing.Calculate),
	part.CombinedFooting:   bind(combinedfooting.Calculate),
	part.ShortColumn:       bind(shortcolumn.Calculate),
	part.RetainingWall:     bind(retainingwall.Calculate),
	part.Staircase:         bind(staircase.Calculate),
	part.Brickwork:         bind(brickwork.Calculate),
	part.CCCasting:         bind(cccasting.Calculate),
	part.Earthwork:         bind(earthwork.Calculate),
}

// IsKnownVariant reports whether v has a calculator.
func IsKnownVariant(v part.Variant) bool {
	_, ok := registry[v]
	return ok
}

// CalculatorFor returns the calculator bound to v.
func CalculatorFor(v part.Variant) (Calculator, error) {
	b, ok := registry[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, v)
	}
	return b.calc, nil
}

// NewParams returns a pointer to a zero parameter record for v, ready to be
// decoded into.
func NewParams(v part.Variant) (part.Params, error) {
	b, ok := registry[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, v)
	}
	return b.zero(), nil
}

// ComputeMaterials runs p through its variant's calculator. It never
// returns an empty report in place of an error.
func ComputeMaterials(p part.Part) (*takeoff.Report, error) {
	calc, err := CalculatorFor(p.Variant)
	if err != nil {
		return nil, err
	}
	if p.Params == nil {
		return nil, takeoff.Invalid("parameters", "missing for %s", p.Variant)
	}
	r, err := calc(p.Params)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, takeoff.Invalid("parameters", "%v", err)
	}
	return r, nil
}
