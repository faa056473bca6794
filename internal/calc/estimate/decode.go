package estimate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

type wirePart struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Variant    part.Variant    `json:"variant"`
	Parameters json.RawMessage `json:"parameters"`
}

// DecodePart reads a part in its JSON form. The variant picks the shape of
// parameters, and fields that do not belong to that shape are rejected.
func DecodePart(data []byte) (part.Part, error) {
	var w wirePart
	if err := strict(data, &w); err != nil {
		return part.Part{}, takeoff.Invalid("part", "%v", err)
	}
	return w.part()
}

func (w wirePart) part() (part.Part, error) {
	if w.Variant == "" {
		return part.Part{}, takeoff.Invalid("variant", "is required")
	}
	if !w.Variant.Valid() {
		return part.Part{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, w.Variant)
	}
	params, err := NewParams(w.Variant)
	if err != nil {
		return part.Part{}, err
	}
	if len(w.Parameters) == 0 || string(w.Parameters) == "null" {
		return part.Part{}, takeoff.Invalid("parameters", "missing for %s", w.Variant)
	}
	if err := strict(w.Parameters, params); err != nil {
		return part.Part{}, takeoff.Invalid("parameters", "%v", err)
	}
	return part.Part{ID: w.ID, Name: w.Name, Variant: w.Variant, Params: params}, nil
}

func strict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON value")
	}
	return nil
}
