package estimate

import (
	"encoding/json"
	"errors"

	"Takeoff/internal/calc/part"
	"Takeoff/internal/calc/takeoff"
)

// ItemResult is the outcome for one part of a batch. Exactly one of Report
// and Error is set.
type ItemResult struct {
	ID      string          `json:"id"`
	Name    string          `json:"name,omitempty"`
	Variant part.Variant    `json:"variant"`
	Report  *takeoff.Report `json:"report,omitempty"`
	Error   string          `json:"error,omitempty"`
	Field   string          `json:"field,omitempty"`
}

type BatchResult struct {
	Count   int          `json:"count"`
	Failed  int          `json:"failed"`
	Results []ItemResult `json:"results"`
}

// Batch computes every part in order. A failing part is recorded in its
// result and does not stop the rest.
func Batch(parts []part.Part) BatchResult {
	out := BatchResult{Results: make([]ItemResult, 0, len(parts))}
	for _, p := range parts {
		item := ItemResult{ID: p.ID, Name: p.Name, Variant: p.Variant}
		r, err := ComputeMaterials(p)
		if err != nil {
			item.fail(err)
		} else {
			item.Report = r
		}
		out.add(item)
	}
	return out
}

// BatchJSON decodes and computes each raw part. Parts that fail to decode
// are reported like parts that fail to compute.
func BatchJSON(raws []json.RawMessage) BatchResult {
	out := BatchResult{Results: make([]ItemResult, 0, len(raws))}
	for _, raw := range raws {
		p, err := DecodePart(raw)
		if err != nil {
			// Best effort: labels the row when the envelope is readable.
			var w wirePart
			_ = json.Unmarshal(raw, &w)
			item := ItemResult{ID: w.ID, Name: w.Name, Variant: w.Variant}
			item.fail(err)
			out.add(item)
			continue
		}
		parts := []part.Part{p}
		AssignIDs(parts)
		out.add(Batch(parts).Results[0])
	}
	return out
}

func (it *ItemResult) fail(err error) {
	it.Error = err.Error()
	var invalid *takeoff.InvalidInputError
	if errors.As(err, &invalid) {
		it.Field = invalid.Field
	}
}

func (b *BatchResult) add(it ItemResult) {
	b.Results = append(b.Results, it)
	b.Count++
	if it.Error != "" {
		b.Failed++
	}
}
