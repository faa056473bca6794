package estimate

import (
	"encoding/json"
	"testing"

	"Takeoff/internal/calc/earthwork"
	"Takeoff/internal/calc/part"
)

func TestBatchContinuesPastFailures(t *testing.T) {
	parts := []part.Part{
		columnPart(),
		{ID: "bad", Variant: part.Earthwork, Params: earthwork.Input{LengthFt: 1, WidthFt: 1}},
		{ID: "pit", Variant: part.Earthwork, Params: earthwork.Input{LengthFt: 50, WidthFt: 40, DepthFt: 5}},
	}
	res := Batch(parts)
	if res.Count != 3 || res.Failed != 1 {
		t.Fatalf("count = %d, failed = %d", res.Count, res.Failed)
	}
	if res.Results[1].Error == "" || res.Results[1].Field != "depth_ft" || res.Results[1].Report != nil {
		t.Fatalf("failed item = %+v", res.Results[1])
	}
	if v, _ := res.Results[2].Report.Get("Volume (cft)"); v != 10000 {
		t.Fatalf("volume = %v", v)
	}
}

func TestBatchJSON(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(`{"name": "pit", "variant": "earthwork", "parameters": {"length_ft": 10, "width_ft": 10, "depth_ft": 3}}`),
		json.RawMessage(`{"id": "x", "variant": "curtain-wall", "parameters": {}}`),
		json.RawMessage(`{"id": "y", "variant": "earthwork", "parameters": {"length_ft": 10, "width_ft": 10, "depth_ft": 3, "count": 2}}`),
	}
	res := BatchJSON(raws)
	if res.Count != 3 || res.Failed != 2 {
		t.Fatalf("count = %d, failed = %d: %+v", res.Count, res.Failed, res.Results)
	}
	if res.Results[0].ID == "" {
		t.Fatal("decoded part was not given an id")
	}
	if res.Results[1].ID != "x" || res.Results[1].Variant != "curtain-wall" {
		t.Fatalf("failed item lost its identity: %+v", res.Results[1])
	}
	if res.Results[2].Field != "parameters" {
		t.Fatalf("field = %q", res.Results[2].Field)
	}
}
