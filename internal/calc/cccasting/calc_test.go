package cccasting

import (
	"math"
	"testing"

	"Takeoff/internal/calc/takeoff"
)

func TestStoneAggregate(t *testing.T) {
	r, err := Calculate(Input{LengthFt: 10, WidthFt: 10, ThicknessIn: 3, MixRatio: "1:3:6"})
	if err != nil {
		t.Fatal(err)
	}
	v, _ := r.Get(takeoff.KeyConcreteVolume)
	if v != 25 {
		t.Fatalf("concrete = %v", v)
	}
	if !r.Has(takeoff.KeyAggregate) || r.Has(takeoff.KeyBricksForAggregate) || r.Has(takeoff.KeySolingBricks) {
		t.Fatalf("keys = %v", r.Keys())
	}
	if r.Has(takeoff.KeyShuttering) {
		t.Fatal("cast on ground needs no shuttering")
	}
}

func TestBrickAggregateReplacesStone(t *testing.T) {
	in := Input{LengthFt: 10, WidthFt: 10, ThicknessIn: 3, MixRatio: "1:3:6", Aggregate: Brick, BrickSoling: true}
	r, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if r.Has(takeoff.KeyAggregate) {
		t.Fatal("aggregate counted twice")
	}

	aggregate := 25 * 1.54 * 6 / 10
	v, _ := r.Get(takeoff.KeyBricksForAggregate)
	if v != math.Round(aggregate*12) {
		t.Fatalf("bricks for aggregate = %v, want %v", v, math.Round(aggregate*12))
	}
	v, _ = r.Get(takeoff.KeySolingBricks)
	if v != 288 {
		t.Fatalf("soling bricks = %v, want 288", v)
	}

	in.BricksPerAggregateCft = 10
	r, _ = Calculate(in)
	v, _ = r.Get(takeoff.KeyBricksForAggregate)
	if v != math.Round(aggregate*10) {
		t.Fatalf("override ignored: %v", v)
	}
}

func TestUnknownAggregate(t *testing.T) {
	_, err := Calculate(Input{LengthFt: 1, WidthFt: 1, ThicknessIn: 3, MixRatio: "1:3:6", Aggregate: "gravel"})
	if ie, ok := err.(*takeoff.InvalidInputError); !ok || ie.Field != "aggregate" {
		t.Fatalf("err = %v", err)
	}
}
