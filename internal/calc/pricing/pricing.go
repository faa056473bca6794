// Package pricing turns a material report into a priced estimate.
package pricing

import (
	"fmt"
	"math"
	"sort"

	"Takeoff/internal/calc/takeoff"
)

// Material ids used as price table keys.
const (
	Cement     = "cement"
	Sand       = "sand"
	Aggregate  = "aggregate"
	Brick      = "brick"
	Steel      = "steel"
	Shuttering = "shuttering"
)

// Materials lists every priced material id.
var Materials = []string{Cement, Sand, Aggregate, Brick, Steel, Shuttering}

// Units of the quantity each material is priced per.
var Units = map[string]string{
	Cement:     "bag",
	Sand:       "cft",
	Aggregate:  "cft",
	Brick:      "nos",
	Steel:      "kg",
	Shuttering: "sqft",
}

// Table holds unit prices keyed by material id.
type Table map[string]float64

// Validate rejects unknown material ids and negative or non-finite prices.
func (t Table) Validate() error {
	for m, p := range t {
		if _, ok := Units[m]; !ok {
			return fmt.Errorf("unknown material %q", m)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("price of %s is %v", m, p)
		}
	}
	return nil
}

// Line is the priced total of one material.
type Line struct {
	Material  string  `json:"material"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// Estimate is the result of pricing a report. Missing lists materials that
// had a quantity but no price; they contribute zero to Total.
type Estimate struct {
	Total   float64  `json:"total"`
	Lines   []Line   `json:"lines"`
	Missing []string `json:"missing,omitempty"`
}

// MaterialOf maps a report key to the material it is priced as. Keys that
// are informational (volumes, ratios) map to "".
func MaterialOf(key string) string {
	switch {
	case key == takeoff.KeyCement:
		return Cement
	case key == takeoff.KeySand:
		return Sand
	case key == takeoff.KeyAggregate:
		return Aggregate
	case key == takeoff.KeyTotalBricks, key == takeoff.KeyBricksForAggregate, key == takeoff.KeySolingBricks:
		return Brick
	case key == takeoff.KeyShuttering:
		return Shuttering
	case takeoff.IsSteelKey(key):
		return Steel
	}
	return ""
}

// EstimateCost prices r against table. Quantities of the same material,
// such as steel of several diameters, are pooled into one line in order of
// first appearance.
func EstimateCost(r *takeoff.Report, table Table) Estimate {
	var est Estimate
	at := map[string]int{}
	for _, e := range r.Entries() {
		if e.IsText {
			continue
		}
		m := MaterialOf(e.Key)
		if m == "" {
			continue
		}
		i, ok := at[m]
		if !ok {
			i = len(est.Lines)
			at[m] = i
			est.Lines = append(est.Lines, Line{Material: m, Unit: Units[m]})
		}
		est.Lines[i].Quantity += e.Value
	}

	for i := range est.Lines {
		l := &est.Lines[i]
		price, ok := table[l.Material]
		if !ok {
			est.Missing = append(est.Missing, l.Material)
			continue
		}
		l.UnitPrice = price
		l.Amount = l.Quantity * price
		est.Total += l.Amount
	}
	sort.Strings(est.Missing)
	return est
}
