package takeoff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Report keys
const (
	KeyConcreteVolume     = "Concrete Volume (cft)"
	KeyDryVolume          = "Dry Volume (cft)"
	KeyMixRatio           = "Mix Ratio"
	KeyCement             = "Cement (bags)"
	KeySand               = "Sand (cft)"
	KeyAggregate          = "Aggregate (cft)"
	KeyBricksForAggregate = "Bricks for Aggregate (Nos.)"
	KeySolingBricks       = "Soling Bricks (Nos.)"
	KeyShuttering         = "Shuttering Area (sqft)"
	KeyBrickworkVolume    = "Brickwork Volume (cft)"
	KeyTotalBricks        = "Total Bricks (Nos.)"
	KeyMortarRatio        = "Mortar Ratio"
	KeyVolume             = "Volume (cft)"

	steelPrefix = "Steel "
)

// Entry is one line of a Report. Text entries carry a label instead of a quantity.
type Entry struct {
	Key    string
	Value  float64
	Text   string
	IsText bool
}

// Report maps material labels to quantities, keeping insertion order.
type Report struct {
	entries []Entry
	index   map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{index: make(map[string]int)}
}

func (r *Report) put(e Entry) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[e.Key]; ok {
		r.entries[i] = e
		return
	}
	r.index[e.Key] = len(r.entries)
	r.entries = append(r.entries, e)
}

// Set stores a numeric quantity, replacing any previous value.
func (r *Report) Set(key string, v float64) {
	r.put(Entry{Key: key, Value: v})
}

// Add accumulates a numeric quantity.
func (r *Report) Add(key string, v float64) {
	if i, ok := r.index[key]; ok && !r.entries[i].IsText {
		r.entries[i].Value += v
		return
	}
	r.Set(key, v)
}

// SetText stores a descriptive, non-numeric fact.
func (r *Report) SetText(key, text string) {
	r.put(Entry{Key: key, Text: text, IsText: true})
}

// Get returns the numeric value stored under key.
func (r *Report) Get(key string) (float64, bool) {
	i, ok := r.index[key]
	if !ok || r.entries[i].IsText {
		return 0, false
	}
	return r.entries[i].Value, true
}

// Text returns the text stored under key.
func (r *Report) Text(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok || !r.entries[i].IsText {
		return "", false
	}
	return r.entries[i].Text, true
}

func (r *Report) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

func (r *Report) Len() int { return len(r.entries) }

// Keys returns the keys in insertion order.
func (r *Report) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Validate reports the first numeric entry that is negative or not finite.
func (r *Report) Validate() error {
	for _, e := range r.entries {
		if e.IsText {
			continue
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value < 0 {
			return fmt.Errorf("quantity %q is %v", e.Key, e.Value)
		}
	}
	return nil
}

// IsSteelKey reports whether key is a per-diameter reinforcement line.
func IsSteelKey(key string) bool {
	return len(key) > len(steelPrefix) && key[:len(steelPrefix)] == steelPrefix
}

// MarshalJSON writes the report as an object in insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		var v []byte
		if e.IsText {
			v, err = json.Marshal(e.Text)
		} else {
			v, err = json.Marshal(e.Value)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of numbers and strings, keeping member order.
func (r *Report) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("report: expected object")
	}
	*r = Report{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return fmt.Errorf("report: %q: %w", key, err)
			}
			r.Set(key, f)
		case string:
			r.SetText(key, v)
		default:
			return fmt.Errorf("report: %q must be a number or a string", key)
		}
	}
	_, err = dec.Token()
	return err
}
