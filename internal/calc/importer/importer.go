// Package importer reads parts from a spreadsheet. The first sheet holds
// one part per row under a header of column names: id, name, variant and
// then parameter names such as length_ft or mix_ratio.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Takeoff/internal/calc/estimate"
	"Takeoff/internal/calc/part"
)

// RowError explains why a spreadsheet row was skipped. Row is 1-based as
// shown in spreadsheet software.
type RowError struct {
	Row    int    `json:"row"`
	Column string `json:"column,omitempty"`
	Error  string `json:"error"`
}

// ParseWorkbook reads all part rows. Bad rows are reported and skipped;
// the error is only set when the workbook itself is unusable.
func ParseWorkbook(r io.Reader) ([]part.Part, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no part rows", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if col := indexOf(header, "variant"); col < 0 {
		return nil, nil, fmt.Errorf("sheet %q has no variant column", sheet)
	}

	var parts []part.Part
	var bad []RowError
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		p, rerr := parseRow(header, rows[i])
		if rerr != nil {
			rerr.Row = i + 1
			bad = append(bad, *rerr)
			continue
		}
		parts = append(parts, p)
	}
	return parts, bad, nil
}

func parseRow(header, row []string) (part.Part, *RowError) {
	cells := map[string]string{}
	for i, name := range header {
		if name == "" || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			cells[name] = v
		}
	}

	v := part.Variant(cells["variant"])
	params, err := estimate.NewParams(v)
	if err != nil {
		return part.Part{}, &RowError{Column: "variant", Error: err.Error()}
	}
	kinds := fieldKinds(params)

	values := map[string]any{}
	for name, cell := range cells {
		switch name {
		case "id", "name", "variant":
			continue
		}
		kind, ok := kinds[name]
		if !ok {
			return part.Part{}, &RowError{Column: name, Error: fmt.Sprintf("not a parameter of %s", v)}
		}
		val, err := convert(cell, kind)
		if err != nil {
			return part.Part{}, &RowError{Column: name, Error: err.Error()}
		}
		values[name] = val
	}

	doc, err := json.Marshal(map[string]any{
		"id":         cells["id"],
		"name":       cells["name"],
		"variant":    v,
		"parameters": values,
	})
	if err != nil {
		return part.Part{}, &RowError{Error: err.Error()}
	}
	p, err := estimate.DecodePart(doc)
	if err != nil {
		return part.Part{}, &RowError{Error: err.Error()}
	}
	return p, nil
}

// fieldKinds maps the JSON names of a parameter record to their kinds.
func fieldKinds(params part.Params) map[string]reflect.Kind {
	t := reflect.TypeOf(params)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(map[string]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = f.Type.Kind()
	}
	return out
}

func convert(cell string, kind reflect.Kind) (any, error) {
	switch kind {
	case reflect.Float64:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", cell)
		}
		return f, nil
	case reflect.Int:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil || f != float64(int(f)) {
			return nil, fmt.Errorf("%q is not a whole number", cell)
		}
		return int(f), nil
	case reflect.Bool:
		switch strings.ToLower(cell) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("%q is not yes or no", cell)
		}
		return b, nil
	}
	return cell, nil
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
