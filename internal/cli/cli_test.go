package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Takeoff/internal/logger"
)

const columnJSON = `{
  "name": "C1",
  "variant": "column",
  "parameters": {"length_ft": 1, "width_ft": 1, "height_ft": 10, "count": 1,
                 "mix_ratio": "1:2:4", "bar_dia_mm": 12, "bar_spacing_in": 6,
                 "clear_cover_in": 1.5}
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(logger.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVariants(t *testing.T) {
	out, err := run(t, "", "variants")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"column", "brickwork", "earthwork"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestComputeFile(t *testing.T) {
	path := writeFile(t, "column.json", columnJSON)
	out, err := run(t, "", "compute", "--file", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "C1 (column)") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Concrete Volume (cft):") || !strings.Contains(out, "10.00") {
		t.Errorf("missing concrete line:\n%s", out)
	}
}

func TestComputePriced(t *testing.T) {
	path := writeFile(t, "column.json", columnJSON)
	prices := writeFile(t, "prices.yaml", "prices:\n  cement: 500\n")
	out, err := run(t, "", "compute", "-f", path, "--prices", prices)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1000.00") {
		t.Errorf("cement amount missing:\n%s", out)
	}
	if !strings.Contains(out, "no price for steel") {
		t.Errorf("missing price warning absent:\n%s", out)
	}
}

func TestComputeStdinArray(t *testing.T) {
	in := "[" + columnJSON + `, {"variant": "column", "parameters": {"length_ft": -1}}]`
	out, err := run(t, in, "compute", "-f", "-")
	if err == nil || !strings.Contains(err.Error(), "1 of 2 parts failed") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "error:") {
		t.Errorf("failed part not reported:\n%s", out)
	}
}

func TestComputeRequiresFile(t *testing.T) {
	if _, err := run(t, "", "compute"); err == nil {
		t.Fatal("expected an error without --file")
	}
}

func TestEarthwork(t *testing.T) {
	out, err := run(t, "", "earthwork", "-l", "10", "-w", "5", "-d", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "100.00 cft") {
		t.Errorf("output = %q", out)
	}
	if _, err := run(t, "", "earthwork", "-l", "10", "-w", "0", "-d", "2"); err == nil {
		t.Fatal("expected an error for zero width")
	}
	out, err = run(t, "", "earthwork", "-l", "1e-200", "-w", "1e-200", "-d", "1e-200")
	if err == nil || !strings.Contains(err.Error(), "depth_ft") {
		t.Fatalf("err = %v, output %q", err, out)
	}
}

func TestPricesShow(t *testing.T) {
	prices := writeFile(t, "prices.yaml", "prices:\n  steel: 92.5\n  cement: 520\n")
	out, err := run(t, "", "prices", "show", "-f", prices)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(out, "cement") > strings.Index(out, "steel") {
		t.Errorf("materials not sorted:\n%s", out)
	}
	if !strings.Contains(out, "92.50") {
		t.Errorf("output = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "takeoff ") {
		t.Errorf("output = %q", out)
	}
}
