package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Takeoff/internal/calc/estimate"
	"Takeoff/internal/calc/pricing"
	"Takeoff/internal/calc/takeoff"
	"Takeoff/internal/pricebook"
)

const rule = "───────────────────────────────────────────────────────────────"

func newComputeCmd() *cobra.Command {
	var file, prices string
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute material quantities for parts in a JSON file",
		Long:  `Compute the material report of one part, or of every part in a
JSON array, read from a file ("-" reads standard input).

With --prices, each report is also priced from a YAML price file:
prices:
  cement: 520
  sand: 45
  steel: 92.5

Examples:
  takeoff compute --file column.json
  takeoff compute -f parts.json --prices prices.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			var table pricing.Table
			if prices != "" {
				if table, err = (pricebook.FileSource{Path: prices}).Prices(context.Background()); err != nil {
					return err
				}
			}
			res, err := computeDocument(data)
			if err != nil {
				return err
			}
			printBatch(cmd.OutOrStdout(), res, table)
			if res.Failed > 0 {
				return fmt.Errorf("%d of %d parts failed", res.Failed, res.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to part JSON file [required]")
	cmd.Flags().StringVarP(&prices, "prices", "p", "", "Path to YAML price file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// computeDocument accepts a single part object or an array of parts.
func computeDocument(data []byte) (estimate.BatchResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return estimate.BatchResult{}, fmt.Errorf("parse parts: %w", err)
		}
		return estimate.BatchJSON(raws), nil
	}
	return estimate.BatchJSON([]json.RawMessage{data}), nil
}

func printBatch(out io.Writer, res estimate.BatchResult, table pricing.Table) {
	for _, item := range res.Results {
		fmt.Fprintln(out)
		title := item.Name
		if title == "" {
			title = string(item.Variant)
		}
		fmt.Fprintf(out, "%s (%s)\n", title, item.Variant)
		fmt.Fprintln(out, rule)
		if item.Error != "" {
			fmt.Fprintf(out, "  error: %s\n", item.Error)
			continue
		}
		printReport(out, item.Report)
		if table != nil {
			printEstimate(out, pricing.EstimateCost(item.Report, table))
		}
	}
	fmt.Fprintln(out)
}

func printReport(out io.Writer, r *takeoff.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range r.Entries() {
		if e.IsText {
			fmt.Fprintf(w, "  %s:\t%s\n", e.Key, e.Text)
			continue
		}
		fmt.Fprintf(w, "  %s:\t%.2f\n", e.Key, e.Value)
	}
	w.Flush()
}

func printEstimate(out io.Writer, est pricing.Estimate) {
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Material\tQuantity\tUnit\tRate\tAmount\t\n")
	for _, l := range est.Lines {
		fmt.Fprintf(w, "  %s\t%.2f\t%s\t%.2f\t%.2f\t\n", l.Material, l.Quantity, l.Unit, l.UnitPrice, l.Amount)
	}
	fmt.Fprintf(w, "  Total\t\t\t\t%.2f\t\n", est.Total)
	w.Flush()
	for _, m := range est.Missing {
		fmt.Fprintf(out, "  warning: no price for %s\n", m)
	}
}
