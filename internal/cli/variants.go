package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Takeoff/internal/calc/part"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the structural part variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  Tag\tName\n")
			fmt.Fprintf(w, "  ───\t────\n")
			for _, v := range part.Variants() {
				fmt.Fprintf(w, "  %s\t%s\n", v, v.DisplayName())
			}
			return w.Flush()
		},
	}
}
