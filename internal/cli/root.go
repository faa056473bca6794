// Package cli is the takeoff command line tool.
package cli

import (
	"github.com/spf13/cobra"

	"Takeoff/internal/logger"
)

// NewRootCmd builds the command tree. Output goes to cmd.OutOrStdout so
// tests can capture it.
func NewRootCmd(log *logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "takeoff",
		Short: "Material quantity take-off for structural parts",
		Long:  `takeoff computes construction material quantities for structural
parts: concrete and its constituents, reinforcing steel by bar size,
bricks and formwork area.

Parts are described in JSON:
{
  "name": "Ground floor column",
  "variant": "column",
  "parameters": {"length_ft": 1, "width_ft": 1, "height_ft": 10,
                 "count": 1, "mix_ratio": "1:2:4", "bar_dia_mm": 12,
                 "bar_spacing_in": 6, "clear_cover_in": 1.5}
}

Use 'takeoff variants' to list the supported variants.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newVariantsCmd(),
		newComputeCmd(),
		newEarthworkCmd(log),
		newPricesCmd(log),
		newVersionCmd(),
	)
	return root
}
