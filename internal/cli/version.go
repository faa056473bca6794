package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"Takeoff/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "takeoff %s (%s)\n", version.Version, version.GitCommit)
		},
	}
}
