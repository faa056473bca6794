package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Takeoff/internal/calc/pricing"
	"Takeoff/internal/config"
	"Takeoff/internal/logger"
	"Takeoff/internal/pricebook"
	"Takeoff/internal/repo"
)

func newPricesCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Inspect and load unit prices",
	}
	cmd.AddCommand(newPricesShowCmd(), newPricesLoadCmd(log))
	return cmd
}

func newPricesShowCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the unit prices of a YAML price file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pricebook.FileSource{Path: file}.Prices(cmd.Context())
			if err != nil {
				return err
			}
			printTable(cmd, table)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to YAML price file [required]")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newPricesLoadCmd(log *logger.Logger) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Write the prices of a YAML file into the price database",
		Long:  `Upsert every price of a YAML price file into the unit_prices table.
The database is selected by DB_DRIVER and DATABASE_URL; migrations are
applied first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pricebook.FileSource{Path: file}.Prices(cmd.Context())
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UseDatabase() {
				return fmt.Errorf("no database configured: set DATABASE_URL")
			}
			db, err := repo.InitDB(cfg.DBDriver, cfg.DBURL)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := repo.Migrate(db, cfg.DBDriver); err != nil {
				return err
			}

			store := repo.NewPriceRepository(db, cfg.DBDriver)
			for _, m := range orderedMaterials(table) {
				if err := store.Upsert(cmd.Context(), m, table[m]); err != nil {
					return err
				}
				log.Debug("price of %s set to %.2f", m, table[m])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d prices\n", len(table))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to YAML price file [required]")
	cmd.MarkFlagRequired("file")
	return cmd
}

func printTable(cmd *cobra.Command, table pricing.Table) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tUnit\tPrice\n")
	for _, m := range orderedMaterials(table) {
		fmt.Fprintf(w, "  %s\t%s\t%.2f\n", m, pricing.Units[m], table[m])
	}
	w.Flush()
}

// orderedMaterials lists the materials of table in the canonical order.
func orderedMaterials(table pricing.Table) []string {
	out := make([]string, 0, len(table))
	for _, m := range pricing.Materials {
		if _, ok := table[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
