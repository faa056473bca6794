package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"Takeoff/internal/advisor"
	"Takeoff/internal/calc/earthwork"
	"Takeoff/internal/config"
	"Takeoff/internal/logger"
)

func newEarthworkCmd(log *logger.Logger) *cobra.Command {
	var length, width, depth float64
	var advise bool
	cmd := &cobra.Command{
		Use:   "earthwork",
		Short: "Excavation volume, optionally with a time and manpower estimate",
		Long:  `Compute the excavation volume of a rectangular pit.

With --advise the volume is sent to the estimator configured by
ADVISOR_ENDPOINT, ADVISOR_API_KEY and ADVISOR_MODEL.

Examples:
  takeoff earthwork --length 50 --width 40 --depth 5
  takeoff earthwork -l 50 -w 40 -d 5 --advise`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !advise {
				v, err := earthwork.Volume(length, width, depth)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  Volume:\t%.2f cft\n", v)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UseAdvisor() {
				return fmt.Errorf("--advise needs ADVISOR_ENDPOINT")
			}
			v, m, err := advisor.Feed(cmd.Context(), newEstimator(cfg, log), length, width, depth)
			if err != nil && !errors.Is(err, advisor.ErrEstimator) {
				return err
			}
			fmt.Fprintf(out, "  Volume:\t%.2f cft\n", v)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  Duration:\t%d-%d days\n", m.MinDays, m.MaxDays)
			fmt.Fprintf(out, "  Workers:\t%d-%d\n", m.MinWorkers, m.MaxWorkers)
			if m.Notes != "" {
				fmt.Fprintf(out, "  Notes:\t%s\n", m.Notes)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&length, "length", "l", 0, "Pit length (ft) [required]")
	cmd.Flags().Float64VarP(&width, "width", "w", 0, "Pit width (ft) [required]")
	cmd.Flags().Float64VarP(&depth, "depth", "d", 0, "Pit depth (ft) [required]")
	cmd.Flags().BoolVar(&advise, "advise", false, "Ask the external estimator for time and manpower")
	cmd.MarkFlagRequired("length")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("depth")
	return cmd
}

// newEstimator wires the GPT estimator with the configured retry policy.
func newEstimator(cfg config.Config, log *logger.Logger) advisor.Estimator {
	gpt := advisor.NewGPTEstimator(cfg.AdvisorEndpoint, cfg.AdvisorAPIKey, log,
		advisor.WithModel(cfg.AdvisorModel),
		advisor.WithHTTPTimeout(cfg.AdvisorTimeout),
	)
	return advisor.WithRetry(gpt, cfg.AdvisorRetries, 0, cfg.AdvisorTimeout)
}
