package cli

import (
	"encoding/json"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/spf13/cobra"
)

type statsCmd struct {
	source sourceFlags
	days   int
	start  string
	from   string
	to     string
}

func (c *CLI) newStatsCmd() *cobra.Command {
	sc := &statsCmd{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print period statistics of a generated dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset, err := c.buildDataset(cmd, sc.source, sc.days, sc.start)
			if err != nil {
				return err
			}
			from, err := parseDate("from", sc.from)
			if err != nil {
				return err
			}
			to, err := parseDate("to", sc.to)
			if err != nil {
				return err
			}

			first, last, _ := domain.DateSpan(dataset)
			if from.IsZero() {
				from = first
			}
			if to.IsZero() {
				to = last
			}
			stats, err := domain.ComputePeriodStatistics(dataset, from, to)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}

	cmd.Flags().IntVar(&sc.days, "days", domain.DefaultDays, "Number of records to generate")
	cmd.Flags().StringVar(&sc.start, "start", "", "Date of the first record, YYYY-MM-DD")
	cmd.Flags().StringVar(&sc.from, "from", "", "First day of the period, YYYY-MM-DD (earliest record when empty)")
	cmd.Flags().StringVar(&sc.to, "to", "", "Last day of the period, YYYY-MM-DD (latest record when empty)")
	sc.source.register(cmd)

	return cmd
}
