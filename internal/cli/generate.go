package cli

import (
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/spf13/cobra"
)

type generateCmd struct {
	source sourceFlags
	output outputFlags
	days   int
	start  string
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	gc := &generateCmd{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a multi-day dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset, err := c.buildDataset(cmd, gc.source, gc.days, gc.start)
			if err != nil {
				return err
			}
			return c.write(cmd.Context(), gc.output, dataset)
		},
	}

	cmd.Flags().IntVar(&gc.days, "days", domain.DefaultDays, "Number of records to generate")
	cmd.Flags().StringVar(&gc.start, "start", "", "Date of the first record, YYYY-MM-DD (every record dated today when empty)")
	gc.source.register(cmd)
	gc.output.register(cmd)

	return cmd
}

func (c *CLI) buildDataset(cmd *cobra.Command, src sourceFlags, days int, start string) (domain.FarmDataset, error) {
	if err := c.checkDays(days); err != nil {
		return nil, err
	}
	startDate, err := parseDate("start", start)
	if err != nil {
		return nil, err
	}
	b := domain.NewBuilder(src.random(cmd), nil)
	return b.CreateDataset(days, domain.DatasetOptions{FarmName: src.farmName, StartDate: startDate})
}
