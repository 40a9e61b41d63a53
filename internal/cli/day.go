package cli

import (
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/spf13/cobra"
)

type dayCmd struct {
	source sourceFlags
	output outputFlags
	season string
	crop   string
	date   string
}

func (c *CLI) newDayCmd() *cobra.Command {
	dc := &dayCmd{}
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Generate a single-day dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := dc.options()
			if err != nil {
				return err
			}
			dataset, err := domain.NewBuilder(dc.source.random(cmd), nil).CreateSingleDayDataset(opts)
			if err != nil {
				return err
			}
			return c.write(cmd.Context(), dc.output, dataset)
		},
	}

	cmd.Flags().StringVar(&dc.season, "season", "", "Season: spring, summer, autumn or winter (random when empty)")
	cmd.Flags().StringVar(&dc.crop, "crop", "", "Crop type: cereals, vegetables or fruits (random when empty)")
	cmd.Flags().StringVar(&dc.date, "date", "", "Record date, YYYY-MM-DD (today when empty)")
	dc.source.register(cmd)
	dc.output.register(cmd)

	return cmd
}

func (dc *dayCmd) options() (domain.DayOptions, error) {
	opts := domain.DayOptions{FarmName: dc.source.farmName}
	var err error
	if dc.season != "" {
		if opts.Season, err = domain.ParseSeason(dc.season); err != nil {
			return opts, err
		}
	}
	if dc.crop != "" {
		if opts.CropType, err = domain.ParseCropType(dc.crop); err != nil {
			return opts, err
		}
	}
	opts.Date, err = parseDate("date", dc.date)
	return opts, err
}
