package cli

import (
	"fmt"
	"os"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/export"
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check an exported JSON, CSV or XLSX file against the record ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			dataset, format, err := export.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := domain.ValidateDataset(dataset); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records valid (%s)\n", args[0], len(dataset), format)
			return nil
		},
	}
}
