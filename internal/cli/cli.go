// Package cli implements the farmctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/export"
	"github.com/spf13/cobra"
)

// DefaultMaxDays caps the --days flag when Options.MaxDays is unset.
const DefaultMaxDays = 3650

// CLI is the farmctl command-line interface.
type CLI struct {
	out     io.Writer
	maxDays int
	rootCmd *cobra.Command
}

// Options configures the CLI.
type Options struct {
	Output  io.Writer
	MaxDays int
}

// New creates a CLI writing results to opts.Output (stdout by default).
func New(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = DefaultMaxDays
	}
	c := &CLI{out: opts.Output, maxDays: opts.MaxDays}
	c.rootCmd = c.newRootCmd()
	return c
}

// ExecuteArgs runs the command tree with explicit arguments.
func (c *CLI) ExecuteArgs(ctx context.Context, args []string) error {
	c.rootCmd.SetArgs(args)
	return c.rootCmd.ExecuteContext(ctx)
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "farmctl",
		Short:         "Generate, summarize and validate synthetic farm datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(c.out)

	cmd.AddCommand(c.newGenerateCmd())
	cmd.AddCommand(c.newDayCmd())
	cmd.AddCommand(c.newStatsCmd())
	cmd.AddCommand(c.newValidateCmd())

	return cmd
}

// sourceFlags are shared by every command that generates records.
type sourceFlags struct {
	seed     uint64
	farmName string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for reproducible output (random when unset)")
	cmd.Flags().StringVar(&f.farmName, "farm", domain.DefaultFarmName, "Farm name stamped on every record")
}

func (f *sourceFlags) random(cmd *cobra.Command) domain.Random {
	if cmd.Flags().Changed("seed") {
		return domain.NewRandom(f.seed)
	}
	return domain.NewTimeSeededRandom()
}

// outputFlags control where and how a dataset is written.
type outputFlags struct {
	format   string
	dir      string
	filename string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", string(export.FormatJSON), "Output format: json, csv or xlsx")
	cmd.Flags().StringVar(&f.dir, "out", "", "Directory to write the export into (stdout when empty)")
	cmd.Flags().StringVar(&f.filename, "filename", "", "Export filename (farm-data-export.<format> when empty)")
}

func (c *CLI) write(ctx context.Context, f outputFlags, dataset domain.FarmDataset) error {
	format, err := export.ParseFormat(f.format)
	if err != nil {
		return err
	}

	var sink export.Sink = export.WriterSink{W: c.out}
	if f.dir != "" {
		sink = export.FileSink{Dir: f.dir}
	}
	return export.Export(ctx, sink, format, f.filename, dataset)
}

func parseDate(flag, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s %q: want YYYY-MM-DD", domain.ErrInvalidArgument, flag, v)
	}
	return t, nil
}

func (c *CLI) checkDays(days int) error {
	if days < 0 || days > c.maxDays {
		return fmt.Errorf("%w: --days must be between 0 and %d, got %d", domain.ErrInvalidArgument, c.maxDays, days)
	}
	return nil
}
