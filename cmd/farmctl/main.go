// Command farmctl generates synthetic farm datasets from the command line.
//
// Usage:
//
//	farmctl generate --days 90 --seed 7 --format csv --out ./exports
//	farmctl day --season summer --crop fruits
//	farmctl stats --days 30 --start 2025-01-01 --from 2025-01-10 --to 2025-01-20
//	farmctl validate ./exports/farm-data-export.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/farm-data-engine/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := cli.New(cli.Options{Output: os.Stdout})
	if err := c.ExecuteArgs(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
