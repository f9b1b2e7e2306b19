package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfbench/renderer"
	"github.com/google/subcommands"
)

// chartCmd implements the "chart" command.
type chartCmd struct {
	name     string
	weights  string
	bench    string
	currency string
	output   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "renders a cumulative return chart as a PNG file" }
func (*chartCmd) Usage() string {
	return `pfb chart -bench <tickers> [-w <weights>] [-o <file>] TICKER...

  Renders the cumulative return of the entity and of every benchmark ticker
  over their shared days, into a PNG file.

Usage Examples:
$ pfb chart -bench GSPC.INDX -o aapl.png AAPL.US
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "Portfolio", "display name of the basket when several tickers are given")
	f.StringVar(&c.weights, "w", "", "comma separated basket weights, they must sum to exactly 1")
	f.StringVar(&c.bench, "bench", "", "comma separated benchmark tickers")
	f.StringVar(&c.currency, "currency", "USD", "currency of the quotes in the store")
	f.StringVar(&c.output, "o", "chart.png", "output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no ticker to chart\n")
		return subcommands.ExitFailure
	}
	store := OpenStore()

	entity, err := loadEntity(store, c.name, c.currency, f.Args(), c.weights)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not build entity: %v\n", err)
		return subcommands.ExitFailure
	}
	benchmark, err := loadBenchmark(store, c.bench, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not build benchmark: %v\n", err)
		return subcommands.ExitFailure
	}

	png, err := renderer.CumulativeReturns(entity, benchmark)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not render chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
