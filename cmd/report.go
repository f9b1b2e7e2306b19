package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfbench"
	"github.com/etnz/perfbench/renderer"
	"github.com/google/subcommands"
)

// reportCmd implements the "report" command.
type reportCmd struct {
	name     string
	weights  string
	bench    string
	riskFree float64
	currency string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "computes performance metrics of an entity against benchmarks"
}
func (*reportCmd) Usage() string {
	return `pfb report -bench <tickers> [-w <weights>] [-rf <rate>] TICKER...

  Computes beta, alpha, return ratio, tracking error, Treynor and Sharpe
  ratios of a security (one ticker) or a weighted basket (several tickers
  with -w) against every benchmark ticker, and prints them as a table.

Usage Examples:
# A single stock against two indices.
$ pfb report -bench GSPC.INDX,NDX.INDX AAPL.US

# A 60/40 basket against one index, with a 3% risk-free rate.
$ pfb report -bench GSPC.INDX -w 0.6,0.4 -rf 0.03 AAPL.US MCD.US
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "Portfolio", "display name of the basket when several tickers are given")
	f.StringVar(&c.weights, "w", "", "comma separated basket weights, they must sum to exactly 1")
	f.StringVar(&c.bench, "bench", "", "comma separated benchmark tickers")
	f.Float64Var(&c.riskFree, "rf", 0, "annual risk-free rate, e.g. 0.03 for 3%")
	f.StringVar(&c.currency, "currency", "USD", "currency of the quotes in the store")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no ticker to evaluate\n")
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

	report := perfbench.NewReport(entity, benchmark)
	table, err := report.AllMetrics(c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute metrics: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.MetricsMarkdown(table)
	if sec, ok := entity.(*perfbench.Security); ok {
		md += fmt.Sprintf("\nLatest close: %s\n", sec.Valuation())
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}
