package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfbench/eodhd"
	"github.com/google/subcommands"
)

// latestCmd implements the "latest" command.
type latestCmd struct {
	eodhdApiFlag string
}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "prints the latest traded price of tickers" }
func (*latestCmd) Usage() string {
	return `pfb latest TICKER...

  Prints the most recent traded price of each ticker from the EODHD realtime
  (delayed) endpoint.
`
}

func (c *latestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eodhdApiFlag, "eodhd-api-key", "", "EODHD API key. This flag takes precedence over the "+eodhdApiKeyEnv+" environment variable. You can get one at https://eodhd.com/")
}

func (c *latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := eodhdApiKey(c.eodhdApiFlag)
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhdApiKeyEnv)
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no ticker\n")
		return subcommands.ExitFailure
	}

	client := eodhd.NewClient(key)
	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		price, err := client.Latest(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%g\n", ticker, price)
	}
	return status
}
