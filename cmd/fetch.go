package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfbench/date"
	"github.com/etnz/perfbench/eodhd"
	"github.com/google/subcommands"
)

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	eodhdApiFlag string
	from         string
	to           string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches end-of-day quotes from EODHD into the store" }
func (*fetchCmd) Usage() string {
	return `pfb fetch [-from <date>] [-to <date>] TICKER...

  Fetches end-of-day quotes from eodhd.com and merges them into the local
  quotes store. Tickers use the EODHD format "SYMBOL.EXCHANGECODE".

  Requires the EODHD_API_KEY environment variable to be set or passed as a flag.

Usage Examples:
$ pfb fetch -from 2024-01-01 MCD.US AAPL.US
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eodhdApiFlag, "eodhd-api-key", "", "EODHD API key. This flag takes precedence over the "+eodhdApiKeyEnv+" environment variable. You can get one at https://eodhd.com/")
	f.StringVar(&c.from, "from", "", "first day to fetch (YYYY-MM-DD), one year ago by default")
	f.StringVar(&c.to, "to", "", "last day to fetch (YYYY-MM-DD), today by default")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key := eodhdApiKey(c.eodhdApiFlag)
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhdApiKeyEnv)
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: no ticker to fetch\n")
		return subcommands.ExitFailure
	}

	from, to := date.Today().Add(-365), date.Today()
	var err error
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	provider := eodhd.NewClient(key)
	store := OpenStore()
	for _, ticker := range f.Args() {
		quotes, err := provider.Daily(ticker, from, to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch %q: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		if err := store.Save(ticker, quotes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save %q: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %d quotes from %s to %s\n", ticker, len(quotes), from, to)
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully fetched from eodhd.com and updated the store.\n")
	return subcommands.ExitSuccess
}
