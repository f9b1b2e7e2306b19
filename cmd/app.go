// Package cmd implements the CLI application to benchmark securities and
// portfolios against market indices.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/perfbench"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&reportCmd{},
	&chartCmd{},
	&latestCmd{},
	&topicCmd{},
	&explainCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".quotes", "Path to the quotes database folder (JSONL files, one per ticker)")

const eodhdApiKeyEnv = "EODHD_API_KEY"

// OpenStore opens the quotes database at the app store path.
func OpenStore() *perfbench.Store {
	return perfbench.OpenStore(*storePath)
}

// eodhdApiKey retrieves the EODHD API key from the command-line flag or the
// environment variable. It prioritizes the flag over the environment variable.
func eodhdApiKey(flagValue string) string {
	if flagValue == "" {
		flagValue = os.Getenv(eodhdApiKeyEnv)
	}
	return flagValue
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// loadSecurity reads one ticker's quotes from the store.
func loadSecurity(store *perfbench.Store, ticker, currency string) (*perfbench.Security, error) {
	quotes, err := store.Quotes(ticker)
	if err != nil {
		return nil, fmt.Errorf("no quotes for %q, run 'pfb fetch %s' first: %w", ticker, ticker, err)
	}
	return perfbench.NewSecurity(ticker, currency, quotes)
}

// loadEntity builds the evaluated entity from tickers and weights: a single
// unweighted ticker is a Security, anything else a Basket.
func loadEntity(store *perfbench.Store, name, currency string, tickers []string, weights string) (perfbench.Returnable, error) {
	if len(tickers) == 1 && weights == "" {
		return loadSecurity(store, tickers[0], currency)
	}

	parts := strings.Split(weights, ",")
	if weights == "" {
		parts = nil
	}
	if len(parts) != len(tickers) {
		return nil, fmt.Errorf("%w: %d tickers but %d weights", perfbench.ErrInvalidInput, len(tickers), len(parts))
	}

	constituents := make([]perfbench.Returnable, len(tickers))
	ws := make([]perfbench.Weight, len(parts))
	for i, ticker := range tickers {
		sec, err := loadSecurity(store, ticker, currency)
		if err != nil {
			return nil, err
		}
		constituents[i] = sec
		w, err := perfbench.ParseWeight(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, err
		}
		ws[i] = w
	}
	return perfbench.NewBasket(name, constituents, ws)
}

// loadBenchmark builds the benchmark Index from a comma separated ticker list.
func loadBenchmark(store *perfbench.Store, bench, currency string) (*perfbench.Index, error) {
	if bench == "" {
		return nil, fmt.Errorf("%w: missing -bench ticker list", perfbench.ErrInvalidInput)
	}
	var constituents []perfbench.Returnable
	for _, ticker := range strings.Split(bench, ",") {
		sec, err := loadSecurity(store, strings.TrimSpace(ticker), currency)
		if err != nil {
			return nil, err
		}
		constituents = append(constituents, sec)
	}
	return perfbench.NewIndex(constituents...)
}
