// Command pfb benchmarks securities and portfolios against market indices.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/perfbench/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completion().Complete("pfb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	tickers := predict.Something
	benchFlags := map[string]complete.Predictor{
		"bench":    tickers,
		"w":        predict.Something,
		"name":     predict.Something,
		"currency": predict.Set{"USD", "EUR", "INR"},
	}
	reportFlags := map[string]complete.Predictor{"rf": predict.Something}
	for k, v := range benchFlags {
		reportFlags[k] = v
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-path": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"fetch": {Args: tickers, Flags: map[string]complete.Predictor{
				"eodhd-api-key": predict.Nothing,
				"from":          predict.Something,
				"to":            predict.Something,
			}},
			"report": {Args: tickers, Flags: reportFlags},
			"chart": {Args: tickers, Flags: func() map[string]complete.Predictor {
				m := map[string]complete.Predictor{"o": predict.Files("*.png")}
				for k, v := range benchFlags {
					m[k] = v
				}
				return m
			}()},
			"latest":  {Args: tickers, Flags: map[string]complete.Predictor{"eodhd-api-key": predict.Nothing}},
			"topic":   {Args: predict.Set{"beta", "alpha", "cagr", "return_ratio", "tracking_error", "treynor_ratio", "sharpe_ratio", "readme", "*"}},
			"explain": {Args: tickers, Flags: reportFlags},
		},
	}
}
