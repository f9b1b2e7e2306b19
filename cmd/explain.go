package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfbench"
	"github.com/etnz/perfbench/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// explainCmd implements the "explain" command: a report followed by a plain
// language reading of it by Gemini.
type explainCmd struct {
	reportCmd
	model string
}

func (*explainCmd) Name() string { return "explain" }
func (*explainCmd) Synopsis() string {
	return "computes performance metrics and asks Gemini to explain them"
}
func (*explainCmd) Usage() string {
	return `pfb explain -bench <tickers> [-w <weights>] [-rf <rate>] TICKER...

  Computes the same metrics table as 'pfb report', then asks Gemini for a
  short plain-language reading of it.

  Requires the GEMINI_API_KEY environment variable to be set.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	c.reportCmd.SetFlags(f)
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	table, err := perfbench.NewReport(entity, benchmark).AllMetrics(c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not compute metrics: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.MetricsMarkdown(table)
	printMarkdown(md)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := "You are a portfolio analyst. In a few short paragraphs, explain what the following" +
		" performance metrics table says about the entity, in plain language for a non specialist." +
		" Mention anything unusual.\n\n" + md
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
