// Package renderer turns reports into human-readable artifacts, markdown
// tables and PNG charts.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/perfbench"
	md "github.com/nao1215/markdown"
)

// MetricsMarkdown renders a metrics table to a markdown string, one row per
// benchmark constituent.
func MetricsMarkdown(t *perfbench.MetricsTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance of %s", t.Entity))
	doc.PlainTextf("Risk-free rate: %s", percent(t.RiskFree))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Benchmark",
			"Beta",
			"Alpha",
			"Return Ratio",
			"Tracking Error",
			"Treynor",
			"Sharpe",
		},
	}
	for _, row := range t.Rows {
		table.Rows = append(table.Rows, []string{
			row.Benchmark,
			num(row.Beta),
			percent(row.Alpha),
			num(row.ReturnRatio),
			num(row.TrackingError),
			num(row.TreynorRatio),
			num(row.SharpeRatio),
		})
	}
	doc.Table(table)

	return doc.String()
}

func num(v float64) string { return fmt.Sprintf("%.4f", v) }

func percent(v float64) string { return fmt.Sprintf("%.2f%%", 100*v) }
