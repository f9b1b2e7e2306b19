package renderer

import (
	"fmt"

	"github.com/etnz/perfbench"
	"github.com/etnz/perfbench/date"
	"github.com/vicanso/go-charts/v2"
)

// CumulativeReturns renders a PNG line chart of the cumulative return of the
// entity against every benchmark constituent, over their shared days.
func CumulativeReturns(entity perfbench.Returnable, benchmark *perfbench.Index) ([]byte, error) {
	all := append([]*date.Series{entity.DailyReturn()}, benchmark.Returns()...)
	days, cols := date.AlignAll(all...)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no shared day between %s and %s", perfbench.ErrInvalidInput, entity.Name(), benchmark.Name())
	}

	values := make([][]float64, len(cols))
	for i, col := range cols {
		values[i] = cumulate(col)
	}

	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.String()
	}
	legend := append([]string{entity.Name()}, benchmark.Names()...)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Cumulative return of %s", entity.Name())),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc(legend),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// cumulate compounds daily percent returns into a growth index starting at 100.
func cumulate(returns []float64) []float64 {
	out := make([]float64, len(returns))
	acc := 100.0
	for i, r := range returns {
		acc *= 1 + r/100
		out[i] = acc
	}
	return out
}
