package perfbench

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/etnz/perfbench/date"
)

// Metric names, used as memoization keys and as report column headers.
const (
	MetricBeta          = "beta"
	MetricAlpha         = "alpha"
	MetricReturnRatio   = "return_ratio"
	MetricTrackingError = "tracking_error"
	MetricTreynorRatio  = "treynor_ratio"
	MetricSharpeRatio   = "sharpe_ratio"
)

// Report pairs one evaluated Returnable with one benchmark Index and
// computes performance metrics lazily.
//
// Each metric is computed at most once for the report's lifetime: the first
// call caches the vector under the metric's name, later calls return the
// cached value. In particular the risk-free rate of the first Alpha, Treynor
// or Sharpe call is the one the report keeps. A report is cheap, make a new
// one to evaluate with different inputs.
//
// A Report is not safe for concurrent use; the intended usage is
// single-threaded.
type Report struct {
	entity    Returnable
	benchmark *Index
	cache     map[string][]float64

	// onCompute, when set, observes each actual computation (not cache
	// hits). Used by tests to assert memoization.
	onCompute func(metric string)
}

// NewReport returns an empty report of entity against benchmark.
func NewReport(entity Returnable, benchmark *Index) *Report {
	return &Report{
		entity:    entity,
		benchmark: benchmark,
		cache:     make(map[string][]float64),
	}
}

func (r *Report) String() string {
	return fmt.Sprintf("Performance of %s against %s", r.entity.Name(), r.benchmark.Name())
}

// memo returns the cached vector for name, computing and caching it on the
// first call. The cache is written at most once per name, and never on error.
func (r *Report) memo(name string, compute func() ([]float64, error)) ([]float64, error) {
	if v, ok := r.cache[name]; ok {
		return v, nil
	}
	if r.onCompute != nil {
		r.onCompute(name)
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	r.cache[name] = v
	return v, nil
}

// Beta returns, per benchmark constituent, the covariance of the
// constituent's daily returns with the entity's, divided by the
// constituent's return variance. Both moments are taken over the
// date-aligned overlap of the two series.
func (r *Report) Beta() ([]float64, error) {
	return r.memo(MetricBeta, func() ([]float64, error) {
		entity := r.entity.DailyReturn()
		betas := make([]float64, r.benchmark.Len())
		for j, bench := range r.benchmark.Returns() {
			e, b := date.Align(entity, bench)
			betas[j] = stat.Covariance(b, e, nil) / stat.Variance(b, nil)
		}
		return betas, nil
	})
}

// Alpha returns, per benchmark constituent, the entity's excess return over
// what beta-adjusted benchmark performance would predict:
// entityCAGR - riskFree - beta_j * benchCAGR_j. It forces Beta if not yet
// cached.
func (r *Report) Alpha(riskFree float64) ([]float64, error) {
	return r.memo(MetricAlpha, func() ([]float64, error) {
		beta, err := r.Beta()
		if err != nil {
			return nil, err
		}
		entityCAGR, err := r.entity.CAGR()
		if err != nil {
			return nil, err
		}
		benchCAGR, err := r.benchmark.CAGRs()
		if err != nil {
			return nil, err
		}
		alphas := make([]float64, len(beta))
		for j := range beta {
			alphas[j] = entityCAGR - riskFree - beta[j]*benchCAGR[j]
		}
		return alphas, nil
	})
}

// ReturnRatio returns, per benchmark constituent, the ratio of the entity's
// CAGR to the constituent's. A benchmark constituent with a CAGR of exactly
// zero fails with ErrDegenerate.
func (r *Report) ReturnRatio() ([]float64, error) {
	return r.memo(MetricReturnRatio, func() ([]float64, error) {
		entityCAGR, err := r.entity.CAGR()
		if err != nil {
			return nil, err
		}
		benchCAGR, err := r.benchmark.CAGRs()
		if err != nil {
			return nil, err
		}
		ratios := make([]float64, len(benchCAGR))
		for j, c := range benchCAGR {
			if c == 0 {
				return nil, fmt.Errorf("%w: benchmark %q has a zero CAGR, return ratio is undefined",
					ErrDegenerate, r.benchmark.Names()[j])
			}
			ratios[j] = entityCAGR / c
		}
		return ratios, nil
	})
}

// TrackingError returns, per benchmark constituent, the sample standard
// deviation of the difference between the entity's and the constituent's
// daily returns, over their date-aligned overlap.
func (r *Report) TrackingError() ([]float64, error) {
	return r.memo(MetricTrackingError, func() ([]float64, error) {
		entity := r.entity.DailyReturn()
		errs := make([]float64, r.benchmark.Len())
		for j, bench := range r.benchmark.Returns() {
			e, b := date.Align(entity, bench)
			diff := make([]float64, len(e))
			for i := range e {
				diff[i] = e[i] - b[i]
			}
			errs[j] = stdDev(diff)
		}
		return errs, nil
	})
}

// TreynorRatio returns, per benchmark constituent, the entity's excess
// return per unit of systematic risk: (entityCAGR - riskFree) / beta_j. A
// constituent with a beta of exactly zero fails with ErrDegenerate.
func (r *Report) TreynorRatio(riskFree float64) ([]float64, error) {
	return r.memo(MetricTreynorRatio, func() ([]float64, error) {
		beta, err := r.Beta()
		if err != nil {
			return nil, err
		}
		entityCAGR, err := r.entity.CAGR()
		if err != nil {
			return nil, err
		}
		ratios := make([]float64, len(beta))
		for j, b := range beta {
			if b == 0 {
				return nil, fmt.Errorf("%w: beta against benchmark %q is zero, Treynor ratio is undefined",
					ErrDegenerate, r.benchmark.Names()[j])
			}
			ratios[j] = (entityCAGR - riskFree) / b
		}
		return ratios, nil
	})
}

// SharpeRatio returns the entity's excess return per unit of total
// volatility: (entityCAGR - riskFree) / entityVolatility. It depends only on
// the entity, so the single value is broadcast to one entry per benchmark
// constituent to keep the report rectangular.
func (r *Report) SharpeRatio(riskFree float64) ([]float64, error) {
	return r.memo(MetricSharpeRatio, func() ([]float64, error) {
		entityCAGR, err := r.entity.CAGR()
		if err != nil {
			return nil, err
		}
		vol, err := r.entity.Volatility()
		if err != nil {
			return nil, err
		}
		sharpe := (entityCAGR - riskFree) / vol
		ratios := make([]float64, r.benchmark.Len())
		for j := range ratios {
			ratios[j] = sharpe
		}
		return ratios, nil
	})
}

// MetricsRow holds the six metrics of the evaluated entity against one
// benchmark constituent.
type MetricsRow struct {
	Benchmark     string
	Beta          float64
	Alpha         float64
	ReturnRatio   float64
	TrackingError float64
	TreynorRatio  float64
	SharpeRatio   float64
}

// MetricsTable is the full report: one row per benchmark constituent, one
// column per metric.
type MetricsTable struct {
	Entity   string
	RiskFree float64
	Rows     []MetricsRow
}

// AllMetrics forces the computation of all six metrics, in dependency order
// (beta first, since alpha and Treynor build on it), and assembles them into
// a table keyed by benchmark constituent name.
func (r *Report) AllMetrics(riskFree float64) (*MetricsTable, error) {
	beta, err := r.Beta()
	if err != nil {
		return nil, err
	}
	alpha, err := r.Alpha(riskFree)
	if err != nil {
		return nil, err
	}
	ratio, err := r.ReturnRatio()
	if err != nil {
		return nil, err
	}
	tracking, err := r.TrackingError()
	if err != nil {
		return nil, err
	}
	treynor, err := r.TreynorRatio(riskFree)
	if err != nil {
		return nil, err
	}
	sharpe, err := r.SharpeRatio(riskFree)
	if err != nil {
		return nil, err
	}

	table := &MetricsTable{Entity: r.entity.Name(), RiskFree: riskFree}
	for j, name := range r.benchmark.Names() {
		table.Rows = append(table.Rows, MetricsRow{
			Benchmark:     name,
			Beta:          beta[j],
			Alpha:         alpha[j],
			ReturnRatio:   ratio[j],
			TrackingError: tracking[j],
			TreynorRatio:  treynor[j],
			SharpeRatio:   sharpe[j],
		})
	}
	return table, nil
}

// stdDev returns the sample standard deviation of xs.
func stdDev(xs []float64) float64 { return stat.StdDev(xs, nil) }
