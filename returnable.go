package perfbench

import "github.com/etnz/perfbench/date"

// Returnable is the capability shared by every entity whose performance can
// be measured: it produces a daily-return series, a compound annual growth
// rate, and a return volatility.
//
// Security and Basket implement it. An Index deliberately does not: a
// benchmark is never blended into one value, it exposes per-constituent
// vectors instead.
type Returnable interface {
	// Name returns the display name used to label report rows and charts.
	Name() string

	// DailyReturn returns the dated series of daily returns, in percent:
	// (close-open)/open * 100 for each trading day. The series is computed
	// fresh on each call.
	DailyReturn() *date.Series

	// CAGR returns the compound annual growth rate over the distinct
	// calendar years spanned by the price data.
	CAGR() (float64, error)

	// Volatility returns the sample standard deviation of the daily-return
	// series. It is not annualized.
	Volatility() (float64, error)
}
