package perfbench

import "github.com/etnz/perfbench/date"

// Provider is the narrow contract the core has with a market-data source:
// daily open/close quotes for one symbol over a date range, boundaries
// included. The core does not care how the quotes were obtained (download,
// disk cache, synthetic fixture).
//
// The eodhd subpackage implements it against eodhd.com.
type Provider interface {
	Daily(ticker string, from, to date.Date) ([]Quote, error)
}
