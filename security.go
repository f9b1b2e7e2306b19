package perfbench

import (
	"fmt"
	"math"

	"github.com/etnz/perfbench/date"
)

// Security wraps one price series and computes its own returns directly from
// the price data. It is immutable once constructed.
type Security struct {
	ticker   string
	currency string
	open     date.Series
	close    date.Series
}

// NewSecurity returns a Security for the given quotes.
//
// Quotes are sorted by date on construction; a later row for the same date
// overwrites the earlier one. It fails with ErrInvalidInput when the ticker
// is empty or when a row misses its date.
func NewSecurity(ticker, currency string, quotes []Quote) (*Security, error) {
	if ticker == "" {
		return nil, fmt.Errorf("%w: security ticker is missing", ErrInvalidInput)
	}
	s := &Security{ticker: ticker, currency: currency}
	for i, q := range quotes {
		if q.Date.IsZero() {
			return nil, fmt.Errorf("%w: quote %d of %q has no date", ErrInvalidInput, i, ticker)
		}
		s.open.Append(q.Date, q.Open)
		s.close.Append(q.Date, q.Close)
	}
	return s, nil
}

// Name returns the security's ticker.
func (s *Security) Name() string { return s.ticker }

// Currency returns the quotation currency, possibly empty.
func (s *Security) Currency() string { return s.currency }

// Range returns the first and last quoted dates.
func (s *Security) Range() (from, to date.Date) {
	from, _ = s.open.First()
	to, _ = s.open.Last()
	return from, to
}

// DailyReturn returns the daily return in percent, (close-open)/open * 100,
// one value per quoted day. The series is recomputed on each call.
func (s *Security) DailyReturn() *date.Series {
	r := new(date.Series)
	for on, open := range s.open.Values() {
		close, _ := s.close.Get(on)
		r.Append(on, (close-open)/open*100)
	}
	return r
}

// CAGR returns the compound annual growth rate,
// (lastClose/firstOpen)^(1/years) - 1, where years is the number of distinct
// calendar years spanned by the series.
//
// It fails with ErrInvalidInput on an empty series (the year count would be
// zero) and with ErrDegenerate when the first open price is zero.
func (s *Security) CAGR() (float64, error) {
	if s.open.Len() == 0 {
		return 0, fmt.Errorf("%w: cannot compute CAGR of %q from an empty price series", ErrInvalidInput, s.ticker)
	}
	_, first := s.open.First()
	_, last := s.close.Last()
	if first == 0 {
		return 0, fmt.Errorf("%w: first open price of %q is zero", ErrDegenerate, s.ticker)
	}
	return math.Pow(last/first, 1/float64(s.years())) - 1, nil
}

// years counts the distinct calendar years spanned by the price series.
func (s *Security) years() int {
	n, current := 0, 0
	for on := range s.open.Values() {
		if y := on.Year(); y != current {
			n, current = n+1, y
		}
	}
	return n
}

// Volatility returns the sample standard deviation of the daily-return
// series, not annualized.
func (s *Security) Volatility() (float64, error) {
	if s.open.Len() == 0 {
		return 0, fmt.Errorf("%w: cannot compute volatility of %q from an empty price series", ErrInvalidInput, s.ticker)
	}
	return stdDev(s.DailyReturn().Floats()), nil
}

// Valuation returns the latest close as money in the security's currency.
func (s *Security) Valuation() Money {
	_, last := s.close.Last()
	return M(last, s.currency)
}
