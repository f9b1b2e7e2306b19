package perfbench

import (
	"math"
	"testing"

	"github.com/etnz/perfbench/date"
)

// day is the i-th day of the synthetic calendar used in tests.
func day(i int) date.Date { return date.New(2024, 1, 1).Add(i) }

// sec builds a Security from (open, close) pairs quoted on consecutive days.
func sec(t *testing.T, ticker string, prices ...[2]float64) *Security {
	t.Helper()
	quotes := make([]Quote, len(prices))
	for i, p := range prices {
		quotes[i] = Quote{Date: day(i), Open: p[0], Close: p[1]}
	}
	s, err := NewSecurity(ticker, "USD", quotes)
	if err != nil {
		t.Fatalf("NewSecurity(%q) failed: %v", ticker, err)
	}
	return s
}

// approx fails the test unless got is within 1e-9 of want.
func approx(t *testing.T, what string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v want %v", what, got, want)
	}
}
