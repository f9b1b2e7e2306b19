package perfbench

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/perfbench/date"
)

func TestNewSecurity(t *testing.T) {
	testCases := []struct {
		name      string
		ticker    string
		quotes    []Quote
		expectErr bool
	}{
		{"valid", "TCS", []Quote{{Date: day(0), Open: 100, Close: 101}}, false},
		{"empty series is valid", "TCS", nil, false},
		{"missing ticker", "", []Quote{{Date: day(0), Open: 100, Close: 101}}, true},
		{"missing date", "TCS", []Quote{{Open: 100, Close: 101}}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSecurity(tc.ticker, "USD", tc.quotes)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Errorf("NewSecurity() returned error: %v, want error: %v", err, tc.expectErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewSecurity() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestSecuritySortsQuotes(t *testing.T) {
	s, err := NewSecurity("TCS", "USD", []Quote{
		{Date: day(2), Open: 102, Close: 103},
		{Date: day(0), Open: 100, Close: 101},
		{Date: day(1), Open: 101, Close: 102},
		{Date: day(1), Open: 201, Close: 202}, // duplicate date, last row wins
	})
	if err != nil {
		t.Fatal(err)
	}

	from, to := s.Range()
	if from != day(0) || to != day(2) {
		t.Errorf("Range() = %v, %v want %v, %v", from, to, day(0), day(2))
	}
	if v, _ := s.open.Get(day(1)); v != 201 {
		t.Errorf("open on day 1 = %v want 201 (last duplicate wins)", v)
	}
}

func TestDailyReturn(t *testing.T) {
	s := sec(t, "TCS", [2]float64{100, 110}, [2]float64{110, 99}, [2]float64{99, 99})

	r := s.DailyReturn()
	if r.Len() != 3 {
		t.Fatalf("DailyReturn().Len() = %v want one entry per price row, 3", r.Len())
	}

	want := map[date.Date]float64{
		day(0): 10,  // (110-100)/100*100
		day(1): -10, // (99-110)/110*100
		day(2): 0,
	}
	for on, v := range r.Values() {
		approx(t, "DailyReturn() on "+on.String(), v, want[on])
	}
}

func TestCAGR(t *testing.T) {
	// Single-year round trip: open 100, close 121 within one calendar year.
	s := sec(t, "TCS", [2]float64{100, 105}, [2]float64{105, 121})
	cagr, err := s.CAGR()
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "CAGR()", cagr, 0.21)
}

func TestCAGRTwoYears(t *testing.T) {
	// Spanning two distinct calendar years: (121/100)^(1/2)-1 = 0.1.
	s, err := NewSecurity("TCS", "USD", []Quote{
		{Date: date.New(2023, 12, 29), Open: 100, Close: 108},
		{Date: date.New(2024, 1, 2), Open: 108, Close: 121},
	})
	if err != nil {
		t.Fatal(err)
	}
	cagr, err := s.CAGR()
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "CAGR()", cagr, math.Sqrt(1.21)-1)
}

func TestCAGREmptySeries(t *testing.T) {
	s, err := NewSecurity("TCS", "USD", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CAGR(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("CAGR() on empty series error = %v, want ErrInvalidInput", err)
	}
	if _, err := s.Volatility(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Volatility() on empty series error = %v, want ErrInvalidInput", err)
	}
}

func TestCAGRZeroOpen(t *testing.T) {
	s := sec(t, "TCS", [2]float64{0, 110}, [2]float64{110, 121})
	if _, err := s.CAGR(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("CAGR() with zero first open error = %v, want ErrDegenerate", err)
	}
}

func TestVolatility(t *testing.T) {
	// Daily returns are 10, -10, 10, -10: mean 0, sample variance
	// (4*100)/3, stddev sqrt(400/3).
	s := sec(t, "TCS",
		[2]float64{100, 110}, [2]float64{110, 99},
		[2]float64{100, 110}, [2]float64{110, 99})
	vol, err := s.Volatility()
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "Volatility()", vol, math.Sqrt(400.0/3.0))
}

func TestValuation(t *testing.T) {
	s := sec(t, "TCS", [2]float64{100, 110}, [2]float64{110, 121})
	if got, want := s.Valuation(), M(121, "USD"); !got.Equal(want) {
		t.Errorf("Valuation() = %v want %v", got, want)
	}
}
