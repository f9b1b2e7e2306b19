package perfbench

import (
	"errors"
	"math"
	"testing"
)

func TestNewBasketValidation(t *testing.T) {
	a := sec(t, "A", [2]float64{100, 110})
	b := sec(t, "B", [2]float64{100, 120})
	c := sec(t, "C", [2]float64{100, 130})

	testCases := []struct {
		name         string
		constituents []Returnable
		weights      []Weight
		expectErr    bool
	}{
		{"valid", []Returnable{a, b, c}, []Weight{W(0.3), W(0.3), W(0.4)}, false},
		{"no constituent", nil, nil, true},
		{"length mismatch", []Returnable{a, b, c}, []Weight{W(0.5), W(0.5)}, true},
		{"sum below one", []Returnable{a, b, c}, []Weight{W(0.3), W(0.3), W(0.3)}, true},
		{"sum above one", []Returnable{a, b}, []Weight{W(0.6), W(0.6)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBasket("", tc.constituents, tc.weights)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("NewBasket() returned error: %v, want error: %v", err, tc.expectErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewBasket() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBasketExactWeightSum(t *testing.T) {
	// 0.1+0.2+0.7 does not sum to 1.0 in binary floating point, but weights
	// are decimals so the factory must accept it.
	a := sec(t, "A", [2]float64{100, 110})
	b := sec(t, "B", [2]float64{100, 120})
	c := sec(t, "C", [2]float64{100, 130})
	if _, err := NewBasket("", []Returnable{a, b, c}, []Weight{W(0.1), W(0.2), W(0.7)}); err != nil {
		t.Errorf("NewBasket() with weights 0.1, 0.2, 0.7 failed: %v", err)
	}
}

func TestBasketCAGR(t *testing.T) {
	// Single-year constituents with CAGR 0.1, 0.2 and 0.3.
	a := sec(t, "A", [2]float64{100, 110})
	b := sec(t, "B", [2]float64{100, 120})
	c := sec(t, "C", [2]float64{100, 130})

	basket, err := NewBasket("", []Returnable{a, b, c}, []Weight{W(0.3), W(0.3), W(0.4)})
	if err != nil {
		t.Fatal(err)
	}

	cagr, err := basket.CAGR()
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "Basket.CAGR()", cagr, 0.3*0.1+0.3*0.2+0.4*0.3) // 0.21
}

func TestBasketDailyReturn(t *testing.T) {
	// A is quoted on days 0 and 1, B only on day 1: the blend keeps the
	// common day only.
	a := sec(t, "A", [2]float64{100, 110}, [2]float64{100, 120})
	b, err := NewSecurity("B", "USD", []Quote{{Date: day(1), Open: 100, Close: 150}})
	if err != nil {
		t.Fatal(err)
	}

	basket, err := NewBasket("", []Returnable{a, b}, []Weight{W(0.5), W(0.5)})
	if err != nil {
		t.Fatal(err)
	}

	blended := basket.DailyReturn()
	if blended.Len() != 1 {
		t.Fatalf("DailyReturn().Len() = %v want 1, only the shared day", blended.Len())
	}
	v, ok := blended.Get(day(1))
	if !ok {
		t.Fatal("DailyReturn() has no value on the shared day")
	}
	approx(t, "blended return", v, 0.5*20+0.5*50)
}

func TestBasketVolatility(t *testing.T) {
	// Two constituents with exactly opposite returns and equal weights: the
	// blend is constant, so its volatility is zero. A weighted sum of the
	// individual volatilities would be far from zero.
	a := sec(t, "A", [2]float64{100, 110}, [2]float64{100, 90}, [2]float64{100, 110})
	b := sec(t, "B", [2]float64{100, 90}, [2]float64{100, 110}, [2]float64{100, 90})

	basket, err := NewBasket("", []Returnable{a, b}, []Weight{W(0.5), W(0.5)})
	if err != nil {
		t.Fatal(err)
	}

	vol, err := basket.Volatility()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(vol) > 1e-9 {
		t.Errorf("Volatility() = %v want 0 for perfectly hedged constituents", vol)
	}
}

func TestBasketName(t *testing.T) {
	a := sec(t, "A", [2]float64{100, 110})
	basket, err := NewBasket("", []Returnable{a}, []Weight{W(1)})
	if err != nil {
		t.Fatal(err)
	}
	if basket.Name() != "Portfolio" {
		t.Errorf("Name() = %q want the %q default", basket.Name(), "Portfolio")
	}

	named, err := NewBasket("tech", []Returnable{a}, []Weight{W(1)})
	if err != nil {
		t.Fatal(err)
	}
	if named.Name() != "tech" {
		t.Errorf("Name() = %q want %q", named.Name(), "tech")
	}
}

func TestBasketOfBaskets(t *testing.T) {
	// A Basket is itself a Returnable and can be nested.
	a := sec(t, "A", [2]float64{100, 110})
	b := sec(t, "B", [2]float64{100, 120})
	inner, err := NewBasket("inner", []Returnable{a, b}, []Weight{W(0.5), W(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewBasket("outer", []Returnable{inner, a}, []Weight{W(0.5), W(0.5)})
	if err != nil {
		t.Fatal(err)
	}

	cagr, err := outer.CAGR()
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "nested CAGR", cagr, 0.5*(0.5*0.1+0.5*0.2)+0.5*0.1)
}
