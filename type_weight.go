package perfbench

import "github.com/shopspring/decimal"

// Weight is the fixed share of one constituent in a Basket. It is backed by
// a decimal so that the "weights sum to exactly 1.0" validation is an exact
// comparison, not a float accumulation.
type Weight struct {
	value decimal.Decimal
}

// W returns a Weight from a float. Typical weights (0.3, 0.25, ...) convert
// exactly.
func W(value float64) Weight { return Weight{value: decimal.NewFromFloat(value)} }

// ParseWeight parses a Weight from its decimal string form.
func ParseWeight(s string) (Weight, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: d}, nil
}

func (w Weight) Add(x Weight) Weight { return Weight{value: w.value.Add(x.value)} }
func (w Weight) Equal(x Weight) bool { return w.value.Equal(x.value) }
func (w Weight) IsOne() bool         { return w.value.Equal(decimal.NewFromInt(1)) }
func (w Weight) String() string      { return w.value.String() }

// Float returns the weight as a float64 for the return-series arithmetic.
func (w Weight) Float() float64 { return w.value.InexactFloat64() }
