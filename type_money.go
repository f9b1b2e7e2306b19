package perfbench

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, used to display valuations in report
// headers. The metrics themselves are dimensionless and never go through
// this type.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of the given amount and ISO-4217 currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the money's currency code, possibly empty.
func (m Money) Currency() string { return m.cur }

// Equal reports whether two money values are the same amount in the same currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	// to get a never nil currency we go through the go-money constructor
	cur := money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
