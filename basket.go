package perfbench

import (
	"fmt"

	"github.com/etnz/perfbench/date"
)

// Basket combines constituent Returnables with fixed weights into one
// aggregate Returnable. It owns only the aggregation, never the
// constituents' price data.
type Basket struct {
	name         string
	constituents []Returnable
	weights      []Weight
}

// NewBasket returns a Basket of the given constituents and parallel weights.
//
// It fails with ErrInvalidInput when there is no constituent, when
// constituents and weights differ in length, or when the weights do not sum
// to exactly 1 (weights are decimals, so the sum is exact).
func NewBasket(name string, constituents []Returnable, weights []Weight) (*Basket, error) {
	if len(constituents) == 0 {
		return nil, fmt.Errorf("%w: basket needs at least one constituent", ErrInvalidInput)
	}
	if len(constituents) != len(weights) {
		return nil, fmt.Errorf("%w: %d constituents but %d weights, each constituent needs one weight",
			ErrInvalidInput, len(constituents), len(weights))
	}
	var sum Weight
	for _, w := range weights {
		sum = sum.Add(w)
	}
	if !sum.IsOne() {
		return nil, fmt.Errorf("%w: weights sum to %s, want 1", ErrInvalidInput, sum)
	}
	if name == "" {
		name = "Portfolio"
	}
	return &Basket{name: name, constituents: constituents, weights: weights}, nil
}

// Name returns the basket's display name.
func (b *Basket) Name() string { return b.name }

// Constituents returns the basket's constituents, in order.
func (b *Basket) Constituents() []Returnable { return b.constituents }

// DailyReturn returns the weighted sum of the constituents' daily returns,
// restricted to the dates all constituents share (inner-join).
func (b *Basket) DailyReturn() *date.Series {
	series := make([]*date.Series, len(b.constituents))
	for i, c := range b.constituents {
		series[i] = c.DailyReturn()
	}
	days, cols := date.AlignAll(series...)

	blended := new(date.Series)
	for i, on := range days {
		var v float64
		for j, col := range cols {
			v += b.weights[j].Float() * col[i]
		}
		blended.Append(on, v)
	}
	return blended
}

// CAGR returns the weighted sum of the constituents' CAGRs.
func (b *Basket) CAGR() (float64, error) {
	var cagr float64
	for i, c := range b.constituents {
		v, err := c.CAGR()
		if err != nil {
			return 0, fmt.Errorf("basket %q constituent %q: %w", b.name, c.Name(), err)
		}
		cagr += b.weights[i].Float() * v
	}
	return cagr, nil
}

// Volatility returns the sample standard deviation of the basket's own
// blended daily-return series. This is not the weighted sum of the
// constituents' volatilities, which would ignore how they co-move.
func (b *Basket) Volatility() (float64, error) {
	blended := b.DailyReturn()
	if blended.Len() == 0 {
		return 0, fmt.Errorf("%w: basket %q constituents share no trading day", ErrInvalidInput, b.name)
	}
	return stdDev(blended.Floats()), nil
}
