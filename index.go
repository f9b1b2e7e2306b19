package perfbench

import (
	"fmt"
	"strings"

	"github.com/etnz/perfbench/date"
)

// Index is an ordered, unweighted collection of Returnables used as a
// benchmark. It never blends its constituents into one value: every accessor
// returns one entry per constituent, in constituent order.
type Index struct {
	constituents []Returnable
}

// NewIndex returns an Index over the given benchmark constituents.
// It fails with ErrInvalidInput when there is none.
func NewIndex(constituents ...Returnable) (*Index, error) {
	if len(constituents) == 0 {
		return nil, fmt.Errorf("%w: index needs at least one constituent", ErrInvalidInput)
	}
	return &Index{constituents: constituents}, nil
}

// Name returns a display name listing the constituents.
func (x *Index) Name() string {
	return "Index[" + strings.Join(x.Names(), ",") + "]"
}

// Len returns the number of constituents.
func (x *Index) Len() int { return len(x.constituents) }

// Names returns the constituents' display names, in constituent order.
func (x *Index) Names() []string {
	names := make([]string, len(x.constituents))
	for i, c := range x.constituents {
		names[i] = c.Name()
	}
	return names
}

// Get returns the constituent with that display name. Absence is not an
// error: it returns false.
func (x *Index) Get(name string) (Returnable, bool) {
	for _, c := range x.constituents {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Returns produces the per-constituent daily-return series, one column per
// constituent, in constituent order.
func (x *Index) Returns() []*date.Series {
	series := make([]*date.Series, len(x.constituents))
	for i, c := range x.constituents {
		series[i] = c.DailyReturn()
	}
	return series
}

// CAGRs returns the per-constituent compound annual growth rates, in
// constituent order.
func (x *Index) CAGRs() ([]float64, error) {
	cagrs := make([]float64, len(x.constituents))
	for i, c := range x.constituents {
		v, err := c.CAGR()
		if err != nil {
			return nil, fmt.Errorf("index constituent %q: %w", c.Name(), err)
		}
		cagrs[i] = v
	}
	return cagrs, nil
}

// Volatilities returns the per-constituent return volatilities, in
// constituent order.
func (x *Index) Volatilities() ([]float64, error) {
	vols := make([]float64, len(x.constituents))
	for i, c := range x.constituents {
		v, err := c.Volatility()
		if err != nil {
			return nil, fmt.Errorf("index constituent %q: %w", c.Name(), err)
		}
		vols[i] = v
	}
	return vols, nil
}
