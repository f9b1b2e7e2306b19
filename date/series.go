package date

import (
	"iter"
	"slices"
)

// Series stores a chronological series of float64 values, each associated
// with a specific date. Dates are unique and the series is always sorted.
type Series struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// Append adds a point to the series, keeping it sorted.
//
// An existing value at that date is overwritten: the last data wins.
func (s *Series) Append(on Date, v float64) *Series {
	i, found := slices.BinarySearchFunc(s.days, on, Date.Compare)
	if found {
		s.values[i] = v
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.values = slices.Insert(s.values, i, v)
	return s
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	i, found := slices.BinarySearchFunc(s.days, day, Date.Compare)
	if found {
		return s.values[i], true
	}
	return 0, false
}

// First returns the earliest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) First() (Date, float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Last returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Last() (Date, float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Floats returns the raw values in chronological order.
// The slice is a copy, the caller can mutate it freely.
func (s *Series) Floats() []float64 { return slices.Clone(s.values) }

// Align returns the values of a and b restricted to their common dates, in
// chronological order. Dates present in only one series are dropped
// (inner-join): blending values observed on different days would not be a
// meaningful comparison.
func Align(a, b *Series) (x, y []float64) {
	for on, va := range a.Values() {
		if vb, ok := b.Get(on); ok {
			x = append(x, va)
			y = append(y, vb)
		}
	}
	return x, y
}

// AlignAll returns the dates common to every given series, in chronological
// order, along with one column of values per series restricted to those
// dates. It generalizes Align to N series with the same inner-join policy.
func AlignAll(series ...*Series) (days []Date, cols [][]float64) {
	if len(series) == 0 {
		return nil, nil
	}
	cols = make([][]float64, len(series))
	for on, v0 := range series[0].Values() {
		row := make([]float64, len(series))
		row[0] = v0
		shared := true
		for i, s := range series[1:] {
			v, ok := s.Get(on)
			if !ok {
				shared = false
				break
			}
			row[i+1] = v
		}
		if !shared {
			continue
		}
		days = append(days, on)
		for i := range cols {
			cols[i] = append(cols[i], row[i])
		}
	}
	return days, cols
}
