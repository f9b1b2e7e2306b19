package perfbench

import "errors"

// Errors returned by constructors and metric computations. They are
// sentinels: callers test them with errors.Is, the wrapped message carries
// the specifics.
var (
	// ErrInvalidInput reports a malformed or incomplete input: a price table
	// missing required fields, mismatched constituents and weights, weights
	// not summing to 1, or an empty series presented for CAGR.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate reports a division by zero in a metric: a zero initial
	// price in CAGR, a zero benchmark CAGR in the return ratio, or a zero
	// beta in the Treynor ratio. It is raised rather than silently
	// propagating an infinity.
	ErrDegenerate = errors.New("degenerate computation")
)

// Lookups by name are queries, not computations: absence is reported with a
// false boolean, never with an error. See Index.Get.
