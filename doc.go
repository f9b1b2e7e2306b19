// Package perfbench computes standard portfolio-performance metrics (beta,
// alpha, return ratio, tracking error, Treynor ratio, Sharpe ratio) for a
// single security or a weighted basket of securities against a benchmark
// index, over a historical date range.
//
// The core abstractions are:
//   - Returnable: anything that can produce a daily-return series, a compound
//     annual growth rate, and a return volatility. Security (one price
//     series) and Basket (a fixed-weight combination of Returnables) both
//     implement it.
//   - Index: an ordered, unweighted collection of Returnables used as a
//     benchmark. It is never blended into one value; it exposes
//     per-constituent return series and CAGR/volatility vectors.
//   - Report: pairs one evaluated Returnable with one Index and computes the
//     six metrics lazily, memoizing each by name for the report's lifetime.
//
// Price data enters the package as dated open/close quotes, either from a
// Provider (the eodhd subpackage implements one) or from the local JSONL
// quote store. All cross-entity computations align series by inner-join on
// common dates.
//
// This package serves as the foundational logic for the `pfb` command-line
// tool.
package perfbench
