// Package eodhd fetches end-of-day and realtime prices from the EODHD
// financial API (https://eodhd.com).
//
// All end-of-day requests go through a disk cache whose entries expire
// daily, so repeated runs within the same day never hit the network twice.
package eodhd

import (
	"fmt"

	"github.com/etnz/perfbench"
	"github.com/etnz/perfbench/date"
)

// DemoKey is EODHD's public demo api token. It only covers a handful
// of tickers (AAPL.US, MCD.US, ...) but is enough to try things out.
const DemoKey = "demo"

// Client queries the EODHD API with a given api token.
type Client struct {
	apiKey string
}

// NewClient returns a Client authenticated with the given api token.
func NewClient(apiKey string) *Client { return &Client{apiKey: apiKey} }

// Daily returns the end-of-day quotes for an EODHD ticker between from and
// to, bounds included. The EODHD ticker format is typically
// "SYMBOL.EXCHANGECODE" (e.g. "MCD.US", "NVD.F").
func (c *Client) Daily(ticker string, from, to date.Date) ([]perfbench.Quote, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	// nota bene: bounds are included in the response, and time is limited
	// to 1 year with free subscription.
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", ticker, c.apiKey, from, to)

	content := make([]eodRow, 0)
	// query that endpoint at most once a day
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch eod prices for %q: %w", ticker, err)
	}
	return toQuotes(content), nil
}

type eodRow struct {
	Date  date.Date `json:"date"`
	Open  float64   `json:"open"`
	Close float64   `json:"close"`
	// AdjustedClose float64 `json:"adjusted_close"`
}

func toQuotes(rows []eodRow) []perfbench.Quote {
	quotes := make([]perfbench.Quote, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		quotes = append(quotes, perfbench.Quote{Date: row.Date, Open: row.Open, Close: row.Close})
	}
	return quotes
}
