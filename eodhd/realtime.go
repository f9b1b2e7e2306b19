package eodhd

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "code": "AAPL.US",
	    "timestamp": 1693584000,
	    "gmtoffset": 0,
	    "open": 189.49,
	    "high": 189.92,
	    "low": 188.28,
	    "close": 189.46,
	    "volume": 60730989,
	    "previousClose": 187.87,
	    "change": 1.59,
	    "change_p": 0.8463
	}
*/

// Latest returns the most recent traded price of an EODHD ticker, from the
// realtime (delayed) endpoint. This one is never cached.
func (c *Client) Latest(ticker string) (float64, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, c.apiKey)

	var jobj any
	err := jwget(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return asFloat(ticker, jval)
}

// asFloat reads the price out of a jsonpath result. The market being closed,
// the endpoint returns the string "NA" instead of a number.
func asFloat(ticker string, jval any) (float64, error) {
	val, ok := jval.(float64)
	if ok {
		return val, nil
	}
	// sometimes, this weird API returns the value as a string
	sval, ok := jval.(string)
	if !ok {
		return math.NaN(), fmt.Errorf("cannot read value for %q: neither a float nor a string: %v", ticker, jval)
	}
	if sval == "NA" {
		return math.NaN(), fmt.Errorf("no realtime value for %q, market might be closed", ticker)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("cannot read value for %q: invalid string %q: %w", ticker, sval, err)
	}
	return val, nil
}
