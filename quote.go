package perfbench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/perfbench/date"
)

// Quote is one dated open/close price row, the unit of information every
// provider and the local store exchange with the core.
type Quote struct {
	Date  date.Date
	Open  float64
	Close float64
}

// This file also handles quote persistence as JSONL, one quote per line, in a
// way that is human-readable and git-friendly.

// jquote is the object read from and written to the file using json parser.
type jquote struct {
	On    date.Date `json:"on"`
	Open  float64   `json:"open"`
	Close float64   `json:"close"`
}

// DecodeQuotes parses a JSONL stream of quotes.
// filename is for error messages only.
func DecodeQuotes(filename string, r io.Reader) ([]Quote, error) {
	var quotes []Quote
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jq jquote
		if err := json.Unmarshal(line, &jq); err != nil {
			return nil, fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		quotes = append(quotes, Quote{Date: jq.On, Open: jq.Open, Close: jq.Close})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %q: %w", filename, err)
	}
	return quotes, nil
}

// EncodeQuotes writes quotes as JSONL, one quote per line, in the order given.
func EncodeQuotes(w io.Writer, quotes []Quote) error {
	for _, q := range quotes {
		line, err := json.Marshal(jquote{On: q.Date, Open: q.Open, Close: q.Close})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
