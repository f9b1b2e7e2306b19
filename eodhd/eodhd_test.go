package eodhd

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/etnz/perfbench/date"
)

func Test_toQuotes(t *testing.T) {
	payload := `[
		{"date":"2024-02-13","open":675.066,"high":684.219,"low":648.659,"close":668.445,"adjusted_close":67.705,"volume":0},
		{"date":"2024-02-14","open":670.0,"close":680.5}
	]`
	rows := make([]eodRow, 0)
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		t.Fatal(err)
	}
	quotes := toQuotes(rows)
	if len(quotes) != 2 {
		t.Fatalf("toQuotes() returned %d quotes want 2", len(quotes))
	}
	if quotes[0].Date != date.New(2024, 2, 13) || quotes[0].Open != 675.066 || quotes[0].Close != 668.445 {
		t.Errorf("toQuotes()[0] = %+v", quotes[0])
	}
}

func Test_asFloat(t *testing.T) {
	if v, err := asFloat("AAPL.US", 189.46); err != nil || v != 189.46 {
		t.Errorf("asFloat(float) = %v, %v", v, err)
	}
	if v, err := asFloat("AAPL.US", "189,46"); err != nil || v != 189.46 {
		t.Errorf("asFloat(string) = %v, %v", v, err)
	}
	if v, err := asFloat("AAPL.US", "NA"); err == nil || !math.IsNaN(v) {
		t.Errorf("asFloat(NA) = %v, %v want NaN and an error", v, err)
	}
}
