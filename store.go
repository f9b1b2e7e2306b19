package perfbench

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Store persists quotes in a folder, one <TICKER>.jsonl file per symbol.
// It is the local cache in front of a remote Provider: fetch once, report
// many times.
type Store struct {
	dir string
}

// OpenStore returns a store rooted at dir. The folder is created lazily on
// the first Save.
func OpenStore(dir string) *Store { return &Store{dir: dir} }

func (s *Store) file(ticker string) string {
	return filepath.Join(s.dir, strings.ToUpper(ticker)+".jsonl")
}

// Has reports whether the store holds quotes for ticker.
func (s *Store) Has(ticker string) bool {
	_, err := os.Stat(s.file(ticker))
	return err == nil
}

// Quotes reads all stored quotes for ticker.
func (s *Store) Quotes(ticker string) ([]Quote, error) {
	f, err := os.Open(s.file(ticker))
	if err != nil {
		return nil, fmt.Errorf("no quotes stored for %q: %w", ticker, err)
	}
	defer f.Close()
	return DecodeQuotes(s.file(ticker), f)
}

// Save merges quotes into the stored series for ticker and rewrites the file
// in chronological order. A new quote for an already stored date wins.
func (s *Store) Save(ticker string, quotes []Quote) error {
	existing, err := s.Quotes(ticker)
	if err != nil {
		existing = nil // first save for that ticker
	}

	byDate := make(map[string]Quote, len(existing)+len(quotes))
	for _, q := range existing {
		byDate[q.Date.String()] = q
	}
	for _, q := range quotes {
		byDate[q.Date.String()] = q
	}

	merged := make([]Quote, 0, len(byDate))
	for _, q := range byDate {
		merged = append(merged, q)
	}
	slices.SortFunc(merged, func(a, b Quote) int { return a.Date.Compare(b.Date) })

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store folder %q: %w", s.dir, err)
	}
	f, err := os.Create(s.file(ticker))
	if err != nil {
		return fmt.Errorf("cannot write quotes for %q: %w", ticker, err)
	}
	defer f.Close()
	return EncodeQuotes(f, merged)
}

// Tickers lists all symbols present in the store, in alphabetical order.
func (s *Store) Tickers() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.jsonl"))
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(files))
	for _, f := range files {
		tickers = append(tickers, strings.TrimSuffix(filepath.Base(f), ".jsonl"))
	}
	slices.Sort(tickers)
	return tickers, nil
}
