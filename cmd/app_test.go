package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/perfbench"
	"github.com/etnz/perfbench/date"
)

func testStore(t *testing.T, tickers ...string) *perfbench.Store {
	t.Helper()
	store := perfbench.OpenStore(t.TempDir())
	for _, ticker := range tickers {
		err := store.Save(ticker, []perfbench.Quote{
			{Date: date.New(2024, 1, 1), Open: 100, Close: 110},
			{Date: date.New(2024, 1, 2), Open: 110, Close: 121},
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestLoadEntitySingleTicker(t *testing.T) {
	store := testStore(t, "AAPL.US")

	entity, err := loadEntity(store, "Portfolio", "USD", []string{"AAPL.US"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := entity.(*perfbench.Security); !ok {
		t.Errorf("loadEntity() with one unweighted ticker = %T want *perfbench.Security", entity)
	}
	if entity.Name() != "AAPL.US" {
		t.Errorf("loadEntity().Name() = %q", entity.Name())
	}
}

func TestLoadEntityBasket(t *testing.T) {
	store := testStore(t, "AAPL.US", "MCD.US")

	entity, err := loadEntity(store, "Tech", "USD", []string{"AAPL.US", "MCD.US"}, "0.6,0.4")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := entity.(*perfbench.Basket); !ok {
		t.Errorf("loadEntity() with weights = %T want *perfbench.Basket", entity)
	}
	if entity.Name() != "Tech" {
		t.Errorf("loadEntity().Name() = %q", entity.Name())
	}
}

func TestLoadEntityWeightMismatch(t *testing.T) {
	store := testStore(t, "AAPL.US", "MCD.US")

	_, err := loadEntity(store, "Tech", "USD", []string{"AAPL.US", "MCD.US"}, "0.6")
	if !errors.Is(err, perfbench.ErrInvalidInput) {
		t.Errorf("loadEntity() with a missing weight = %v want ErrInvalidInput", err)
	}
}

func TestLoadBenchmark(t *testing.T) {
	store := testStore(t, "GSPC.INDX", "NDX.INDX")

	benchmark, err := loadBenchmark(store, "GSPC.INDX, NDX.INDX", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if benchmark.Len() != 2 {
		t.Errorf("loadBenchmark().Len() = %d want 2", benchmark.Len())
	}

	if _, err := loadBenchmark(store, "", "USD"); !errors.Is(err, perfbench.ErrInvalidInput) {
		t.Errorf("loadBenchmark() without tickers = %v want ErrInvalidInput", err)
	}
}
