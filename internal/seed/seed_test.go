package seed

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeedSizes(t *testing.T) {
	tables := Tables()
	if len(tables.Sales) != 8 {
		t.Fatalf("expected 8 sales, got %d", len(tables.Sales))
	}
	if len(tables.Salespeople) != 5 {
		t.Fatalf("expected 5 salespeople, got %d", len(tables.Salespeople))
	}
	if len(tables.Stores) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(tables.Stores))
	}
}

func TestSeedSalesTotal(t *testing.T) {
	total := decimal.Zero
	for _, s := range Sales() {
		total = total.Add(s.Amount)
	}
	if !total.Equal(decimal.NewFromInt(11450)) {
		t.Fatalf("expected total 11450, got %s", total)
	}
}

func TestSeedReturnsFreshCopies(t *testing.T) {
	people := Salespeople()
	people[0].StoreIDs[0] = "changed"
	if Salespeople()[0].StoreIDs[0] != "s1" {
		t.Fatal("seed data must not be shared between calls")
	}
}

func TestSeedDates(t *testing.T) {
	sales := Sales()
	if sales[0].Date.String() != "2023-10-01" || sales[7].Date.String() != "2023-10-08" {
		t.Fatalf("unexpected seed dates %s..%s", sales[0].Date, sales[7].Date)
	}
}
