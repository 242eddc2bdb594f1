package aggregation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/internal/seed"
	"github.com/angelmondragon/salesboard/pkg/types"
)

func TestStoreRollupSeed(t *testing.T) {
	rows := StoreRollup(seed.Sales(), seed.Stores())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantOrder := []string{"s1", "s3", "s2"}
	for i, id := range wantOrder {
		if rows[i].StoreID != id {
			t.Fatalf("row %d: expected %s, got %s", i, id, rows[i].StoreID)
		}
	}
	if !rows[0].Revenue.Equal(amount(4900)) || rows[0].SalesCount != 3 {
		t.Fatalf("unexpected s1 row: %+v", rows[0])
	}

	share := 0.0
	for _, r := range rows {
		share += r.Share
	}
	if math.Abs(share-100) > 1e-6 {
		t.Fatalf("shares should add up to 100, got %v", share)
	}
}

func TestStoreRollupPartitionsTotalWithDanglingStores(t *testing.T) {
	sales := append(seed.Sales(), saleOn("900", "1", "closed", 700, types.NewDate(2023, 10, 9)))
	rows := StoreRollup(sales, seed.Stores())

	last := rows[len(rows)-1]
	if last.Name != GeneralStore || last.StoreID != UnknownKey || !last.Revenue.Equal(amount(700)) {
		t.Fatalf("expected trailing general row, got %+v", last)
	}
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Revenue)
	}
	if !sum.Equal(TotalRevenue(sales)) {
		t.Fatalf("rollup should partition the total: %s vs %s", sum, TotalRevenue(sales))
	}
}

func TestStoreRollupWithoutSales(t *testing.T) {
	rows := StoreRollup(nil, seed.Stores())
	for _, r := range rows {
		if !r.Revenue.IsZero() || r.Share != 0 {
			t.Fatalf("expected empty row, got %+v", r)
		}
	}
}

func TestStoreSalesNewestFirst(t *testing.T) {
	sales := StoreSales(seed.Sales(), "s1")
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	if sales[0].ID != "106" || sales[2].ID != "101" {
		t.Fatalf("unexpected order: %s .. %s", sales[0].ID, sales[2].ID)
	}
	if len(StoreSales(seed.Sales(), "nope")) != 0 {
		t.Fatal("unknown store has no sales")
	}
}
