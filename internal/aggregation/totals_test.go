package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/internal/seed"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func saleOn(id, sellerID, storeID string, value int64, date types.Date) models.Sale {
	return models.Sale{ID: id, SalespersonID: sellerID, StoreID: storeID, Amount: amount(value), Date: date, Product: "p", Customer: "c"}
}

func TestTotalsOfEmptySetAreZero(t *testing.T) {
	if !TotalRevenue(nil).IsZero() {
		t.Fatal("expected zero total for no sales")
	}
	if !AverageTicket(nil).IsZero() {
		t.Fatal("expected zero average for no sales")
	}
}

func TestTotalRevenueSeed(t *testing.T) {
	total := TotalRevenue(seed.Sales())
	if !total.Equal(amount(11450)) {
		t.Fatalf("expected 11450, got %s", total)
	}
}

func TestTotalRevenueIsOrderInvariant(t *testing.T) {
	sales := seed.Sales()
	reversed := make([]models.Sale, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		reversed = append(reversed, sales[i])
	}
	if !TotalRevenue(sales).Equal(TotalRevenue(reversed)) {
		t.Fatal("total should not depend on order")
	}
}

func TestAverageTicket(t *testing.T) {
	sales := []models.Sale{
		saleOn("a", "1", "s1", 100, types.NewDate(2024, 1, 1)),
		saleOn("b", "1", "s1", 250, types.NewDate(2024, 1, 2)),
	}
	avg := AverageTicket(sales)
	if !avg.Equal(decimal.RequireFromString("175")) {
		t.Fatalf("expected 175, got %s", avg)
	}
}

func TestRevenueBySalespersonSeed(t *testing.T) {
	rows := RevenueBySalesperson(seed.Sales(), seed.Salespeople())
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	wantOrder := []string{"1", "3", "2", "4", "5"}
	for i, id := range wantOrder {
		if rows[i].SalespersonID != id {
			t.Fatalf("row %d: expected seller %s, got %s", i, id, rows[i].SalespersonID)
		}
	}
	if !rows[0].Total.Equal(amount(4500)) || rows[0].Count != 2 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[0].FirstName != "Ana" {
		t.Fatalf("expected first name Ana, got %q", rows[0].FirstName)
	}
}

func TestRevenueBySalespersonKeepsUnknownSellers(t *testing.T) {
	people := seed.Salespeople()
	sales := append(seed.Sales(), saleOn("999", "ghost", "s1", 50, types.NewDate(2023, 10, 9)))

	rows := RevenueBySalesperson(sales, people)
	last := rows[len(rows)-1]
	if last.Name != UnknownSalesperson || !last.Total.Equal(amount(50)) || last.Count != 1 {
		t.Fatalf("expected trailing unknown row, got %+v", last)
	}

	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Total)
	}
	if !sum.Equal(TotalRevenue(sales)) {
		t.Fatalf("rows should add up to total: %s vs %s", sum, TotalRevenue(sales))
	}
}

func TestRevenueBySalespersonTiesKeepTableOrder(t *testing.T) {
	people := []models.Salesperson{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}, {ID: "c", Name: "C"}}
	sales := []models.Sale{
		saleOn("1", "a", "s1", 10, types.NewDate(2024, 1, 1)),
		saleOn("2", "b", "s1", 10, types.NewDate(2024, 1, 1)),
	}
	rows := RevenueBySalesperson(sales, people)
	if rows[0].SalespersonID != "b" || rows[1].SalespersonID != "a" || rows[2].SalespersonID != "c" {
		t.Fatalf("unexpected tie order: %s %s %s", rows[0].SalespersonID, rows[1].SalespersonID, rows[2].SalespersonID)
	}
}

func TestLabels(t *testing.T) {
	people := seed.Salespeople()
	stores := seed.Stores()
	if SalespersonName(people, "2") != "Bruno Costa" {
		t.Fatal("expected salesperson name")
	}
	if SalespersonName(people, "404") != UnknownSalesperson {
		t.Fatal("expected unknown salesperson label")
	}
	if StoreName(stores, "s3") != "Realme Online" {
		t.Fatal("expected store name")
	}
	if StoreName(stores, "zz") != GeneralStore {
		t.Fatal("expected general store label")
	}
	if FirstName("  ") != "  " || FirstName("Diego Oliveira") != "Diego" {
		t.Fatal("unexpected first name")
	}
}
