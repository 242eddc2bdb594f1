package aggregation

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/models"
)

// StoreRow is one store's share of the revenue.
type StoreRow struct {
	StoreID    string          `json:"storeId"`
	Name       string          `json:"name"`
	Location   string          `json:"location"`
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"salesCount"`
	// Share is the percentage of total revenue, 0 when there is none.
	Share float64 `json:"share"`
}

// StoreRollup returns one row per store, highest revenue first, followed by
// a GeneralStore row when sales reference unknown stores. Row revenues
// always add up to TotalRevenue.
func StoreRollup(sales []models.Sale, stores []models.Store) []StoreRow {
	known := storeIndex(stores)
	revenue := make(map[string]decimal.Decimal, len(stores))
	counts := make(map[string]int, len(stores))
	general := StoreRow{StoreID: UnknownKey, Name: GeneralStore, Revenue: decimal.Zero}

	for _, s := range sales {
		if _, ok := known[s.StoreID]; !ok {
			general.Revenue = general.Revenue.Add(s.Amount)
			general.SalesCount++
			continue
		}
		revenue[s.StoreID] = revenue[s.StoreID].Add(s.Amount)
		counts[s.StoreID]++
	}

	rows := make([]StoreRow, 0, len(stores)+1)
	for _, st := range stores {
		rows = append(rows, StoreRow{
			StoreID:    st.ID,
			Name:       st.Name,
			Location:   st.Location,
			Revenue:    revenue[st.ID],
			SalesCount: counts[st.ID],
		})
	}
	slices.SortStableFunc(rows, func(a, b StoreRow) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	if general.SalesCount > 0 {
		rows = append(rows, general)
	}

	total := TotalRevenue(sales)
	if total.IsPositive() {
		for i := range rows {
			rows[i].Share = rows[i].Revenue.Div(total).Mul(hundred).InexactFloat64()
		}
	}
	return rows
}

// StoreSales returns the sales made at storeID, newest entry first.
func StoreSales(sales []models.Sale, storeID string) []models.Sale {
	out := make([]models.Sale, 0)
	for i := len(sales) - 1; i >= 0; i-- {
		if sales[i].StoreID == storeID {
			out = append(out, sales[i])
		}
	}
	return out
}

var hundred = decimal.NewFromInt(100)
