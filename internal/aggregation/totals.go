package aggregation

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/models"
)

// SellerRevenue is one bar of the revenue-by-salesperson chart.
type SellerRevenue struct {
	SalespersonID string          `json:"salespersonId"`
	Name          string          `json:"name"`
	FirstName     string          `json:"firstName"`
	Total         decimal.Decimal `json:"total"`
	Count         int             `json:"count"`
}

// TotalRevenue sums the amount of every sale. An empty set yields zero.
func TotalRevenue(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Amount)
	}
	return total
}

// AverageTicket is total revenue divided by the number of sales, or zero
// when there are none.
func AverageTicket(sales []models.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return TotalRevenue(sales).Div(decimal.NewFromInt(int64(len(sales))))
}

// RevenueBySalesperson returns one row per salesperson, highest revenue
// first. Sales that reference an unknown salesperson are collected in a
// trailing UnknownSalesperson row so the rows always add up to TotalRevenue.
func RevenueBySalesperson(sales []models.Sale, people []models.Salesperson) []SellerRevenue {
	known := salespersonIndex(people)
	totals := make(map[string]decimal.Decimal, len(people))
	counts := make(map[string]int, len(people))
	unknown := SellerRevenue{SalespersonID: UnknownKey, Name: UnknownSalesperson, FirstName: UnknownSalesperson, Total: decimal.Zero}

	for _, s := range sales {
		if _, ok := known[s.SalespersonID]; !ok {
			unknown.Total = unknown.Total.Add(s.Amount)
			unknown.Count++
			continue
		}
		totals[s.SalespersonID] = totals[s.SalespersonID].Add(s.Amount)
		counts[s.SalespersonID]++
	}

	rows := make([]SellerRevenue, 0, len(people)+1)
	for _, p := range people {
		rows = append(rows, SellerRevenue{
			SalespersonID: p.ID,
			Name:          p.Name,
			FirstName:     FirstName(p.Name),
			Total:         totals[p.ID],
			Count:         counts[p.ID],
		})
	}
	slices.SortStableFunc(rows, func(a, b SellerRevenue) int {
		return b.Total.Cmp(a.Total)
	})

	if unknown.Count > 0 {
		rows = append(rows, unknown)
	}
	return rows
}
