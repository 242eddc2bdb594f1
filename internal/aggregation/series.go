package aggregation

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

// StorePoint is one bucket of the per-store revenue series. Revenue holds
// an entry for every store, zero where the store sold nothing.
type StorePoint struct {
	Date    types.Date                 `json:"date"`
	Revenue map[string]decimal.Decimal `json:"revenue"`
}

// SellerPoint is one day of a salesperson's revenue.
type SellerPoint struct {
	Date  types.Date      `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SellerSummary holds the headline numbers of one salesperson.
type SellerSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	AverageSale  decimal.Decimal `json:"averageSale"`
	Count        int             `json:"count"`
}

// StoreDailySeries buckets revenue by sale date.
func StoreDailySeries(sales []models.Sale, stores []models.Store) []StorePoint {
	return storeSeries(sales, stores, func(d types.Date) types.Date { return d })
}

// StoreWeeklySeries buckets revenue by the Monday of each sale's week.
func StoreWeeklySeries(sales []models.Sale, stores []models.Store) []StorePoint {
	return storeSeries(sales, stores, types.Date.WeekStart)
}

// StoreSeries dispatches on the requested bucket size.
func StoreSeries(sales []models.Sale, stores []models.Store, bucket enums.SeriesBucket) []StorePoint {
	if bucket == enums.SeriesWeekly {
		return StoreWeeklySeries(sales, stores)
	}
	return StoreDailySeries(sales, stores)
}

func storeSeries(sales []models.Sale, stores []models.Store, bucketOf func(types.Date) types.Date) []StorePoint {
	known := storeIndex(stores)
	hasUnknown := false
	for _, s := range sales {
		if _, ok := known[s.StoreID]; !ok {
			hasUnknown = true
			break
		}
	}

	index := make(map[string]int)
	points := make([]StorePoint, 0)
	for _, s := range sales {
		bucket := bucketOf(s.Date)
		key := bucket.String()
		i, ok := index[key]
		if !ok {
			revenue := make(map[string]decimal.Decimal, len(stores)+1)
			for _, st := range stores {
				revenue[st.ID] = decimal.Zero
			}
			if hasUnknown {
				revenue[UnknownKey] = decimal.Zero
			}
			points = append(points, StorePoint{Date: bucket, Revenue: revenue})
			i = len(points) - 1
			index[key] = i
		}
		storeID := s.StoreID
		if _, ok := known[storeID]; !ok {
			storeID = UnknownKey
		}
		points[i].Revenue[storeID] = points[i].Revenue[storeID].Add(s.Amount)
	}

	slices.SortStableFunc(points, func(a, b StorePoint) int {
		return a.Date.Compare(b.Date.Time)
	})
	return points
}

// SellerSeries sums one salesperson's sales per date, oldest first.
func SellerSeries(sales []models.Sale, salespersonID string) []SellerPoint {
	index := make(map[string]int)
	points := make([]SellerPoint, 0)
	for _, s := range sales {
		if s.SalespersonID != salespersonID {
			continue
		}
		i, ok := index[s.Date.String()]
		if !ok {
			points = append(points, SellerPoint{Date: s.Date, Total: decimal.Zero})
			i = len(points) - 1
			index[s.Date.String()] = i
		}
		points[i].Total = points[i].Total.Add(s.Amount)
	}
	slices.SortStableFunc(points, func(a, b SellerPoint) int {
		return a.Date.Compare(b.Date.Time)
	})
	return points
}

// SellerStats summarizes one salesperson's sales.
func SellerStats(sales []models.Sale, salespersonID string) SellerSummary {
	own := SalesBy(sales, salespersonID)
	return SellerSummary{
		TotalRevenue: TotalRevenue(own),
		AverageSale:  AverageTicket(own),
		Count:        len(own),
	}
}

// SalesBy returns the sales made by salespersonID in entry order.
func SalesBy(sales []models.Sale, salespersonID string) []models.Sale {
	out := make([]models.Sale, 0)
	for _, s := range sales {
		if s.SalespersonID == salespersonID {
			out = append(out, s)
		}
	}
	return out
}
