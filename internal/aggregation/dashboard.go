package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/models"
)

// RecentFeedSize is how many sales the dashboard feed shows.
const RecentFeedSize = 4

// DashboardView is the landing page summary.
type DashboardView struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageTicket     decimal.Decimal `json:"averageTicket"`
	TotalTransactions int             `json:"totalTransactions"`
	RevenueBySeller   []SellerRevenue `json:"revenueBySeller"`
	RecentSales       []models.Sale   `json:"recentSales"`
}

// RecentSales returns the last n sales entered, most recent first.
func RecentSales(sales []models.Sale, n int) []models.Sale {
	if n < 0 {
		n = 0
	}
	out := make([]models.Sale, 0, min(n, len(sales)))
	for i := len(sales) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, sales[i])
	}
	return out
}

// Newest returns every sale, most recent entry first.
func Newest(sales []models.Sale) []models.Sale {
	return RecentSales(sales, len(sales))
}

// Dashboard builds the landing page summary over the given sales: totals,
// revenue per salesperson and the RecentFeedSize newest entries.
func Dashboard(sales []models.Sale, people []models.Salesperson) DashboardView {
	return DashboardView{
		TotalRevenue:      TotalRevenue(sales),
		AverageTicket:     AverageTicket(sales),
		TotalTransactions: len(sales),
		RevenueBySeller:   RevenueBySalesperson(sales, people),
		RecentSales:       RecentSales(sales, RecentFeedSize),
	}
}
