package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

// saleView decorates a sale with display names.
type saleView struct {
	models.Sale
	SalespersonName string `json:"salespersonName"`
	StoreName       string `json:"storeName"`
}

func saleViews(sales []models.Sale, t models.Tables) []saleView {
	out := make([]saleView, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleView{
			Sale:            s,
			SalespersonName: aggregation.SalespersonName(t.Salespeople, s.SalespersonID),
			StoreName:       aggregation.StoreName(t.Stores, s.StoreID),
		})
	}
	return out
}

type filterView struct {
	Mode  string     `json:"mode"`
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

func newFilterView(spec aggregation.FilterSpec) filterView {
	return filterView{Mode: spec.Mode.String(), Start: spec.Start, End: spec.End}
}

type salesListResponse struct {
	Filter        filterView      `json:"filter"`
	Sales         []saleView      `json:"sales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	Count         int             `json:"count"`
}

type dashboardResponse struct {
	aggregation.DashboardView
	RecentSales []saleView `json:"recentSales"`
}

type storeDetailResponse struct {
	Store models.Store         `json:"store"`
	Stats aggregation.StoreRow `json:"stats"`
	Sales []saleView           `json:"sales"`
}

type performanceResponse struct {
	Salesperson models.Salesperson        `json:"salesperson"`
	Summary     aggregation.SellerSummary `json:"summary"`
	Series      []aggregation.SellerPoint `json:"series"`
	Sales       []saleView                `json:"sales"`
}

type seriesResponse struct {
	Bucket string                   `json:"bucket"`
	Stores []models.Store           `json:"stores"`
	Points []aggregation.StorePoint `json:"points"`
}
