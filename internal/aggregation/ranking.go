package aggregation

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
)

const (
	podiumSize = 3
	// maxOverflow caps the overflow segment drawn past a met target.
	maxOverflow = 20.0
)

// ProgressBar splits a progress percentage into drawable segments.
type ProgressBar struct {
	Primary  float64 `json:"primary"`
	Overflow float64 `json:"overflow"`
	Exceeded bool    `json:"exceeded"`
}

// RankingRow is one salesperson's standing.
type RankingRow struct {
	Position      int             `json:"position"`
	SalespersonID string          `json:"salespersonId"`
	Name          string          `json:"name"`
	Role          enums.StaffRole `json:"role"`
	Avatar        string          `json:"avatar"`
	Target        int             `json:"target"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Count         int             `json:"count"`
	// Progress is count/target as a percentage. It is not capped at 100.
	Progress float64     `json:"progress"`
	Podium   bool        `json:"podium"`
	Bar      ProgressBar `json:"bar"`
}

// Progress returns count/target*100, or 0 when target is not positive.
func Progress(count, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(count) / float64(target) * 100
}

// Bar splits progress into a primary segment capped at 100 and an overflow
// segment capped at maxOverflow.
func Bar(progress float64) ProgressBar {
	bar := ProgressBar{
		Primary:  math.Min(progress, 100),
		Exceeded: progress >= 100,
	}
	if progress > 100 {
		bar.Overflow = math.Min(progress-100, maxOverflow)
	}
	return bar
}

// Ranking orders salespeople by revenue, highest first. There is one row
// per known salesperson; sales whose salesperson is unknown are left out,
// so the rows can add up to less than TotalRevenue. RevenueBySalesperson
// keeps those sales in a trailing Desconhecido row.
func Ranking(sales []models.Sale, people []models.Salesperson) []RankingRow {
	totals := make(map[string]decimal.Decimal, len(people))
	counts := make(map[string]int, len(people))
	for _, s := range sales {
		totals[s.SalespersonID] = totals[s.SalespersonID].Add(s.Amount)
		counts[s.SalespersonID]++
	}

	rows := make([]RankingRow, 0, len(people))
	for _, p := range people {
		progress := Progress(counts[p.ID], p.Target)
		rows = append(rows, RankingRow{
			SalespersonID: p.ID,
			Name:          p.Name,
			Role:          p.Role,
			Avatar:        p.Avatar,
			Target:        p.Target,
			TotalRevenue:  totals[p.ID],
			Count:         counts[p.ID],
			Progress:      progress,
			Bar:           Bar(progress),
		})
	}
	slices.SortStableFunc(rows, func(a, b RankingRow) int {
		return b.TotalRevenue.Cmp(a.TotalRevenue)
	})
	for i := range rows {
		rows[i].Position = i + 1
		rows[i].Podium = i < podiumSize
	}
	return rows
}
