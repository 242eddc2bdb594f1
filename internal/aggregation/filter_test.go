package aggregation

import (
	"testing"
	"time"

	"github.com/angelmondragon/salesboard/internal/seed"
	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

func ids(sales []models.Sale) []string {
	out := make([]string, 0, len(sales))
	for _, s := range sales {
		out = append(out, s.ID)
	}
	return out
}

func sameIDs(t *testing.T, got []models.Sale, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterAll(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Filter(seed.Sales(), FilterSpec{Mode: enums.FilterAll}, now)
	if len(got) != 8 {
		t.Fatalf("expected all sales, got %d", len(got))
	}
}

func TestFilterWeekBoundaries(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	today := types.DateOf(now)
	sales := []models.Sale{
		saleOn("eight", "1", "s1", 1, today.AddDays(-8)),
		saleOn("seven", "1", "s1", 1, today.AddDays(-7)),
		saleOn("today", "1", "s1", 1, today),
	}
	sameIDs(t, Filter(sales, FilterSpec{Mode: enums.FilterWeek}, now), "seven", "today")
}

func TestFilterWeekUsesCallerLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC on the 16th is still the 15th in Sao Paulo.
	now := time.Date(2024, time.March, 16, 1, 0, 0, 0, time.UTC).In(saoPaulo)
	sales := []models.Sale{saleOn("edge", "1", "s1", 1, types.NewDate(2024, time.March, 8))}
	sameIDs(t, Filter(sales, FilterSpec{Mode: enums.FilterWeek}, now), "edge")
}

func TestFilterMonth(t *testing.T) {
	now := time.Date(2023, time.October, 20, 9, 0, 0, 0, time.UTC)
	sales := append(seed.Sales(), saleOn("sep", "1", "s1", 1, types.NewDate(2023, time.September, 30)),
		saleOn("lastyear", "1", "s1", 1, types.NewDate(2022, time.October, 5)))
	got := Filter(sales, FilterSpec{Mode: enums.FilterMonth}, now)
	if len(got) != 8 {
		t.Fatalf("expected the 8 october sales, got %v", ids(got))
	}
}

func TestFilterCustom(t *testing.T) {
	now := time.Date(2023, time.October, 8, 12, 0, 0, 0, time.UTC)
	sales := seed.Sales()

	onlyStart := FilterSpec{Mode: enums.FilterCustom, Start: types.NewDate(2023, time.October, 5)}
	sameIDs(t, Filter(sales, onlyStart, now), "105", "106", "107", "108")

	onlyEnd := FilterSpec{Mode: enums.FilterCustom, End: types.NewDate(2023, time.October, 3)}
	sameIDs(t, Filter(sales, onlyEnd, now), "101", "102", "103")

	both := FilterSpec{Mode: enums.FilterCustom, Start: types.NewDate(2023, time.October, 2), End: types.NewDate(2023, time.October, 4)}
	sameIDs(t, Filter(sales, both, now), "102", "103", "104")

	none := FilterSpec{Mode: enums.FilterCustom}
	if len(Filter(sales, none, now)) != len(sales) {
		t.Fatal("custom without bounds behaves like all")
	}
}

func TestFilterCustomStartOnlyStopsAtToday(t *testing.T) {
	now := time.Date(2023, time.October, 5, 12, 0, 0, 0, time.UTC)
	spec := FilterSpec{Mode: enums.FilterCustom, Start: types.NewDate(2023, time.October, 4)}
	sameIDs(t, Filter(seed.Sales(), spec, now), "104", "105")
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	sales := seed.Sales()
	got := Filter(sales, FilterSpec{Mode: enums.FilterAll}, time.Now())
	got[0].ID = "changed"
	if sales[0].ID != "101" {
		t.Fatal("filter result must not share the input array")
	}
}
