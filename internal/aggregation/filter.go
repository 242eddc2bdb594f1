package aggregation

import (
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

// weekWindowDays is how far back the week filter reaches, inclusive.
const weekWindowDays = 7

// FilterSpec selects a temporal window. Start and End are only read in
// custom mode; a zero Date means the bound is absent.
type FilterSpec struct {
	Mode  enums.FilterMode
	Start types.Date
	End   types.Date
}

// Filter returns the sales inside the window, in entry order. now decides
// what "today" is, so it should already be in the configured location.
func Filter(sales []models.Sale, spec FilterSpec, now time.Time) []models.Sale {
	match, ok := matcher(spec, types.DateOf(now))
	if !ok {
		return append(make([]models.Sale, 0, len(sales)), sales...)
	}
	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if match(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

func matcher(spec FilterSpec, today types.Date) (func(types.Date) bool, bool) {
	switch spec.Mode {
	case enums.FilterWeek:
		from := today.AddDays(-weekWindowDays)
		return func(d types.Date) bool { return !d.Before(from.Time) }, true
	case enums.FilterMonth:
		return func(d types.Date) bool {
			return d.Year() == today.Year() && d.Month() == today.Month()
		}, true
	case enums.FilterCustom:
		if spec.Start.IsZero() && spec.End.IsZero() {
			return nil, false
		}
		end := spec.End
		if end.IsZero() {
			end = today
		}
		start := spec.Start
		return func(d types.Date) bool {
			if !start.IsZero() && d.Before(start.Time) {
				return false
			}
			return !d.After(end.Time)
		}, true
	}
	return nil, false
}
