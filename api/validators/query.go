package validators

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/types"
	"github.com/angelmondragon/salesboard/pkg/validation"
)

// ParseFilter reads filter, start and end. Missing filter means all; start
// and end are only honoured in custom mode.
func ParseFilter(r *http.Request) (aggregation.FilterSpec, error) {
	q := r.URL.Query()
	mode, err := enums.ParseFilterMode(q.Get("filter"))
	if err != nil {
		return aggregation.FilterSpec{}, validation.Field("filter", "must be one of all week month custom")
	}
	spec := aggregation.FilterSpec{Mode: mode}
	if mode != enums.FilterCustom {
		return spec, nil
	}
	if spec.Start, err = parseQueryDate(q.Get("start")); err != nil {
		return aggregation.FilterSpec{}, validation.Field("start", "must be a date in YYYY-MM-DD format")
	}
	if spec.End, err = parseQueryDate(q.Get("end")); err != nil {
		return aggregation.FilterSpec{}, validation.Field("end", "must be a date in YYYY-MM-DD format")
	}
	return spec, nil
}

// ParseBucket reads the series bucket, defaulting to daily.
func ParseBucket(r *http.Request) (enums.SeriesBucket, error) {
	bucket, err := enums.ParseSeriesBucket(r.URL.Query().Get("bucket"))
	if err != nil {
		return "", validation.Field("bucket", "must be one of daily weekly")
	}
	return bucket, nil
}

func parseQueryDate(raw string) (types.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(raw)
}
