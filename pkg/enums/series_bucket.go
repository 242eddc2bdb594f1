package enums

import (
	"fmt"
	"strings"
)

// SeriesBucket is the granularity of the per-store revenue history.
type SeriesBucket string

const (
	SeriesDaily  SeriesBucket = "daily"
	SeriesWeekly SeriesBucket = "weekly"
)

// String implements fmt.Stringer.
func (b SeriesBucket) String() string {
	return string(b)
}

// ParseSeriesBucket converts raw input into a SeriesBucket. Empty input means daily.
func ParseSeriesBucket(value string) (SeriesBucket, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SeriesDaily):
		return SeriesDaily, nil
	case string(SeriesWeekly):
		return SeriesWeekly, nil
	}
	return "", fmt.Errorf("invalid series bucket %q", value)
}
