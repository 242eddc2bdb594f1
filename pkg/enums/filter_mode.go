package enums

import (
	"fmt"
	"strings"
)

// FilterMode selects the temporal window applied to the sales list.
type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterWeek   FilterMode = "week"
	FilterMonth  FilterMode = "month"
	FilterCustom FilterMode = "custom"
)

var validFilterModes = []FilterMode{
	FilterAll,
	FilterWeek,
	FilterMonth,
	FilterCustom,
}

// String implements fmt.Stringer.
func (m FilterMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known FilterMode.
func (m FilterMode) IsValid() bool {
	for _, candidate := range validFilterModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseFilterMode converts raw input into a FilterMode. Empty input means all.
func ParseFilterMode(value string) (FilterMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return FilterAll, nil
	}
	for _, candidate := range validFilterModes {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid filter mode %q", value)
}
