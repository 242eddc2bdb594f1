package aggregation

import (
	"strings"

	"github.com/angelmondragon/salesboard/pkg/models"
)

const (
	// UnknownSalesperson labels sales whose salesperson does not resolve.
	UnknownSalesperson = "Desconhecido"
	// GeneralStore labels sales whose store does not resolve.
	GeneralStore = "Geral"
	// UnknownKey is the row/series key used for unresolved references.
	UnknownKey = "unknown"
)

// SalespersonName resolves a salesperson id to a display name.
func SalespersonName(people []models.Salesperson, id string) string {
	if p, ok := models.FindSalesperson(people, id); ok {
		return p.Name
	}
	return UnknownSalesperson
}

// StoreName resolves a store id to a display name.
func StoreName(stores []models.Store, id string) string {
	if s, ok := models.FindStore(stores, id); ok {
		return s.Name
	}
	return GeneralStore
}

// FirstName returns the first word of a display name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func salespersonIndex(people []models.Salesperson) map[string]struct{} {
	index := make(map[string]struct{}, len(people))
	for _, p := range people {
		index[p.ID] = struct{}{}
	}
	return index
}

func storeIndex(stores []models.Store) map[string]struct{} {
	index := make(map[string]struct{}, len(stores))
	for _, s := range stores {
		index[s.ID] = struct{}{}
	}
	return index
}
