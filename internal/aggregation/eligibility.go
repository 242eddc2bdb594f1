package aggregation

import "github.com/angelmondragon/salesboard/pkg/models"

// EligibleStores lists the stores a salesperson may record sales at, in
// store-table order. A floating salesperson, or one that does not exist,
// is eligible everywhere.
func EligibleStores(person *models.Salesperson, stores []models.Store) []models.Store {
	out := make([]models.Store, 0, len(stores))
	if person == nil || person.Floating() {
		return append(out, stores...)
	}
	for _, st := range stores {
		if person.WorksAt(st.ID) {
			out = append(out, st)
		}
	}
	return out
}

// CanSellAt reports whether the salesperson may record a sale at storeID.
func CanSellAt(person models.Salesperson, storeID string) bool {
	return person.Floating() || person.WorksAt(storeID)
}
