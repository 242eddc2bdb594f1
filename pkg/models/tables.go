package models

import "slices"

// Tables is a snapshot of the three domain tables.
type Tables struct {
	Sales       []Sale        `json:"sales"`
	Salespeople []Salesperson `json:"salespeople"`
	Stores      []Store       `json:"stores"`
}

// Clone returns a deep copy so callers can hand snapshots out freely.
func (t Tables) Clone() Tables {
	people := make([]Salesperson, len(t.Salespeople))
	for i, p := range t.Salespeople {
		p.StoreIDs = cloneIDs(p.StoreIDs)
		p.ManagerID = cloneString(p.ManagerID)
		p.SupervisorID = cloneString(p.SupervisorID)
		people[i] = p
	}
	stores := make([]Store, len(t.Stores))
	for i, s := range t.Stores {
		s.ManagerID = cloneString(s.ManagerID)
		stores[i] = s
	}
	sales := slices.Clone(t.Sales)
	if sales == nil {
		sales = []Sale{}
	}
	return Tables{Sales: sales, Salespeople: people, Stores: stores}
}

// FindSalesperson returns the salesperson with id, if any.
func (t Tables) FindSalesperson(id string) (Salesperson, bool) {
	return FindSalesperson(t.Salespeople, id)
}

// FindStore returns the store with id, if any.
func (t Tables) FindStore(id string) (Store, bool) {
	return FindStore(t.Stores, id)
}

func FindSalesperson(people []Salesperson, id string) (Salesperson, bool) {
	for _, p := range people {
		if p.ID == id {
			return p, true
		}
	}
	return Salesperson{}, false
}

func FindStore(stores []Store, id string) (Store, bool) {
	for _, s := range stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
