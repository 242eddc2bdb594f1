package models

import (
	"slices"

	"github.com/angelmondragon/salesboard/pkg/enums"
)

// Salesperson is a staff member tracked against a monthly unit target.
type Salesperson struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Role   enums.StaffRole `json:"role"`
	Avatar string          `json:"avatar"`
	// Target is a monthly goal counted in transactions, not currency.
	Target int `json:"target"`
	// StoreIDs lists the stores the person is fixed to. Empty means floating.
	StoreIDs     []string `json:"storeIds"`
	ManagerID    *string  `json:"managerId,omitempty"`
	SupervisorID *string  `json:"supervisorId,omitempty"`
}

// Floating reports whether the salesperson may sell at any store.
func (p Salesperson) Floating() bool {
	return len(p.StoreIDs) == 0
}

// WorksAt reports whether storeID is one of the person's fixed stores.
func (p Salesperson) WorksAt(storeID string) bool {
	return slices.Contains(p.StoreIDs, storeID)
}

// SupervisedBy reports whether supervisorID is the person's supervisor.
func (p Salesperson) SupervisedBy(supervisorID string) bool {
	return p.SupervisorID != nil && *p.SupervisorID == supervisorID
}
