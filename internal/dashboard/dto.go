package dashboard

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/types"
)

// SaleInput captures a new sale. SalespersonID and Date are optional.
// Amount is a pointer so an omitted amount can be told apart from 0.
type SaleInput struct {
	SalespersonID string           `json:"salespersonId"`
	StoreID       string           `json:"storeId" validate:"required"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          types.Date       `json:"date"`
	Product       string           `json:"product" validate:"required"`
	Customer      string           `json:"customer" validate:"required"`
}

func (in SaleInput) normalized() SaleInput {
	in.SalespersonID = strings.TrimSpace(in.SalespersonID)
	in.StoreID = strings.TrimSpace(in.StoreID)
	in.Product = strings.TrimSpace(in.Product)
	in.Customer = strings.TrimSpace(in.Customer)
	return in
}

// StoreInput creates a store when ID is empty or unknown, otherwise it
// replaces the existing record.
type StoreInput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	ManagerID *string `json:"managerId,omitempty"`
}

func (in StoreInput) normalized() StoreInput {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.ManagerID = optionalID(in.ManagerID)
	return in
}

// SalespersonInput follows the same id rule as StoreInput. Empty Role means
// Promotor and an empty Avatar keeps the current one or generates one.
type SalespersonInput struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Role         enums.StaffRole `json:"role" validate:"omitempty,oneof=Promotor Supervisor Gerente"`
	Avatar       string          `json:"avatar"`
	Target       int             `json:"target" validate:"gte=0"`
	StoreIDs     []string        `json:"storeIds"`
	ManagerID    *string         `json:"managerId,omitempty"`
	SupervisorID *string         `json:"supervisorId,omitempty"`
}

func (in SalespersonInput) normalized() SalespersonInput {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Avatar = strings.TrimSpace(in.Avatar)
	in.StoreIDs = dedupeIDs(in.StoreIDs)
	in.ManagerID = optionalID(in.ManagerID)
	in.SupervisorID = optionalID(in.SupervisorID)
	return in
}

// dedupeIDs trims, drops blanks and repeated ids, keeping first occurrence.
func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func optionalID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
