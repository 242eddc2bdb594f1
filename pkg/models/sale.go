package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/types"
)

// Sale is a completed transaction. Sales are append-only.
type Sale struct {
	ID            string          `json:"id"`
	SalespersonID string          `json:"salespersonId"`
	StoreID       string          `json:"storeId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          types.Date      `json:"date"`
	Product       string          `json:"product"`
	Customer      string          `json:"customer"`
}
