// Package seed holds the built-in dataset used when nothing has been persisted yet.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
)

// Stores returns a fresh copy of the seed stores.
func Stores() []models.Store {
	return []models.Store{
		{ID: "s1", Name: "Realme Centro", Location: "Av. Principal, 100"},
		{ID: "s2", Name: "Realme Shopping", Location: "Piso L2, Loja 45"},
		{ID: "s3", Name: "Realme Online", Location: "E-commerce"},
	}
}

// Salespeople returns a fresh copy of the seed staff.
func Salespeople() []models.Salesperson {
	return []models.Salesperson{
		{ID: "1", Name: "Ana Silva", Role: enums.StaffRolePromotor, Avatar: AvatarURL("ana"), Target: 50, StoreIDs: []string{"s1"}},
		{ID: "2", Name: "Bruno Costa", Role: enums.StaffRolePromotor, Avatar: AvatarURL("bruno"), Target: 40, StoreIDs: []string{"s2"}},
		{ID: "3", Name: "Carla Souza", Role: enums.StaffRoleGerente, Avatar: AvatarURL("carla"), Target: 100, StoreIDs: []string{"s1", "s2"}},
		{ID: "4", Name: "Diego Oliveira", Role: enums.StaffRoleSupervisor, Avatar: AvatarURL("diego"), Target: 80, StoreIDs: []string{"s2"}},
		{ID: "5", Name: "Elena Santos", Role: enums.StaffRolePromotor, Avatar: AvatarURL("elena"), Target: 45, StoreIDs: []string{"s3"}},
	}
}

// Sales returns a fresh copy of the seed sales.
func Sales() []models.Sale {
	return []models.Sale{
		sale("101", "1", "s1", 1500, 1, "Software SaaS", "Empresa A"),
		sale("102", "2", "s2", 800, 2, "Treinamento", "Loja B"),
		sale("103", "3", "s1", 2200, 3, "Licença Enterprise", "Hospital C"),
		sale("104", "1", "s3", 3000, 4, "Software SaaS", "Tech Corp"),
		sale("105", "5", "s2", 450, 5, "Consultoria", "Pequena Empresa"),
		sale("106", "4", "s1", 1200, 6, "Equipamento", "Indústria D"),
		sale("107", "3", "s2", 1800, 7, "Licença Enterprise", "Banco E"),
		sale("108", "2", "s3", 500, 8, "Suporte", "Escola F"),
	}
}

// Tables returns the full seed snapshot.
func Tables() models.Tables {
	return models.Tables{
		Sales:       Sales(),
		Salespeople: Salespeople(),
		Stores:      Stores(),
	}
}

// AvatarURL builds the placeholder avatar used for seeded and new staff.
func AvatarURL(key string) string {
	return "https://picsum.photos/seed/" + key + "/200"
}

func sale(id, salespersonID, storeID string, amount int64, day int, product, customer string) models.Sale {
	return models.Sale{
		ID:            id,
		SalespersonID: salespersonID,
		StoreID:       storeID,
		Amount:        decimal.NewFromInt(amount),
		Date:          types.NewDate(2023, time.October, day),
		Product:       product,
		Customer:      customer,
	}
}
