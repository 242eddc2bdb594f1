package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCloneIsDeep(t *testing.T) {
	supervisor := "4"
	original := Tables{
		Sales:       []Sale{{ID: "101", Amount: decimal.NewFromInt(10)}},
		Salespeople: []Salesperson{{ID: "1", StoreIDs: []string{"s1"}, SupervisorID: &supervisor}},
		Stores:      []Store{{ID: "s1", Name: "Centro"}},
	}

	clone := original.Clone()
	clone.Salespeople[0].StoreIDs[0] = "s9"
	*clone.Salespeople[0].SupervisorID = "x"
	clone.Sales[0].ID = "999"
	clone.Stores[0].Name = "Outra"

	if original.Salespeople[0].StoreIDs[0] != "s1" {
		t.Fatal("store ids should not be shared")
	}
	if *original.Salespeople[0].SupervisorID != "4" {
		t.Fatal("supervisor pointer should not be shared")
	}
	if original.Sales[0].ID != "101" || original.Stores[0].Name != "Centro" {
		t.Fatal("rows should not be shared")
	}
}

func TestCloneNormalizesNilSlices(t *testing.T) {
	clone := Tables{Salespeople: []Salesperson{{ID: "1"}}}.Clone()
	if clone.Sales == nil {
		t.Fatal("expected empty sales slice")
	}
	if clone.Salespeople[0].StoreIDs == nil {
		t.Fatal("expected empty store id set")
	}
}

func TestSalespersonHelpers(t *testing.T) {
	sup := "4"
	p := Salesperson{ID: "1", StoreIDs: []string{"s1", "s2"}, SupervisorID: &sup}
	if p.Floating() {
		t.Fatal("fixed salesperson is not floating")
	}
	if !p.WorksAt("s2") || p.WorksAt("s3") {
		t.Fatal("unexpected WorksAt result")
	}
	if !p.SupervisedBy("4") || p.SupervisedBy("5") {
		t.Fatal("unexpected SupervisedBy result")
	}
	if !(Salesperson{}).Floating() {
		t.Fatal("no stores means floating")
	}
}

func TestFinders(t *testing.T) {
	tables := Tables{
		Salespeople: []Salesperson{{ID: "1", Name: "Ana Silva"}},
		Stores:      []Store{{ID: "s1", Name: "Realme Centro"}},
	}
	if p, ok := tables.FindSalesperson("1"); !ok || p.Name != "Ana Silva" {
		t.Fatalf("expected Ana, got %+v", p)
	}
	if _, ok := tables.FindSalesperson("9"); ok {
		t.Fatal("unexpected salesperson match")
	}
	if s, ok := tables.FindStore("s1"); !ok || s.Name != "Realme Centro" {
		t.Fatalf("expected store, got %+v", s)
	}
	if _, ok := tables.FindStore("s9"); ok {
		t.Fatal("unexpected store match")
	}
}
