// Package tables maps the three domain tables onto storage documents.
package tables

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/angelmondragon/salesboard/internal/seed"
	"github.com/angelmondragon/salesboard/internal/storage"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// Reasons a table fell back to the seed dataset.
const (
	ReasonAbsent     = "absent"
	ReasonCorrupt    = "corrupt"
	ReasonUnreadable = "unreadable"
)

// Fallback records a table that could not be loaded from storage.
type Fallback struct {
	Key    string
	Reason string
}

// LoadReport lists the tables that were seeded instead of loaded.
type LoadReport struct {
	Fallbacks []Fallback
}

// Seeded reports whether the document under key fell back to seed data.
func (r LoadReport) Seeded(key string) bool {
	for _, f := range r.Fallbacks {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Repository loads and saves the tables through a DocumentStore.
type Repository struct {
	store storage.DocumentStore
	logg  *logger.Logger
}

func NewRepository(store storage.DocumentStore, logg *logger.Logger) *Repository {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Repository{store: store, logg: logg}
}

// Load reads each table independently. A table whose document is absent,
// unreadable or corrupt is replaced with its seed data.
func (r *Repository) Load(ctx context.Context) (models.Tables, LoadReport) {
	var (
		out    models.Tables
		report LoadReport
	)
	if reason := r.loadInto(ctx, storage.KeySales, &out.Sales); reason != "" {
		out.Sales = seed.Sales()
		report.Fallbacks = append(report.Fallbacks, Fallback{Key: storage.KeySales, Reason: reason})
	}
	if reason := r.loadInto(ctx, storage.KeySalespeople, &out.Salespeople); reason != "" {
		out.Salespeople = seed.Salespeople()
		report.Fallbacks = append(report.Fallbacks, Fallback{Key: storage.KeySalespeople, Reason: reason})
	}
	if reason := r.loadInto(ctx, storage.KeyStores, &out.Stores); reason != "" {
		out.Stores = seed.Stores()
		report.Fallbacks = append(report.Fallbacks, Fallback{Key: storage.KeyStores, Reason: reason})
	}
	return out.Clone(), report
}

func (r *Repository) loadInto(ctx context.Context, key string, dest any) string {
	body, err := r.store.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return ReasonAbsent
	}
	logCtx := r.logg.WithField(ctx, "document", key)
	if err != nil {
		r.logg.WarnErr(logCtx, "document unreadable, using seed data", err)
		return ReasonUnreadable
	}
	if err := json.Unmarshal(body, dest); err != nil {
		r.logg.WarnErr(logCtx, "document corrupt, using seed data", err)
		return ReasonCorrupt
	}
	return ""
}

// Save writes all three documents. Every document is attempted; the
// returned error combines the failures.
func (r *Repository) Save(ctx context.Context, t models.Tables) error {
	t = t.Clone()
	var err error
	err = multierr.Append(err, r.save(ctx, storage.KeySales, t.Sales))
	err = multierr.Append(err, r.save(ctx, storage.KeySalespeople, t.Salespeople))
	err = multierr.Append(err, r.save(ctx, storage.KeyStores, t.Stores))
	return err
}

func (r *Repository) save(ctx context.Context, key string, rows any) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return r.store.Save(ctx, key, body)
}

// Ping checks the underlying store.
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
