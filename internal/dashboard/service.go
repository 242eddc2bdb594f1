// Package dashboard owns the in-memory tables. It serializes writers,
// persists every mutation and notifies subscribers.
package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/seed"
	"github.com/angelmondragon/salesboard/internal/tables"
	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/types"
	"github.com/angelmondragon/salesboard/pkg/validation"
)

// Mutation kinds, used as metric labels.
const (
	KindAddSale         = "add_sale"
	KindSaveStore       = "save_store"
	KindSaveSalesperson = "save_salesperson"
	KindReset           = "reset"
)

var (
	timeNow = time.Now
	newID   = uuid.NewString
)

type repository interface {
	Load(ctx context.Context) (models.Tables, tables.LoadReport)
	Save(ctx context.Context, t models.Tables) error
	Ping(ctx context.Context) error
}

// Listener receives the snapshot produced by a mutation. Listeners run on
// the writer's goroutine and must not mutate the service.
type Listener func(models.Tables)

// Service exposes the state container.
type Service interface {
	Snapshot() models.Tables
	Today() types.Date
	Now() time.Time
	AddSale(ctx context.Context, input SaleInput) (models.Sale, error)
	SaveStore(ctx context.Context, input StoreInput) (models.Store, error)
	SaveSalesperson(ctx context.Context, input SalespersonInput) (models.Salesperson, error)
	Reset(ctx context.Context) error
	Subscribe(fn Listener) (unsubscribe func())
	Ping(ctx context.Context) error
}

// Options configures the service.
type Options struct {
	Location *time.Location
	Logger   *logger.Logger
	Metrics  *metrics.DashboardMetrics
}

type service struct {
	repo    repository
	loc     *time.Location
	logg    *logger.Logger
	metrics *metrics.DashboardMetrics

	writeMu sync.Mutex
	stateMu sync.RWMutex
	state   models.Tables

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64
}

// NewService loads the tables through repo, seeding any that are missing.
func NewService(ctx context.Context, repo repository, opts Options) (Service, error) {
	if repo == nil {
		return nil, errors.New("tables repository required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	state, report := repo.Load(ctx)
	for _, fallback := range report.Fallbacks {
		opts.Logger.Info(opts.Logger.WithFields(ctx, map[string]any{
			"document": fallback.Key,
			"reason":   fallback.Reason,
		}), "table initialized from seed data")
	}

	return &service{
		repo:      repo,
		loc:       opts.Location,
		logg:      opts.Logger,
		metrics:   opts.Metrics,
		state:     state,
		listeners: make(map[uint64]Listener),
	}, nil
}

func (s *service) Snapshot() models.Tables {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.Clone()
}

// Now returns the current time in the configured location.
func (s *service) Now() time.Time {
	return timeNow().In(s.loc)
}

// Today returns the current calendar day in the configured location.
func (s *service) Today() types.Date {
	return types.DateOf(s.Now())
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *service) AddSale(ctx context.Context, input SaleInput) (models.Sale, error) {
	input = input.normalized()
	if err := validation.Struct(input); err != nil {
		return models.Sale{}, err
	}
	if input.Amount == nil {
		return models.Sale{}, validation.Field("amount", "is required")
	}
	amount := *input.Amount
	if amount.IsNegative() {
		return models.Sale{}, validation.Field("amount", "must be greater than or equal to 0")
	}

	var created models.Sale
	err := s.mutate(ctx, KindAddSale, func(state *models.Tables) error {
		sellerID := input.SalespersonID
		if sellerID == "" {
			if len(state.Salespeople) == 0 {
				return validation.Field("salespersonId", "is required")
			}
			sellerID = state.Salespeople[0].ID
		}
		if person, ok := state.FindSalesperson(sellerID); ok && !aggregation.CanSellAt(person, input.StoreID) {
			return validation.Field("storeId", "is not one of the salesperson's stores")
		}

		date := input.Date
		if date.IsZero() {
			date = s.Today()
		}
		created = models.Sale{
			ID:            newID(),
			SalespersonID: sellerID,
			StoreID:       input.StoreID,
			Amount:        amount,
			Date:          date,
			Product:       input.Product,
			Customer:      input.Customer,
		}
		state.Sales = append(state.Sales, created)
		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}
	return created, nil
}

func (s *service) SaveStore(ctx context.Context, input StoreInput) (models.Store, error) {
	input = input.normalized()
	if err := validation.Struct(input); err != nil {
		return models.Store{}, err
	}

	var saved models.Store
	err := s.mutate(ctx, KindSaveStore, func(state *models.Tables) error {
		saved = models.Store{
			ID:        input.ID,
			Name:      input.Name,
			Location:  input.Location,
			ManagerID: input.ManagerID,
		}
		for i := range state.Stores {
			if state.Stores[i].ID == saved.ID && saved.ID != "" {
				state.Stores[i] = saved
				return nil
			}
		}
		if saved.ID == "" {
			saved.ID = newID()
		}
		state.Stores = append(state.Stores, saved)
		return nil
	})
	if err != nil {
		return models.Store{}, err
	}
	return saved, nil
}

func (s *service) SaveSalesperson(ctx context.Context, input SalespersonInput) (models.Salesperson, error) {
	input = input.normalized()
	if input.Role == "" {
		input.Role = enums.StaffRolePromotor
	}
	if err := validation.Struct(input); err != nil {
		return models.Salesperson{}, err
	}

	var saved models.Salesperson
	err := s.mutate(ctx, KindSaveSalesperson, func(state *models.Tables) error {
		saved = models.Salesperson{
			ID:           input.ID,
			Name:         input.Name,
			Role:         input.Role,
			Avatar:       input.Avatar,
			Target:       input.Target,
			StoreIDs:     input.StoreIDs,
			ManagerID:    input.ManagerID,
			SupervisorID: input.SupervisorID,
		}
		if saved.ID != "" {
			for i := range state.Salespeople {
				if state.Salespeople[i].ID != saved.ID {
					continue
				}
				if saved.Avatar == "" {
					saved.Avatar = state.Salespeople[i].Avatar
				}
				state.Salespeople[i] = saved
				return nil
			}
		}
		if saved.ID == "" {
			saved.ID = newID()
		}
		if saved.Avatar == "" {
			saved.Avatar = seed.AvatarURL(newID())
		}
		state.Salespeople = append(state.Salespeople, saved)
		return nil
	})
	if err != nil {
		return models.Salesperson{}, err
	}
	return saved, nil
}

// Reset replaces every table with the seed dataset. Unlike the other
// mutations it reports a failed write, since its only purpose is the write.
func (s *service) Reset(ctx context.Context) error {
	var persistErr error
	err := s.apply(ctx, KindReset, func(state *models.Tables) error {
		*state = seed.Tables()
		return nil
	}, func(err error) { persistErr = err })
	if err != nil {
		return err
	}
	if persistErr != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, persistErr, "persist seed data")
	}
	return nil
}

func (s *service) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

func (s *service) mutate(ctx context.Context, kind string, fn func(*models.Tables) error) error {
	return s.apply(ctx, kind, fn, nil)
}

// apply runs fn on a working copy and installs it when fn succeeds. A
// failed write is logged and counted; the new state stands either way.
func (s *service) apply(ctx context.Context, kind string, fn func(*models.Tables) error, onPersistErr func(error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	working := s.Snapshot()
	if err := fn(&working); err != nil {
		return err
	}
	working = working.Clone()

	s.stateMu.Lock()
	s.state = working
	s.stateMu.Unlock()
	s.metrics.IncMutation(kind)

	ctx = s.logg.WithField(ctx, "mutation", kind)
	if err := s.repo.Save(ctx, working); err != nil {
		s.metrics.IncPersistFailure(kind)
		s.logg.Error(ctx, "failed to persist tables", err)
		if onPersistErr != nil {
			onPersistErr(err)
		}
	}

	s.notify(working)
	return nil
}

func (s *service) notify(snapshot models.Tables) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}
