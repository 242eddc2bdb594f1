package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// SalespersonPerformance returns one salesperson's summary, daily series and
// sales.
func SalespersonPerformance(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		id := strings.TrimSpace(chi.URLParam(r, "salespersonId"))
		ctx := logg.WithSalespersonID(r.Context(), id)
		snapshot := svc.Snapshot()
		person, ok := snapshot.FindSalesperson(id)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.Newf(pkgerrors.CodeNotFound, "salesperson %q not found", id))
			return
		}

		responses.WriteSuccess(w, performanceResponse{
			Salesperson: person,
			Summary:     aggregation.SellerStats(snapshot.Sales, person.ID),
			Series:      aggregation.SellerSeries(snapshot.Sales, person.ID),
			Sales:       saleViews(aggregation.Newest(aggregation.SalesBy(snapshot.Sales, person.ID)), snapshot),
		})
	}
}

// SalespersonStores lists the stores the salesperson may record a sale at.
func SalespersonStores(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		id := strings.TrimSpace(chi.URLParam(r, "salespersonId"))
		snapshot := svc.Snapshot()
		person, ok := snapshot.FindSalesperson(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Newf(pkgerrors.CodeNotFound, "salesperson %q not found", id))
			return
		}
		responses.WriteSuccess(w, aggregation.EligibleStores(&person, snapshot.Stores))
	}
}
