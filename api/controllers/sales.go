package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/api/validators"
	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	"github.com/angelmondragon/salesboard/internal/export"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// ListSales returns the filtered sales, newest first, with their totals.
func ListSales(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		spec, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot := svc.Snapshot()
		filtered := aggregation.Filter(snapshot.Sales, spec, svc.Now())
		responses.WriteSuccess(w, salesListResponse{
			Filter:        newFilterView(spec),
			Sales:         saleViews(aggregation.Newest(filtered), snapshot),
			TotalRevenue:  aggregation.TotalRevenue(filtered),
			AverageTicket: aggregation.AverageTicket(filtered),
			Count:         len(filtered),
		})
	}
}

// CreateSale records a new sale.
func CreateSale(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		var input dashboard.SaleInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithSalespersonID(logg.WithStoreID(r.Context(), input.StoreID), input.SalespersonID)
		sale, err := svc.AddSale(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, saleViews([]models.Sale{sale}, svc.Snapshot())[0])
	}
}

// ExportSales renders the filtered sales, their ranking and store rollup as
// an xlsx download.
func ExportSales(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		spec, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot := svc.Snapshot()
		var buf bytes.Buffer
		if err := export.Write(&buf, export.Input{
			Sales:       aggregation.Filter(snapshot.Sales, spec, svc.Now()),
			Salespeople: snapshot.Salespeople,
			Stores:      snapshot.Stores,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "export failed"))
			return
		}

		filename := fmt.Sprintf("vendas-%s-%s.xlsx", spec.Mode, svc.Today())
		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil && logg != nil {
			logg.Error(r.Context(), "failed to write export", err)
		}
	}
}
