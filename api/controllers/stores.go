package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/api/validators"
	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// StoreRollup returns revenue per store, highest first.
func StoreRollup(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		snapshot := svc.Snapshot()
		responses.WriteSuccess(w, aggregation.StoreRollup(snapshot.Sales, snapshot.Stores))
	}
}

// StoreSeries returns per-store revenue bucketed by day or by ISO week.
func StoreSeries(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		bucket, err := validators.ParseBucket(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		snapshot := svc.Snapshot()
		responses.WriteSuccess(w, seriesResponse{
			Bucket: bucket.String(),
			Stores: snapshot.Stores,
			Points: aggregation.StoreSeries(snapshot.Sales, snapshot.Stores, bucket),
		})
	}
}

// StoreDetail returns the store, its rollup row and its sales newest first.
func StoreDetail(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		storeID := strings.TrimSpace(chi.URLParam(r, "storeId"))
		ctx := logg.WithStoreID(r.Context(), storeID)
		snapshot := svc.Snapshot()
		store, ok := snapshot.FindStore(storeID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.Newf(pkgerrors.CodeNotFound, "store %q not found", storeID))
			return
		}

		detail := storeDetailResponse{Store: store}
		for _, row := range aggregation.StoreRollup(snapshot.Sales, snapshot.Stores) {
			if row.StoreID == store.ID {
				detail.Stats = row
				break
			}
		}
		detail.Sales = saleViews(aggregation.StoreSales(snapshot.Sales, store.ID), snapshot)
		responses.WriteSuccess(w, detail)
	}
}
