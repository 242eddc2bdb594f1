package controllers

import (
	"net/http"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// Dashboard returns the landing summary over every sale.
func Dashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		snapshot := svc.Snapshot()
		view := aggregation.Dashboard(snapshot.Sales, snapshot.Salespeople)
		responses.WriteSuccess(w, dashboardResponse{
			DashboardView: view,
			RecentSales:   saleViews(view.RecentSales, snapshot),
		})
	}
}

// Ranking returns the leaderboard.
func Ranking(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		snapshot := svc.Snapshot()
		responses.WriteSuccess(w, aggregation.Ranking(snapshot.Sales, snapshot.Salespeople))
	}
}

// Teams returns every supervisor with the salespeople reporting to them.
func Teams(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}
		snapshot := svc.Snapshot()
		responses.WriteSuccess(w, aggregation.SupervisorTeams(snapshot.Sales, snapshot.Salespeople))
	}
}
