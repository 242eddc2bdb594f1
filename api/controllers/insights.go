package controllers

import (
	"net/http"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/api/validators"
	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	"github.com/angelmondragon/salesboard/internal/insights"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// GenerateInsight asks the completion service for an analysis of the sales
// selected by the optional filter query. A request made while another one
// is running gets 409.
func GenerateInsight(svc dashboard.Service, requester insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || requester == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight service unavailable"))
			return
		}
		if requester.Busy() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "an insight request is already in progress"))
			return
		}
		spec, err := validators.ParseFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot := svc.Snapshot()
		insight, err := requester.Generate(r.Context(), aggregation.Filter(snapshot.Sales, spec, svc.Now()), snapshot.Salespeople)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, insight)
	}
}
