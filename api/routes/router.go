package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/salesboard/api/controllers"
	"github.com/angelmondragon/salesboard/api/middleware"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	"github.com/angelmondragon/salesboard/internal/insights"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	dashboardService dashboard.Service,
	insightService insights.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dashboardService))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	insightLimit := middleware.RateLimitByIP(cfg.Insights.RateLimit, cfg.Insights.RateWindow, logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", controllers.Dashboard(dashboardService, logg))
		r.Get("/ranking", controllers.Ranking(dashboardService, logg))
		r.Get("/teams", controllers.Teams(dashboardService, logg))

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(dashboardService, logg))
			r.Post("/", controllers.CreateSale(dashboardService, logg))
			r.Get("/export", controllers.ExportSales(dashboardService, logg))
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.StoreRollup(dashboardService, logg))
			r.Get("/series", controllers.StoreSeries(dashboardService, logg))
			r.Get("/{storeId}", controllers.StoreDetail(dashboardService, logg))
		})

		r.Route("/salespeople/{salespersonId}", func(r chi.Router) {
			r.Get("/performance", controllers.SalespersonPerformance(dashboardService, logg))
			r.Get("/stores", controllers.SalespersonStores(dashboardService, logg))
		})

		r.With(insightLimit).Post("/insights", controllers.GenerateInsight(dashboardService, insightService, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stores", controllers.AdminListStores(dashboardService, logg))
			r.Put("/stores", controllers.AdminSaveStore(dashboardService, logg))
			r.Get("/salespeople", controllers.AdminListSalespeople(dashboardService, logg))
			r.Put("/salespeople", controllers.AdminSaveSalesperson(dashboardService, logg))
		})
	})

	return r
}
