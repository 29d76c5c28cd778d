package api

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/web"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/config"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/service"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

// Dependencies are the services and session components the router serves.
type Dependencies struct {
	SystemService *service.SystemService
	FundService   *service.FundService
	Codec         *session.Codec
	Sessions      *session.Registry
	Templates     *template.Template
}

// NewRouter creates and configures the HTTP router
func NewRouter(deps Dependencies, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	systemHandler := handlers.NewSystemHandler(deps.SystemService, deps.Sessions)
	fundHandler := handlers.NewFundHandler(deps.FundService, cfg.Dashboard.ChartContainerWidth)
	themeHandler := handlers.NewThemeHandler()
	dashboardHandler := handlers.NewDashboardHandler(deps.Templates)
	withSession := custommiddleware.Session(deps.Codec, deps.Sessions)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// Dashboard page
	r.Group(func(r chi.Router) {
		r.Use(custommiddleware.ClientHints)
		r.Use(withSession)

		r.Get("/", dashboardHandler.Page)
		r.Post("/theme/toggle", dashboardHandler.ToggleTheme)
		r.With(custommiddleware.ValidateFundIDMiddleware).Get("/funds/{fundId}", dashboardHandler.ActivateFund)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// CORS middleware
		corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
		r.Use(corsMiddleware.Handler)

		// System namespace
		r.Route("/system", func(r chi.Router) {
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Group(func(r chi.Router) {
			r.Use(withSession)

			r.Route("/fund", func(r chi.Router) {
				r.Get("/", fundHandler.GetAllFunds)
				r.Get("/comparison", fundHandler.GetComparison)

				r.Route("/{fundId}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateFundIDMiddleware)
					r.Get("/", fundHandler.GetFund)
					r.Get("/chart", fundHandler.GetFundChart)
					r.Get("/chart.png", fundHandler.GetFundChartPNG)
				})
			})

			r.Route("/theme", func(r chi.Router) {
				r.Get("/", themeHandler.GetTheme)
				r.Post("/toggle", themeHandler.ToggleTheme)
			})
		})
	})

	return r
}
