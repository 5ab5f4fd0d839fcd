package api

import (
	"cost-intelligence-service/internal/api/handlers"
	"cost-intelligence-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(reporter ports.CostReporter, charts ports.ChartRenderer) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestIDMiddleware,
		loggingMiddleware,
		middleware.Recoverer,
	)

	reportHandler := &handlers.ReportHandler{Reporter: reporter}
	chartHandler := &handlers.ChartHandler{Reporter: reporter, Renderer: charts}
	dashboard := &handlers.DashboardHandler{Reporter: reporter, Charts: charts}

	r.Get("/health", handlers.Health)
	r.Get("/", dashboard.Show)
	r.Get("/charts/{name}.png", chartHandler.PNG)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/filters", reportHandler.Filters)
		r.Get("/report", reportHandler.Report)
		r.Get("/leakage", reportHandler.Leakage)
		r.Get("/export", reportHandler.Export)
	})

	return r
}
