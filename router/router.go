// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pulse-compare/cliparse"
	"github.com/danielhkuo/pulse-compare/handlers"
	"github.com/danielhkuo/pulse-compare/middleware"
	"github.com/danielhkuo/pulse-compare/survey"
)

func NewRouter(store *survey.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(store, cfg)
	apiHandler := handlers.NewAPIHandler(store, cfg)
	chartHandler := handlers.NewChartHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(dashboardHandler.GetDashboard))

	// JSON API
	mux.HandleFunc("GET /api/candidates", middleware.WithLogging(apiHandler.GetCandidates))
	mux.HandleFunc("GET /api/overview", middleware.WithLogging(apiHandler.GetOverview))
	mux.HandleFunc("GET /api/comparison", middleware.WithLogging(apiHandler.GetComparison))
	mux.HandleFunc("GET /api/advantage", middleware.WithLogging(apiHandler.GetAdvantage))

	// Chart images
	mux.HandleFunc("GET /charts/{file}", middleware.WithLogging(chartHandler.GetChart))

	return mux
}
