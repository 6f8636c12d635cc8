// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Shreyashh2909/Pocket-Smart-AI/cliparse"
	"github.com/Shreyashh2909/Pocket-Smart-AI/db"
	"github.com/Shreyashh2909/Pocket-Smart-AI/handlers"
	"github.com/Shreyashh2909/Pocket-Smart-AI/metrics"
	"github.com/Shreyashh2909/Pocket-Smart-AI/middleware"
)

// NewRouter registers all routes. store and m may be nil; the history
// routes are only mounted when a store is given.
func NewRouter(adv handlers.Advisor, store *db.Store, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(adv, store, cfg, m)
	pageHandler := handlers.NewPageHandler(cfg)

	route := func(pattern, name string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, name, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Landing page
	route("GET /{$}", "/", pageHandler.Index)

	// Budget analysis
	route("POST /analyze", "/analyze", analyzeHandler.Analyze)

	// Analysis history (optional)
	if store != nil {
		historyHandler := handlers.NewHistoryHandler(store)
		route("GET /analyses", "/analyses", historyHandler.ListAnalyses)
		route("GET /analyses/{id}", "/analyses/{id}", historyHandler.GetAnalysis)
	}

	// Prometheus
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	return mux
}
