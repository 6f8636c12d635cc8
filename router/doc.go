// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the PocketSmart AI API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(adv, store, cfg, m)

store and m may be nil.

# Endpoints

	GET  /         - Landing page
	GET  /health   - Liveness
	POST /analyze  - Budget advice
	GET  /metrics  - Prometheus metrics (when m is set)

History (only when store is set):

	GET /analyses      - Recent analyses
	GET /analyses/{id} - One analysis

Every route except /health and /metrics is wrapped in request logging and
per-route metrics.
*/
package router
