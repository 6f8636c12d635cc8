// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PocketSmart AI API.

# Handler Types

  - AnalyzeHandler: Budget validation and advice generation
  - HistoryHandler: Past analyses (only when a database is configured)
  - PageHandler: Landing page

Handlers are created via constructor functions:

	analyzeHandler := handlers.NewAnalyzeHandler(adv, store, cfg, m)

The advisor is any type with an Advise method, which keeps the handlers
testable without a network.

# Analyze

	POST /analyze {"income": 50000, "expenses": {"rent": 15000}}

Returns {"advice": "..."} on success. Errors are {"error": "..."} with
400 for bad input, 401 for a rejected API key, 429 once rate limit retries
are exhausted and 500 for anything else.

# History

	GET /analyses?limit=20 → ListAnalyses (newest first, max 100)
	GET /analyses/{id}     → GetAnalysis
*/
package handlers
