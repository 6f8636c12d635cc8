// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Shreyashh2909/Pocket-Smart-AI/db"
	"github.com/Shreyashh2909/Pocket-Smart-AI/middleware"
	"github.com/Shreyashh2909/Pocket-Smart-AI/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	store *db.Store
}

func NewHistoryHandler(store *db.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// ListAnalyses handles GET /analyses?limit=N
func (h *HistoryHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxHistoryLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	analyses, err := h.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list analyses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListAnalysesResponse{
		Analyses: analyses,
		Count:    len(analyses),
	})
}

// GetAnalysis handles GET /analyses/{id}
func (h *HistoryHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	a, err := h.store.GetAnalysis(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		slog.Error("failed to get analysis", "analysis_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, a)
}
