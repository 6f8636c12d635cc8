// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/Shreyashh2909/Pocket-Smart-AI/cliparse"
	"github.com/Shreyashh2909/Pocket-Smart-AI/web"
)

// AppTitle is shown on the landing page
const AppTitle = "PocketSmart AI"

type PageHandler struct {
	cfg cliparse.Config
}

func NewPageHandler(cfg cliparse.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := web.RenderIndex(&buf, web.Page{
		Title:   AppTitle,
		Model:   h.cfg.Model,
		History: h.cfg.HistoryEnabled(),
	})
	if err != nil {
		slog.Error("failed to render index", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
