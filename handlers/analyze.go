// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Shreyashh2909/Pocket-Smart-AI/advisor"
	"github.com/Shreyashh2909/Pocket-Smart-AI/budget"
	"github.com/Shreyashh2909/Pocket-Smart-AI/cliparse"
	"github.com/Shreyashh2909/Pocket-Smart-AI/db"
	"github.com/Shreyashh2909/Pocket-Smart-AI/metrics"
	"github.com/Shreyashh2909/Pocket-Smart-AI/middleware"
	"github.com/Shreyashh2909/Pocket-Smart-AI/models"
)

// Client-facing error messages
const (
	MsgInvalidJSON  = "Invalid JSON body."
	MsgRateLimited  = "Groq API rate limit reached. Please wait 30-60 seconds and try again."
	MsgInvalidKey   = "Invalid API key. Please check your GROQ_API_KEY in the .env file."
	MsgAdviceFailed = "Something went wrong while generating advice. Please try again."
)

// Advisor produces advice text for a prompt; *advisor.Client implements it
type Advisor interface {
	Advise(ctx context.Context, system, prompt string) (string, error)
}

type AnalyzeHandler struct {
	advisor Advisor
	store   *db.Store
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

// NewAnalyzeHandler wires the analyze endpoint. store and m may be nil.
func NewAnalyzeHandler(adv Advisor, store *db.Store, cfg cliparse.Config, m *metrics.Metrics) *AnalyzeHandler {
	return &AnalyzeHandler{advisor: adv, store: store, cfg: cfg, metrics: m}
}

// Analyze handles POST /analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestID(r.Context())

	// Only a JSON object is a valid request; null, arrays and scalars are not
	var raw json.RawMessage
	var req models.AnalyzeRequest
	if err := middleware.ParseJSONBody(r, &raw); err != nil || !isObject(raw) || json.Unmarshal(raw, &req) != nil {
		h.metrics.IncAnalysis("invalid")
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	// Validate input
	b, err := budget.Parse(req.Income, req.Expenses)
	if err != nil {
		h.metrics.IncAnalysis("invalid")
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.metrics.IncAnalysis("ok")

	prompt, err := budget.BuildPrompt(b)
	if err != nil {
		slog.Error("Analysis error", "request_id", reqID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, MsgAdviceFailed)
		return
	}

	ctx := r.Context()
	if h.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.RequestTimeout)
		defer cancel()
	}

	advice, err := h.advisor.Advise(ctx, budget.SystemPrompt, prompt)
	if err != nil {
		h.adviceError(w, reqID, err)
		return
	}

	slog.Info("advice generated",
		"request_id", reqID,
		"categories", len(b.Expenses),
		"advice_chars", len(advice),
	)

	if h.store != nil {
		h.record(r.Context(), reqID, b, advice)
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnalyzeResponse{Advice: advice})
}

func (h *AnalyzeHandler) adviceError(w http.ResponseWriter, reqID string, err error) {
	slog.Error("Analysis error", "request_id", reqID, "error", err)

	switch advisor.Classify(err) {
	case advisor.KindRateLimited:
		middleware.ErrorResponse(w, http.StatusTooManyRequests, MsgRateLimited)
	case advisor.KindUnauthorized:
		middleware.ErrorResponse(w, http.StatusUnauthorized, MsgInvalidKey)
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, MsgAdviceFailed)
	}
}

// record saves the analysis; failures are logged, the advice is still returned
func (h *AnalyzeHandler) record(ctx context.Context, reqID string, b budget.Budget, advice string) {
	items := make([]models.ExpenseItem, 0, len(b.Expenses))
	for _, e := range b.Expenses {
		items = append(items, models.ExpenseItem{Category: e.Category, Amount: e.Amount})
	}

	stored, err := h.store.InsertAnalysis(ctx, models.Analysis{
		Income:        b.Income,
		TotalExpenses: b.TotalExpenses(),
		Remaining:     b.Remaining(),
		Expenses:      items,
		Model:         h.cfg.Model,
		Advice:        advice,
	})
	if err != nil {
		slog.Error("failed to record analysis", "request_id", reqID, "error", err)
		return
	}
	slog.Info("analysis recorded", "request_id", reqID, "analysis_id", stored.ID)
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
