package models

import (
	"encoding/json"
	"time"
)

// Request types

// AnalyzeRequest keeps both fields raw so the budget package can apply its
// own leniency rules (numeric strings, falsy amounts, key order).
type AnalyzeRequest struct {
	Income   json.RawMessage `json:"income"`
	Expenses json.RawMessage `json:"expenses"`
}

// Response types

type AnalyzeResponse struct {
	Advice string `json:"advice"`
}

type ListAnalysesResponse struct {
	Analyses []Analysis `json:"analyses"`
	Count    int        `json:"count"`
}

// Domain types

type ExpenseItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Analysis is a stored advice result (history is optional)
type Analysis struct {
	ID            string        `json:"id"`
	Income        float64       `json:"income"`
	TotalExpenses float64       `json:"total_expenses"`
	Remaining     float64       `json:"remaining"`
	Expenses      []ExpenseItem `json:"expenses"`
	Model         string        `json:"model"`
	Advice        string        `json:"advice"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
