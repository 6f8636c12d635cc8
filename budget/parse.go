// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Client-facing validation messages
const (
	MsgIncomeRequired   = "Monthly income is required."
	MsgIncomeInvalid    = "Income must be a valid positive number."
	MsgExpensesRequired = "At least one expense category is required."
)

// ValidationError is returned for input the client has to fix
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err carries a client-facing message
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type Expense struct {
	Category string
	Amount   float64
}

type Budget struct {
	Income   float64
	Expenses []Expense
}

func (b Budget) TotalExpenses() float64 {
	var total float64
	for _, e := range b.Expenses {
		total += e.Amount
	}
	return total
}

func (b Budget) Remaining() float64 {
	return b.Income - b.TotalExpenses()
}

// Parse validates the raw income and expenses fields of an analyze request.
// Expense categories keep the order in which they appear in the body.
func Parse(income, expenses json.RawMessage) (Budget, error) {
	var b Budget

	inc, err := parseIncome(income)
	if err != nil {
		return Budget{}, err
	}
	b.Income = inc

	fields, ok := orderedObject(expenses)
	if !ok || len(fields) == 0 {
		return Budget{}, invalid(MsgExpensesRequired)
	}

	index := make(map[string]int, len(fields))
	for _, f := range fields {
		amount, err := parseAmount(f.value)
		if err != nil {
			return Budget{}, invalid(fmt.Sprintf("Invalid amount for '%s'.", f.key))
		}
		// Repeated key: first position, last value
		if i, seen := index[f.key]; seen {
			b.Expenses[i].Amount = amount
			continue
		}
		index[f.key] = len(b.Expenses)
		b.Expenses = append(b.Expenses, Expense{Category: f.key, Amount: amount})
	}

	return b, nil
}

func parseIncome(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, invalid(MsgIncomeRequired)
	}

	var s string
	if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) == "" {
		return 0, invalid(MsgIncomeRequired)
	}

	v, ok := toNumber(raw)
	if !ok || v < 0 {
		return 0, invalid(MsgIncomeInvalid)
	}
	return v, nil
}

var errBadAmount = errors.New("bad amount")

func parseAmount(raw json.RawMessage) (float64, error) {
	if isFalsy(raw) {
		return 0, nil
	}
	v, ok := toNumber(raw)
	if !ok || v < 0 {
		return 0, errBadAmount
	}
	return v, nil
}

// toNumber accepts a JSON number or a string holding a decimal number.
// Booleans, containers, NaN and infinities are rejected.
func toNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
		// strconv.ParseFloat would accept hex floats such as "0x1p4"
		if strings.ContainsAny(text, "xX") {
			return 0, false
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return 0, false
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// isFalsy matches values that count as "no amount entered"
func isFalsy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", `""`, "[]", "{}":
		return true
	}
	if c := trimmed[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	return err == nil && v == 0
}

type field struct {
	key   string
	value json.RawMessage
}

// orderedObject splits a JSON object into its members in document order.
// ok is false when raw is not an object.
func orderedObject(raw json.RawMessage) (fields []field, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, isString := tok.(string)
		if !isString {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields, true
}
