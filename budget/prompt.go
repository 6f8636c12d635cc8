// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package budget

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/dustin/go-humanize"
)

// SystemPrompt is sent as the system message with every analysis
const SystemPrompt = "You are PocketSmart AI, an expert personal-finance advisor. Respond with well-structured markdown."

const promptTemplate = `You are PocketSmart AI — a friendly, expert personal-finance advisor.

A user has shared the following monthly financial data:

Monthly Income : {{rupees .Income}}
Total Expenses : {{rupees .Total}}
Remaining      : {{rupees .Remaining}}

Expense Breakdown:
{{- range .Expenses}}
  - {{label .Category}}: {{rupees .Amount}}
{{- end}}

Based on this data, provide a comprehensive yet easy-to-read budget analysis.
Structure your response with these sections using markdown headings (##):

## 📊 Budget Overview
Summarize income vs. expenses and the current financial health.

## 💡 Smart Saving Tips
Give 4-5 specific, actionable tips to reduce spending in the categories listed.

## 📈 Better Spending Strategies
Suggest how to reallocate money for better value (e.g., invest, emergency fund).

## 🎯 Recommended Monthly Budget
Provide an ideal budget split (table format) for someone with this income level.

## ⚠️ Warnings
Flag any concerning patterns (overspending, no savings, etc.).

Keep the tone encouraging and practical. Use bullet points and emojis for readability.
`

var prompt = template.Must(template.New("prompt").Funcs(template.FuncMap{
	"rupees": Rupees,
	"label":  CategoryLabel,
}).Parse(promptTemplate))

type promptData struct {
	Income    float64
	Total     float64
	Remaining float64
	Expenses  []Expense
}

// BuildPrompt renders the user message for a validated budget
func BuildPrompt(b Budget) (string, error) {
	var sb strings.Builder
	err := prompt.Execute(&sb, promptData{
		Income:    b.Income,
		Total:     b.TotalExpenses(),
		Remaining: b.Remaining(),
		Expenses:  b.Expenses,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}

// Rupees formats an amount as ₹ with comma grouping and two decimals
func Rupees(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "₹" + sign + fixed
	}
	return "₹" + sign + humanize.BigComma(n) + "." + frac
}

// CategoryLabel turns a category key like "eating_out" into "Eating Out".
// Each run of letters is capitalised on its first letter and lower-cased
// after it.
func CategoryLabel(category string) string {
	var sb strings.Builder
	sb.Grow(len(category))

	prevLetter := false
	for _, r := range strings.ReplaceAll(category, "_", " ") {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			sb.WriteRune(unicode.ToTitle(r))
		case isLetter:
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return sb.String()
}
