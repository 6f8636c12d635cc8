// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package budget validates analyze requests and renders the advice prompt.

# Validation

Parse takes the raw "income" and "expenses" members of the request body:

	b, err := budget.Parse(req.Income, req.Expenses)
	if budget.IsValidationError(err) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Income must be a non-negative number or numeric string. Expenses must be a
non-empty object of category → amount. Empty amounts (null, "", 0, false,
[], {}) count as zero. Errors carry the exact message shown to the user:

	Monthly income is required.
	Income must be a valid positive number.
	At least one expense category is required.
	Invalid amount for '<category>'.

Categories stay in request order so the prompt lists them the way the user
entered them.

# Prompt

	prompt, err := budget.BuildPrompt(b)

The prompt states income, total expenses and remaining balance in rupees,
lists every category, and asks for five markdown sections. SystemPrompt is
the matching system message.
*/
package budget
