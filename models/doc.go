// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AnalyzeRequest: income, expenses (both kept as raw JSON)

# Response Types

Types for JSON responses:

  - AnalyzeResponse: advice (markdown from the model)
  - ListAnalysesResponse: analyses, count
  - ErrorResponse: error

Every failure is reported as a single "error" string, which the landing page
shows verbatim.

# Domain Types

  - ExpenseItem: one category and its monthly amount
  - Analysis: a stored advice result, written only when history is enabled
*/
package models
