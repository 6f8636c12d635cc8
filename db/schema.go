// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between PostgreSQL and SQLite: no JSONB, no NOW(), times are
// stored as unix milliseconds.
const schema = `
-- Analyses
CREATE TABLE IF NOT EXISTS analysis (
    id TEXT PRIMARY KEY,
    income DOUBLE PRECISION NOT NULL CHECK (income >= 0),
    total_expenses DOUBLE PRECISION NOT NULL,
    remaining DOUBLE PRECISION NOT NULL,
    expenses TEXT NOT NULL,
    model TEXT NOT NULL,
    advice TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analysis_created_at ON analysis(created_at);
`
