// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Shreyashh2909/Pocket-Smart-AI/models"
)

// Supported DATABASE_TYPE values and their database/sql driver names
var drivers = map[string]string{
	"sqlite":   "sqlite",
	"postgres": "postgres",
}

var ErrNotFound = errors.New("analysis not found")

type Store struct {
	db *sql.DB
}

// Open connects to the history database, verifies the connection and
// creates the schema.
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	driver, ok := drivers[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if dbType == "sqlite" {
		// One writer avoids SQLITE_BUSY and keeps :memory: databases shared
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := CreateSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewStore(conn), nil
}

// NewStore wraps an existing connection whose schema is already in place
func NewStore(conn *sql.DB) *Store {
	return &Store{db: conn}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InsertAnalysis stores a, assigning ID and CreatedAt when unset.
// The stored record is returned.
func (s *Store) InsertAnalysis(ctx context.Context, a models.Analysis) (models.Analysis, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC().Truncate(time.Millisecond)
	if a.Expenses == nil {
		a.Expenses = []models.ExpenseItem{}
	}

	expenses, err := json.Marshal(a.Expenses)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to encode expenses: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analysis (id, income, total_expenses, remaining, expenses, model, advice, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.Income, a.TotalExpenses, a.Remaining, string(expenses), a.Model, a.Advice, a.CreatedAt.UnixMilli())
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to insert analysis: %w", err)
	}

	return a, nil
}

// ListAnalyses returns up to limit analyses, newest first
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, income, total_expenses, remaining, expenses, model, advice, created_at
		FROM analysis
		ORDER BY created_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []models.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}

	return analyses, nil
}

// GetAnalysis returns ErrNotFound for unknown ids
func (s *Store) GetAnalysis(ctx context.Context, id string) (models.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, income, total_expenses, remaining, expenses, model, advice, created_at
		FROM analysis
		WHERE id = $1
	`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Analysis{}, ErrNotFound
	}
	return a, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(sc scanner) (models.Analysis, error) {
	var (
		a         models.Analysis
		expenses  string
		createdAt int64
	)
	err := sc.Scan(&a.ID, &a.Income, &a.TotalExpenses, &a.Remaining, &expenses, &a.Model, &a.Advice, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Analysis{}, err
	}
	if err != nil {
		return models.Analysis{}, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(expenses), &a.Expenses); err != nil {
		return models.Analysis{}, fmt.Errorf("failed to decode expenses for %s: %w", a.ID, err)
	}
	a.CreatedAt = time.UnixMilli(createdAt).UTC()

	return a, nil
}
