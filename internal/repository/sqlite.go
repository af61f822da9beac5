package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jkcg-learning/debate/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS llm_calls (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			call_id TEXT NOT NULL UNIQUE,
			run_id TEXT NOT NULL,
			stage TEXT NOT NULL,
			role TEXT NOT NULL,
			model TEXT NOT NULL,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			prompt_tokens INTEGER NOT NULL DEFAULT 0,
			completion_tokens INTEGER NOT NULL DEFAULT 0,
			total_tokens INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_llm_calls_run ON llm_calls(run_id, seq)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordCall inserts a metered call.
func (s *SQLiteStore) RecordCall(ctx context.Context, call domain.LLMCall) error {
	if call.CallID == "" || call.RunID == "" {
		return fmt.Errorf("call_id and run_id are required")
	}
	createdAt := call.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var errText sql.NullString
	if call.Error != "" {
		errText = sql.NullString{String: call.Error, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_calls (call_id, run_id, stage, role, model, latency_ms, prompt_tokens, completion_tokens, total_tokens, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		call.CallID, call.RunID, string(call.Stage), call.Role, call.Model, call.LatencyMs,
		call.PromptTokens, call.CompletionTokens, call.TotalTokens, errText, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert llm call: %w", err)
	}
	return nil
}

// ListCalls retrieves the calls of a run.
func (s *SQLiteStore) ListCalls(ctx context.Context, runID string, stages []domain.Stage, limit int) ([]domain.LLMCall, error) {
	query := `SELECT call_id, run_id, stage, role, model, latency_ms, prompt_tokens, completion_tokens, total_tokens, error, created_at
		FROM llm_calls WHERE run_id = ?`
	args := []interface{}{runID}

	if len(stages) > 0 {
		placeholders := make([]string, len(stages))
		for i, st := range stages {
			placeholders[i] = "?"
			args = append(args, string(st))
		}
		query += fmt.Sprintf(" AND stage IN (%s)", strings.Join(placeholders, ","))
	}

	query += ` ORDER BY seq ASC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []domain.LLMCall
	for rows.Next() {
		var call domain.LLMCall
		var stage string
		var errText sql.NullString
		if err := rows.Scan(&call.CallID, &call.RunID, &stage, &call.Role, &call.Model, &call.LatencyMs,
			&call.PromptTokens, &call.CompletionTokens, &call.TotalTokens, &errText, &call.CreatedAt); err != nil {
			return nil, err
		}
		call.Stage = domain.Stage(stage)
		if errText.Valid {
			call.Error = errText.String
		}
		calls = append(calls, call)
	}
	return calls, rows.Err()
}
