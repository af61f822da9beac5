// Package store persists LLM call metering for debate runs.
package store

import (
	"context"

	"github.com/jkcg-learning/debate/internal/domain"
)

// Store defines the interface for the usage ledger.
type Store interface {
	// RecordCall stores one metered language agent call.
	RecordCall(ctx context.Context, call domain.LLMCall) error
	// ListCalls returns the calls of a run in call order, optionally
	// filtered by stage. A limit of zero means no limit.
	ListCalls(ctx context.Context, runID string, stages []domain.Stage, limit int) ([]domain.LLMCall, error)
	// Close releases the underlying database.
	Close() error
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
