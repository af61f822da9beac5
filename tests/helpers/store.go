// Package helpers holds shared test fixtures.
package helpers

import (
	"testing"

	store "github.com/jkcg-learning/debate/internal/repository"
)

// NewTestSQLiteStore opens an in-memory usage ledger closed on test cleanup.
func NewTestSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
