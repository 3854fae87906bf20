package storage

import (
	"testing"
)

// newTestStore creates an in-memory SQLite store with migrations applied.
// It registers a cleanup function to close the database when the test
// completes.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return NewStore(db)
}
