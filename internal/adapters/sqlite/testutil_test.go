// Package sqlite_test contains integration tests for the SQLite reminder
// repository.
//
// All test setup uses db.GetSchemaSQL() so tests always run against the
// authoritative schema; do not hardcode CREATE TABLE statements here. Time
// comes from a fake clock so timestamp assertions are exact.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/remind/internal/adapters/sqlite"
	"github.com/example/remind/internal/db"
	"github.com/example/remind/internal/models"
)

// testEpoch is the frozen instant the fake clock starts at.
var testEpoch = time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// One connection, or the pool would hand out separate in-memory DBs.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// newTestRepo creates a repository over a fresh in-memory database with a
// fake clock frozen at testEpoch.
func newTestRepo(t *testing.T) (*sqlite.ReminderRepository, *sql.DB, clock.FakeClock) {
	t.Helper()

	testDB := setupTestDB(t)
	clk := clock.NewFake()
	clk.Set(testEpoch)
	return sqlite.NewReminderRepository(testDB, clk), testDB, clk
}

// draft builds a minimal valid draft scheduled at the given instant.
func draft(title string, scheduledAt time.Time) models.ReminderDraft {
	return models.ReminderDraft{
		Title:       title,
		ScheduledAt: scheduledAt,
	}
}
