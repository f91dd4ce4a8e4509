package db

import (
	"database/sql"
	"fmt"
)

// Migration is a single versioned schema change. Up runs inside the same
// transaction that records the version, so a migration is applied and
// recorded atomically or not at all.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_reminders_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "index_reminders_on_scheduledAt",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations against database. It is
// idempotent: applied versions are recorded in schema_version and skipped
// on subsequent runs. A failure here is startup-fatal for the application.
func RunMigrations(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			notes TEXT,
			category TEXT NOT NULL DEFAULT 'Other',
			priority TEXT NOT NULL DEFAULT 'medium',
			motivationStyle TEXT,
			scheduledAt TEXT NOT NULL,
			timezone TEXT NOT NULL DEFAULT 'UTC',
			repeatPattern TEXT NOT NULL DEFAULT 'none',
			nagEnabled INTEGER NOT NULL DEFAULT 0,
			completedAt TEXT,
			notificationId TEXT,
			nagNotificationIds TEXT,
			confidence REAL,
			createdAt TEXT NOT NULL,
			updatedAt TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create reminders table: %w", err)
	}
	return nil
}

func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_reminders_scheduledAt ON reminders(scheduledAt)")
	if err != nil {
		return fmt.Errorf("failed to create scheduledAt index: %w", err)
	}
	return nil
}
