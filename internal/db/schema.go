package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth for the database layout: every repository test builds its
// in-memory database from GetSchemaSQL(), so a repository referencing a
// column that does not exist here fails immediately with "no such column".
//
// Keep this in sync with the migration list in migrations.go. Column names
// are camelCase and timestamps are ISO-8601 text: that layout is the
// persisted contract and is shared with the mobile client's database.
const SchemaSQL = `
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
);

CREATE INDEX IF NOT EXISTS idx_reminders_scheduledAt ON reminders(scheduledAt);
`

// GetSchemaSQL returns the authoritative schema for tests and fresh installs.
func GetSchemaSQL() string {
	return SchemaSQL
}
