// Package primary defines the primary ports: the contracts the application
// exposes to its presentation layer.
package primary

import (
	"context"

	"github.com/example/remind/internal/models"
)

// ReminderStore is the single in-memory source of truth for the UI. Every
// mutation goes through the store and completes only after the collection
// has been reloaded from storage, so a caller observing state after a
// mutation resolves is guaranteed to see that mutation's effect.
type ReminderStore interface {
	// Load replaces the cached collection with a fresh read from storage.
	Load(ctx context.Context) error

	// Add validates and inserts a draft, reloads, and returns the new id.
	Add(ctx context.Context, draft models.ReminderDraft) (int64, error)

	// Complete marks the reminder completed, then reloads.
	Complete(ctx context.Context, id int64) error

	// Remove deletes the reminder, then reloads.
	Remove(ctx context.Context, id int64) error

	// Reminders returns the cached collection, ordered by scheduled time.
	Reminders() []*models.Reminder

	// IsLoading reports whether a load is in flight.
	IsLoading() bool

	// Snapshot returns the collection and the loading flag together.
	Snapshot() Snapshot
}

// Snapshot is the state exposed to the UI.
type Snapshot struct {
	Reminders []*models.Reminder
	IsLoading bool
}
