// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which it drives storage.
package secondary

import (
	"context"
	"errors"

	"github.com/example/remind/internal/models"
)

// ErrNotFound is returned by mutating repository operations that target an
// id with no matching row. Callers can react (for example, refresh the list
// after a concurrent deletion) instead of silently succeeding.
var ErrNotFound = errors.New("reminder not found")

// ReminderRepository defines the secondary port for reminder persistence.
// It is the only component permitted to construct SQL.
type ReminderRepository interface {
	// ListAll retrieves every reminder ordered by scheduled time ascending.
	ListAll(ctx context.Context) ([]*models.Reminder, error)

	// GetByID retrieves a reminder by id. A missing id is an absent value,
	// not an error: (nil, nil).
	GetByID(ctx context.Context, id int64) (*models.Reminder, error)

	// Insert persists a draft, applying storage defaults for absent fields
	// and setting createdAt = updatedAt = now. Returns the created record
	// with its storage-assigned id.
	Insert(ctx context.Context, draft models.ReminderDraft) (*models.Reminder, error)

	// Update applies the provided field slots and always refreshes
	// updatedAt. Returns ErrNotFound when no row matches id.
	Update(ctx context.Context, id int64, update models.ReminderUpdate) error

	// MarkComplete sets completedAt to now. Returns ErrNotFound when no
	// row matches id.
	MarkComplete(ctx context.Context, id int64) error

	// Delete physically removes the reminder. Returns ErrNotFound when no
	// row matches id.
	Delete(ctx context.Context, id int64) error
}
