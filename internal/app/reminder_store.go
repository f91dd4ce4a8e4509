// Package app contains the application services: the reminder store and
// the client-side filtering applied over its collection.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/ports/secondary"
)

// ReminderStoreImpl implements primary.ReminderStore. It is the single
// in-memory source of truth for the UI with read-after-write consistency:
// every mutation writes through the repository and then reloads the full
// collection before returning, so state never drifts from storage.
//
// opMu serializes loads and mutations, so overlapping operations cannot
// race and "last reload wins" is not observable. stateMu guards the cached
// snapshot separately so readers can observe the loading flag while a load
// is in flight.
type ReminderStoreImpl struct {
	repo secondary.ReminderRepository

	opMu sync.Mutex

	stateMu   sync.RWMutex
	reminders []*models.Reminder
	isLoading bool
}

// NewReminderStore creates a store backed by the given repository. The
// collection is empty until the first Load.
func NewReminderStore(repo secondary.ReminderRepository) *ReminderStoreImpl {
	return &ReminderStoreImpl{repo: repo}
}

// Load replaces the cached collection with a fresh read from storage.
func (s *ReminderStoreImpl) Load(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.reload(ctx)
}

// Add validates and inserts a draft, then reloads. Returns the new id.
func (s *ReminderStoreImpl) Add(ctx context.Context, draft models.ReminderDraft) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, fmt.Errorf("invalid reminder: %w", err)
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	created, err := s.repo.Insert(ctx, draft)
	if err != nil {
		return 0, fmt.Errorf("failed to add reminder: %w", err)
	}
	if err := s.reload(ctx); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// Complete marks the reminder completed, then reloads.
func (s *ReminderStoreImpl) Complete(ctx context.Context, id int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.repo.MarkComplete(ctx, id); err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	return s.reload(ctx)
}

// Remove deletes the reminder, then reloads.
func (s *ReminderStoreImpl) Remove(ctx context.Context, id int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to remove reminder: %w", err)
	}
	return s.reload(ctx)
}

// Reminders returns a copy of the cached collection.
func (s *ReminderStoreImpl) Reminders() []*models.Reminder {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	reminders := make([]*models.Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	return reminders
}

// IsLoading reports whether a load is in flight.
func (s *ReminderStoreImpl) IsLoading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.isLoading
}

// Snapshot returns the collection and loading flag together.
func (s *ReminderStoreImpl) Snapshot() primary.Snapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	reminders := make([]*models.Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	return primary.Snapshot{Reminders: reminders, IsLoading: s.isLoading}
}

// reload fetches the full collection and replaces the cached state. On
// failure the previous collection is kept. Must be called with opMu held.
func (s *ReminderStoreImpl) reload(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	reminders, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	s.stateMu.Lock()
	s.reminders = reminders
	s.stateMu.Unlock()
	return nil
}

func (s *ReminderStoreImpl) setLoading(v bool) {
	s.stateMu.Lock()
	s.isLoading = v
	s.stateMu.Unlock()
}

// Ensure ReminderStoreImpl implements the interface
var _ primary.ReminderStore = (*ReminderStoreImpl)(nil)
