// Package sqlite contains the SQLite implementation of the reminder
// repository interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmhodges/clock"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/ports/secondary"
)

// reminderColumns is the full column list in scan order.
const reminderColumns = "id, title, notes, category, priority, motivationStyle, scheduledAt, timezone, repeatPattern, nagEnabled, completedAt, notificationId, nagNotificationIds, confidence, createdAt, updatedAt"

// ReminderRepository implements secondary.ReminderRepository with SQLite.
// Timestamps come from the injected clock so tests can freeze time.
type ReminderRepository struct {
	db  *sql.DB
	clk clock.Clock
}

// NewReminderRepository creates a new SQLite reminder repository.
func NewReminderRepository(db *sql.DB, clk clock.Clock) *ReminderRepository {
	return &ReminderRepository{db: db, clk: clk}
}

// ListAll retrieves all reminders ordered by scheduled time ascending.
func (r *ReminderRepository) ListAll(ctx context.Context) ([]*models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders ORDER BY scheduledAt ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

// GetByID retrieves a reminder by id, or (nil, nil) when no row matches.
func (r *ReminderRepository) GetByID(ctx context.Context, id int64) (*models.Reminder, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reminderColumns+" FROM reminders WHERE id = ?", id,
	)

	reminder, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// Insert persists a draft with storage defaults applied and both audit
// timestamps set to now. The created record is read back so the caller sees
// exactly what storage holds.
func (r *ReminderRepository) Insert(ctx context.Context, draft models.ReminderDraft) (*models.Reminder, error) {
	category := draft.Category
	if category == "" {
		category = models.CategoryOther
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	repeat := draft.RepeatPattern
	if repeat == "" {
		repeat = models.RepeatNone
	}
	timezone := draft.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	nagIDs, err := encodeNagIDs(draft.NagNotificationIDs)
	if err != nil {
		return nil, err
	}

	now := formatTime(r.clk.Now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders
			(title, notes, category, priority, motivationStyle, scheduledAt, timezone,
			 repeatPattern, nagEnabled, completedAt, notificationId, nagNotificationIds,
			 confidence, createdAt, updatedAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draft.Title,
		nullString(draft.Notes),
		string(category),
		string(priority),
		nullMotivation(draft.MotivationStyle),
		formatTime(draft.ScheduledAt),
		timezone,
		string(repeat),
		boolToInt(draft.NagEnabled),
		nullTime(draft.CompletedAt),
		nullString(draft.NotificationID),
		nagIDs,
		nullFloat(draft.Confidence),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted reminder id: %w", err)
	}

	created, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created reminder: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("created reminder %d disappeared", id)
	}
	return created, nil
}

// Update applies the provided field slots. updatedAt is always refreshed,
// even for an empty update. Unset slots leave stored values untouched.
func (r *ReminderRepository) Update(ctx context.Context, id int64, update models.ReminderUpdate) error {
	setClauses := []string{"updatedAt = ?"}
	args := []any{formatTime(r.clk.Now())}

	if update.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Notes != nil {
		setClauses = append(setClauses, "notes = ?")
		args = append(args, *update.Notes)
	}
	if update.Category != nil {
		setClauses = append(setClauses, "category = ?")
		args = append(args, string(*update.Category))
	}
	if update.Priority != nil {
		setClauses = append(setClauses, "priority = ?")
		args = append(args, string(*update.Priority))
	}
	if update.MotivationStyle != nil {
		setClauses = append(setClauses, "motivationStyle = ?")
		args = append(args, string(*update.MotivationStyle))
	}
	if update.ScheduledAt != nil {
		setClauses = append(setClauses, "scheduledAt = ?")
		args = append(args, formatTime(*update.ScheduledAt))
	}
	if update.Timezone != nil {
		setClauses = append(setClauses, "timezone = ?")
		args = append(args, *update.Timezone)
	}
	if update.RepeatPattern != nil {
		setClauses = append(setClauses, "repeatPattern = ?")
		args = append(args, string(*update.RepeatPattern))
	}
	if update.NagEnabled != nil {
		setClauses = append(setClauses, "nagEnabled = ?")
		args = append(args, boolToInt(*update.NagEnabled))
	}
	if update.CompletedAt != nil {
		setClauses = append(setClauses, "completedAt = ?")
		args = append(args, formatTime(*update.CompletedAt))
	}
	if update.NotificationID != nil {
		setClauses = append(setClauses, "notificationId = ?")
		args = append(args, *update.NotificationID)
	}
	if update.NagNotificationIDs != nil {
		encoded, err := encodeNagIDs(*update.NagNotificationIDs)
		if err != nil {
			return err
		}
		setClauses = append(setClauses, "nagNotificationIds = ?")
		args = append(args, encoded)
	}
	if update.Confidence != nil {
		setClauses = append(setClauses, "confidence = ?")
		args = append(args, *update.Confidence)
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx,
		"UPDATE reminders SET "+strings.Join(setClauses, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reminder %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// MarkComplete sets completedAt to the current time. Calling it on an
// already-completed reminder overwrites completedAt with the later time.
func (r *ReminderRepository) MarkComplete(ctx context.Context, id int64) error {
	now := r.clk.Now().UTC()
	return r.Update(ctx, id, models.ReminderUpdate{CompletedAt: &now})
}

// Delete removes the reminder row. Deletion is physical and irreversible.
func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reminder %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReminder maps one stored row to a typed record. SQL NULL becomes a
// nil pointer for every optional field, nagEnabled decodes from its 0/1
// encoding, and nagNotificationIds decodes from its JSON-array text with
// malformed values surfaced as errors rather than passed through.
func scanReminder(row rowScanner) (*models.Reminder, error) {
	var (
		id              int64
		title           string
		notes           sql.NullString
		category        string
		priority        string
		motivationStyle sql.NullString
		scheduledAt     string
		timezone        string
		repeatPattern   string
		nagEnabled      int64
		completedAt     sql.NullString
		notificationID  sql.NullString
		nagIDs          sql.NullString
		confidence      sql.NullFloat64
		createdAt       string
		updatedAt       string
	)

	err := row.Scan(&id, &title, &notes, &category, &priority, &motivationStyle,
		&scheduledAt, &timezone, &repeatPattern, &nagEnabled, &completedAt,
		&notificationID, &nagIDs, &confidence, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan reminder: %w", err)
	}

	reminder := &models.Reminder{
		ID:            id,
		Title:         title,
		Category:      models.Category(category),
		Priority:      models.Priority(priority),
		Timezone:      timezone,
		RepeatPattern: models.RepeatPattern(repeatPattern),
		NagEnabled:    nagEnabled == 1,
	}

	if reminder.ScheduledAt, err = parseTime(scheduledAt); err != nil {
		return nil, fmt.Errorf("reminder %d: bad scheduledAt: %w", id, err)
	}
	if reminder.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("reminder %d: bad createdAt: %w", id, err)
	}
	if reminder.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("reminder %d: bad updatedAt: %w", id, err)
	}

	if notes.Valid {
		reminder.Notes = &notes.String
	}
	if motivationStyle.Valid {
		style := models.MotivationStyle(motivationStyle.String)
		reminder.MotivationStyle = &style
	}
	if completedAt.Valid {
		completed, err := parseTime(completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("reminder %d: bad completedAt: %w", id, err)
		}
		reminder.CompletedAt = &completed
	}
	if notificationID.Valid {
		reminder.NotificationID = &notificationID.String
	}
	if nagIDs.Valid {
		var decoded []string
		if err := json.Unmarshal([]byte(nagIDs.String), &decoded); err != nil {
			return nil, fmt.Errorf("reminder %d: failed to decode nagNotificationIds: %w", id, err)
		}
		reminder.NagNotificationIDs = decoded
	}
	if confidence.Valid {
		reminder.Confidence = &confidence.Float64
	}

	return reminder, nil
}

func encodeNagIDs(ids []string) (sql.NullString, error) {
	if ids == nil {
		return sql.NullString{}, nil
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode nagNotificationIds: %w", err)
	}
	return sql.NullString{String: string(encoded), Valid: true}, nil
}

// formatTime renders a timestamp as RFC3339 UTC text, the stored encoding.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullMotivation(m *models.MotivationStyle) sql.NullString {
	if m == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*m), Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Ensure ReminderRepository implements the interface
var _ secondary.ReminderRepository = (*ReminderRepository)(nil)
