// Package models contains the reminder data model shared by storage and UI.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a reminder into one of a fixed set of buckets.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryWork     Category = "Work"
	CategoryHealth   Category = "Health"
	CategoryBills    Category = "Bills"
	CategoryFamily   Category = "Family"
	CategoryErrands  Category = "Errands"
	CategoryFitness  Category = "Fitness"
	CategorySocial   Category = "Social"
	CategoryOther    Category = "Other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryWork,
		CategoryHealth,
		CategoryBills,
		CategoryFamily,
		CategoryErrands,
		CategoryFitness,
		CategorySocial,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryHealth, CategoryBills,
		CategoryFamily, CategoryErrands, CategoryFitness, CategorySocial, CategoryOther:
		return true
	}
	return false
}

// Priority is the urgency level of a reminder.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// RepeatPattern is the recurrence rule for a reminder.
type RepeatPattern string

const (
	RepeatNone    RepeatPattern = "none"
	RepeatDaily   RepeatPattern = "daily"
	RepeatWeekly  RepeatPattern = "weekly"
	RepeatMonthly RepeatPattern = "monthly"
)

// Valid reports whether r is one of the known repeat patterns.
func (r RepeatPattern) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// MotivationStyle controls the tone of follow-up notifications.
type MotivationStyle string

const (
	MotivationGentle MotivationStyle = "gentle"
	MotivationFirm   MotivationStyle = "firm"
	MotivationUrgent MotivationStyle = "urgent"
)

// Valid reports whether m is one of the known motivation styles.
func (m MotivationStyle) Valid() bool {
	switch m {
	case MotivationGentle, MotivationFirm, MotivationUrgent:
		return true
	}
	return false
}

// Reminder is the persisted reminder entity. Identity and the two audit
// timestamps are assigned by the repository, never by callers. A reminder
// is completed iff CompletedAt is non-nil; there is no separate status field.
type Reminder struct {
	ID                 int64
	Title              string
	Notes              *string
	Category           Category
	Priority           Priority
	MotivationStyle    *MotivationStyle
	ScheduledAt        time.Time
	Timezone           string // IANA identifier recorded alongside ScheduledAt
	RepeatPattern      RepeatPattern
	NagEnabled         bool
	CompletedAt        *time.Time
	NotificationID     *string
	NagNotificationIDs []string
	Confidence         *float64 // [0,1] parser certainty for voice-derived reminders
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Completed reports whether the reminder has been completed.
func (r *Reminder) Completed() bool {
	return r.CompletedAt != nil
}

// ReminderDraft is a pre-insertion reminder: everything except the fields
// the repository assigns (id, createdAt, updatedAt). Zero values for
// Category, Priority, RepeatPattern and Timezone take the storage defaults.
type ReminderDraft struct {
	Title              string
	Notes              *string
	Category           Category
	Priority           Priority
	MotivationStyle    *MotivationStyle
	ScheduledAt        time.Time
	Timezone           string
	RepeatPattern      RepeatPattern
	NagEnabled         bool
	CompletedAt        *time.Time
	NotificationID     *string
	NagNotificationIDs []string
	Confidence         *float64
}

// Validate checks the draft before insertion. Empty enum fields are allowed
// because the repository applies storage defaults for them.
func (d *ReminderDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if d.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduledAt must be set")
	}
	if d.Category != "" && !d.Category.Valid() {
		return fmt.Errorf("invalid category: %s", d.Category)
	}
	if d.Priority != "" && !d.Priority.Valid() {
		return fmt.Errorf("invalid priority: %s", d.Priority)
	}
	if d.RepeatPattern != "" && !d.RepeatPattern.Valid() {
		return fmt.Errorf("invalid repeat pattern: %s", d.RepeatPattern)
	}
	if d.MotivationStyle != nil && !d.MotivationStyle.Valid() {
		return fmt.Errorf("invalid motivation style: %s", *d.MotivationStyle)
	}
	if d.Confidence != nil && (*d.Confidence < 0 || *d.Confidence > 1) {
		return fmt.Errorf("confidence must be in [0,1], got %g", *d.Confidence)
	}
	if d.CompletedAt != nil && d.CompletedAt.IsZero() {
		return fmt.Errorf("completedAt must be a valid timestamp when set")
	}
	return nil
}

// ReminderUpdate is a partial-field update descriptor: one optional slot per
// mutable column. A nil slot leaves the stored value untouched. The set of
// updatable fields is fixed here so updates cannot be assembled from an
// arbitrary mapping at runtime. id and createdAt are not updatable.
type ReminderUpdate struct {
	Title              *string
	Notes              *string
	Category           *Category
	Priority           *Priority
	MotivationStyle    *MotivationStyle
	ScheduledAt        *time.Time
	Timezone           *string
	RepeatPattern      *RepeatPattern
	NagEnabled         *bool
	CompletedAt        *time.Time
	NotificationID     *string
	NagNotificationIDs *[]string
	Confidence         *float64
}

// Empty reports whether no field slot is set.
func (u ReminderUpdate) Empty() bool {
	return u.Title == nil && u.Notes == nil && u.Category == nil &&
		u.Priority == nil && u.MotivationStyle == nil && u.ScheduledAt == nil &&
		u.Timezone == nil && u.RepeatPattern == nil && u.NagEnabled == nil &&
		u.CompletedAt == nil && u.NotificationID == nil &&
		u.NagNotificationIDs == nil && u.Confidence == nil
}

// Validate checks the provided slots against the enum and range constraints.
func (u ReminderUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if u.Category != nil && !u.Category.Valid() {
		return fmt.Errorf("invalid category: %s", *u.Category)
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return fmt.Errorf("invalid priority: %s", *u.Priority)
	}
	if u.RepeatPattern != nil && !u.RepeatPattern.Valid() {
		return fmt.Errorf("invalid repeat pattern: %s", *u.RepeatPattern)
	}
	if u.MotivationStyle != nil && !u.MotivationStyle.Valid() {
		return fmt.Errorf("invalid motivation style: %s", *u.MotivationStyle)
	}
	if u.Confidence != nil && (*u.Confidence < 0 || *u.Confidence > 1) {
		return fmt.Errorf("confidence must be in [0,1], got %g", *u.Confidence)
	}
	return nil
}
