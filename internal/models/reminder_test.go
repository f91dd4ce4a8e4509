package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/example/remind/internal/models"
)

var scheduledAt = time.Date(2025, time.June, 5, 9, 30, 0, 0, time.UTC)

func TestReminderDraft_Validate(t *testing.T) {
	badConfidence := 1.5
	badStyle := models.MotivationStyle("aggressive")

	tests := []struct {
		name    string
		draft   models.ReminderDraft
		wantErr bool
	}{
		{
			name:  "minimal valid draft",
			draft: models.ReminderDraft{Title: "Water plants", ScheduledAt: scheduledAt},
		},
		{
			name: "full valid draft",
			draft: models.ReminderDraft{
				Title:         "Pay rent",
				Category:      models.CategoryBills,
				Priority:      models.PriorityHigh,
				ScheduledAt:   scheduledAt,
				RepeatPattern: models.RepeatMonthly,
			},
		},
		{
			name:    "empty title",
			draft:   models.ReminderDraft{ScheduledAt: scheduledAt},
			wantErr: true,
		},
		{
			name:    "whitespace title",
			draft:   models.ReminderDraft{Title: "   ", ScheduledAt: scheduledAt},
			wantErr: true,
		},
		{
			name:    "zero scheduledAt",
			draft:   models.ReminderDraft{Title: "No time"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			draft:   models.ReminderDraft{Title: "X", ScheduledAt: scheduledAt, Category: "Chores"},
			wantErr: true,
		},
		{
			name:    "unknown priority",
			draft:   models.ReminderDraft{Title: "X", ScheduledAt: scheduledAt, Priority: "critical"},
			wantErr: true,
		},
		{
			name:    "unknown repeat pattern",
			draft:   models.ReminderDraft{Title: "X", ScheduledAt: scheduledAt, RepeatPattern: "yearly"},
			wantErr: true,
		},
		{
			name:    "unknown motivation style",
			draft:   models.ReminderDraft{Title: "X", ScheduledAt: scheduledAt, MotivationStyle: &badStyle},
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			draft:   models.ReminderDraft{Title: "X", ScheduledAt: scheduledAt, Confidence: &badConfidence},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid draft, got: %v", err)
			}
		})
	}
}

func TestReminderUpdate_Empty(t *testing.T) {
	if !(models.ReminderUpdate{}).Empty() {
		t.Error("zero update must be empty")
	}

	title := "Renamed"
	if (models.ReminderUpdate{Title: &title}).Empty() {
		t.Error("update with a set slot must not be empty")
	}
}

func TestReminderUpdate_Validate(t *testing.T) {
	empty := ""
	if err := (models.ReminderUpdate{Title: &empty}).Validate(); err == nil {
		t.Error("expected error for blank title slot")
	}

	badCategory := models.Category("Misc")
	if err := (models.ReminderUpdate{Category: &badCategory}).Validate(); err == nil {
		t.Error("expected error for unknown category slot")
	}

	confidence := 0.85
	if err := (models.ReminderUpdate{Confidence: &confidence}).Validate(); err != nil {
		t.Errorf("expected valid update, got: %v", err)
	}
}

func TestReminder_Completed(t *testing.T) {
	r := &models.Reminder{Title: "Pending"}
	if r.Completed() {
		t.Error("reminder without completedAt must be pending")
	}

	at := scheduledAt
	r.CompletedAt = &at
	if !r.Completed() {
		t.Error("reminder with completedAt must be completed")
	}
}

func TestParsedReminder_Decode(t *testing.T) {
	raw := `{
		"title": "Call mom",
		"category": "Family",
		"scheduledAt": "2025-06-05T18:00:00Z",
		"repeatPattern": "weekly",
		"priority": "medium",
		"motivationStyle": "gentle",
		"confidence": 0.92
	}`

	var parsed models.ParsedReminder
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if parsed.Title != "Call mom" || parsed.Category != models.CategoryFamily {
		t.Errorf("unexpected decode result: %+v", parsed)
	}
	if parsed.MotivationStyle == nil || *parsed.MotivationStyle != models.MotivationGentle {
		t.Errorf("expected gentle motivation style, got %v", parsed.MotivationStyle)
	}
	if parsed.Confidence != 0.92 {
		t.Errorf("expected confidence 0.92, got %g", parsed.Confidence)
	}
	if parsed.Notes != nil {
		t.Errorf("expected nil notes, got %q", *parsed.Notes)
	}
}

func TestParsedReminder_Draft(t *testing.T) {
	parsed := models.ParsedReminder{
		Title:         "Stretch",
		Category:      models.CategoryFitness,
		ScheduledAt:   scheduledAt,
		RepeatPattern: models.RepeatDaily,
		Priority:      models.PriorityLow,
		Confidence:    0.7,
	}

	draft := parsed.Draft("Europe/Berlin")
	if err := draft.Validate(); err != nil {
		t.Fatalf("draft from parsed reminder must validate: %v", err)
	}
	if draft.Timezone != "Europe/Berlin" {
		t.Errorf("expected caller timezone, got %q", draft.Timezone)
	}
	if draft.Confidence == nil || *draft.Confidence != 0.7 {
		t.Errorf("expected confidence carried over, got %v", draft.Confidence)
	}
}

func TestCategories_AllValid(t *testing.T) {
	for _, c := range models.Categories() {
		if !c.Valid() {
			t.Errorf("category %q listed but not valid", c)
		}
	}
	if models.Category("").Valid() {
		t.Error("empty category must not be valid")
	}
}
