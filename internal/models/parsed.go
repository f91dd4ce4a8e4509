package models

import "time"

// ParsedReminder is the output of the external voice-parsing collaborator:
// a structured draft derived from speech, carrying the parser's confidence.
// It is transient and never persisted directly; convert it with Draft and
// insert the result through the store.
type ParsedReminder struct {
	Title           string           `json:"title"`
	Category        Category         `json:"category"`
	ScheduledAt     time.Time        `json:"scheduledAt"`
	RepeatPattern   RepeatPattern    `json:"repeatPattern"`
	Priority        Priority         `json:"priority"`
	MotivationStyle *MotivationStyle `json:"motivationStyle"`
	Confidence      float64          `json:"confidence"`
	Notes           *string          `json:"notes,omitempty"`
}

// Draft converts the parsed reminder into an insertable draft. The timezone
// is supplied by the caller because the parser emits instants, not zones.
func (p *ParsedReminder) Draft(timezone string) ReminderDraft {
	confidence := p.Confidence
	return ReminderDraft{
		Title:           p.Title,
		Notes:           p.Notes,
		Category:        p.Category,
		Priority:        p.Priority,
		MotivationStyle: p.MotivationStyle,
		ScheduledAt:     p.ScheduledAt,
		Timezone:        timezone,
		RepeatPattern:   p.RepeatPattern,
		Confidence:      &confidence,
	}
}
