package app

import (
	"strings"

	"github.com/example/remind/internal/models"
)

// Filter is the client-side view filter the presentation layer applies over
// the store's full in-memory collection. There is no store-side filtering.
type Filter struct {
	// Category restricts to an exact category; empty matches all.
	Category models.Category
	// Completed selects completed or pending reminders. A reminder is
	// shown only when its completion state equals this flag.
	Completed bool
	// Search is a case-insensitive substring match on the title.
	Search string
}

// Apply returns the reminders matching the filter, preserving order.
func (f Filter) Apply(reminders []*models.Reminder) []*models.Reminder {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []*models.Reminder
	for _, r := range reminders {
		if r.Completed() != f.Completed {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Title), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}
