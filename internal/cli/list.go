package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/remind/internal/app"
	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/wire"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		completed, _ := cmd.Flags().GetBool("completed")
		search, _ := cmd.Flags().GetString("search")

		if category != "" && !models.Category(category).Valid() {
			return fmt.Errorf("invalid category: %s", category)
		}

		snapshot := wire.ReminderStore().Snapshot()
		filter := app.Filter{
			Category:  models.Category(category),
			Completed: completed,
			Search:    search,
		}
		reminders := filter.Apply(snapshot.Reminders)

		if len(reminders) == 0 {
			fmt.Println("No reminders found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRIORITY\tWHEN")
		fmt.Fprintln(w, "--\t-----\t--------\t--------\t----")
		for _, r := range reminders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				r.ID, r.Title, r.Category, priorityMarker(r.Priority), formatWhen(r))
		}
		return w.Flush()
	},
}

// priorityMarker renders the priority, colored for the levels worth a glance.
func priorityMarker(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return color.New(color.FgHiRed).Sprint(string(p))
	case models.PriorityHigh:
		return color.New(color.FgYellow).Sprint(string(p))
	default:
		return string(p)
	}
}

// formatWhen renders the scheduled time in the reminder's own timezone,
// relative for today and tomorrow. Overdue pending reminders are flagged.
func formatWhen(r *models.Reminder) string {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		loc = time.UTC
	}
	at := r.ScheduledAt.In(loc)
	now := time.Now().In(loc)

	var when string
	switch {
	case sameDay(at, now):
		when = "Today at " + at.Format("15:04")
	case sameDay(at, now.AddDate(0, 0, 1)):
		when = "Tomorrow at " + at.Format("15:04")
	default:
		when = at.Format("Jan 2 at 15:04")
	}

	if !r.Completed() && at.Before(now) {
		when += color.New(color.FgHiRed).Sprint(" [overdue]")
	}
	return when
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func init() {
	listCmd.Flags().StringP("category", "c", "", "Filter by category")
	listCmd.Flags().Bool("completed", false, "Show completed reminders instead of pending")
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive title search")
}

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return listCmd
}
