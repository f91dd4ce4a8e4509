package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/wire"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		notes, _ := cmd.Flags().GetString("notes")
		category, _ := cmd.Flags().GetString("category")
		priority, _ := cmd.Flags().GetString("priority")
		at, _ := cmd.Flags().GetString("at")
		timezone, _ := cmd.Flags().GetString("tz")
		repeat, _ := cmd.Flags().GetString("repeat")
		nag, _ := cmd.Flags().GetBool("nag")
		style, _ := cmd.Flags().GetString("style")

		if timezone == "" {
			timezone = wire.Config().DefaultTimezone
		}

		scheduledAt, err := parseScheduledAt(at, timezone)
		if err != nil {
			return err
		}

		draft := models.ReminderDraft{
			Title:         title,
			Category:      models.Category(category),
			Priority:      models.Priority(priority),
			ScheduledAt:   scheduledAt,
			Timezone:      timezone,
			RepeatPattern: models.RepeatPattern(repeat),
			NagEnabled:    nag,
		}
		if notes != "" {
			draft.Notes = &notes
		}
		if style != "" {
			s := models.MotivationStyle(style)
			draft.MotivationStyle = &s
		}

		id, err := wire.ReminderStore().Add(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("failed to add reminder: %w", err)
		}

		fmt.Printf("✓ Added reminder %d: %s\n", id, title)
		fmt.Printf("  Scheduled: %s (%s)\n", scheduledAt.Format(time.RFC3339), timezone)
		return nil
	},
}

// parseScheduledAt accepts RFC3339 or a local "2006-01-02 15:04" rendered in
// the given IANA timezone.
func parseScheduledAt(s, timezone string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("--at is required (RFC3339 or \"2006-01-02 15:04\")")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or \"2006-01-02 15:04\"", s)
	}
	return t, nil
}

func init() {
	addCmd.Flags().StringP("notes", "n", "", "Free-text notes")
	addCmd.Flags().StringP("category", "c", "", "Category (Personal, Work, Health, Bills, Family, Errands, Fitness, Social, Other)")
	addCmd.Flags().StringP("priority", "p", "", "Priority (low, medium, high, urgent)")
	addCmd.Flags().String("at", "", "Scheduled time (RFC3339 or \"2006-01-02 15:04\")")
	addCmd.Flags().String("tz", "", "IANA timezone (defaults to config)")
	addCmd.Flags().StringP("repeat", "r", "", "Repeat pattern (none, daily, weekly, monthly)")
	addCmd.Flags().Bool("nag", false, "Enable escalating follow-up notifications")
	addCmd.Flags().String("style", "", "Motivation style (gentle, firm, urgent)")
}

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	return addCmd
}
