package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/wire"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a reminder's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var reminder *models.Reminder
		for _, r := range wire.ReminderStore().Reminders() {
			if r.ID == id {
				reminder = r
				break
			}
		}
		if reminder == nil {
			return fmt.Errorf("reminder %d not found", id)
		}

		fmt.Printf("Reminder %d: %s\n", reminder.ID, reminder.Title)
		fmt.Printf("  Category:  %s\n", reminder.Category)
		fmt.Printf("  Priority:  %s\n", reminder.Priority)
		fmt.Printf("  Scheduled: %s (%s)\n", reminder.ScheduledAt.Format(time.RFC3339), reminder.Timezone)
		fmt.Printf("  Repeat:    %s\n", reminder.RepeatPattern)
		fmt.Printf("  Nag:       %t\n", reminder.NagEnabled)
		if reminder.Notes != nil {
			fmt.Printf("  Notes:     %s\n", *reminder.Notes)
		}
		if reminder.MotivationStyle != nil {
			fmt.Printf("  Style:     %s\n", *reminder.MotivationStyle)
		}
		if reminder.Completed() {
			fmt.Printf("  Completed: %s\n", reminder.CompletedAt.Format(time.RFC3339))
		}
		if reminder.NotificationID != nil {
			fmt.Printf("  Notification: %s\n", *reminder.NotificationID)
		}
		if len(reminder.NagNotificationIDs) > 0 {
			fmt.Printf("  Nag notifications: %s\n", strings.Join(reminder.NagNotificationIDs, ", "))
		}
		if reminder.Confidence != nil {
			fmt.Printf("  Parse confidence: %.2f\n", *reminder.Confidence)
		}
		fmt.Printf("  Created:   %s\n", reminder.CreatedAt.Format(time.RFC3339))
		fmt.Printf("  Updated:   %s\n", reminder.UpdatedAt.Format(time.RFC3339))
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid reminder id %q", s)
	}
	return id, nil
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return showCmd
}
