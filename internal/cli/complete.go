package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

var completeCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a reminder as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.ReminderStore().Complete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to complete reminder: %w", err)
		}

		fmt.Printf("✓ Reminder %d completed\n", id)
		return nil
	},
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	return completeCmd
}
