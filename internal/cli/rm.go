package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := wire.ReminderStore().Remove(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete reminder: %w", err)
		}

		fmt.Printf("✓ Reminder %d deleted\n", id)
		return nil
	},
}

// RmCmd returns the rm command
func RmCmd() *cobra.Command {
	return rmCmd
}
