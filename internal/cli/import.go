package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/remind/internal/models"
	"github.com/example/remind/internal/wire"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a parsed reminder draft from JSON",
	Long: `Import reads a ParsedReminder JSON document, as produced by the voice
parsing collaborator, and inserts it as a reminder. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var reader io.Reader
		if args[0] == "-" {
			reader = os.Stdin
		} else {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()
			reader = file
		}

		var parsed models.ParsedReminder
		if err := json.NewDecoder(reader).Decode(&parsed); err != nil {
			return fmt.Errorf("failed to decode parsed reminder: %w", err)
		}

		draft := parsed.Draft(wire.Config().DefaultTimezone)
		id, err := wire.ReminderStore().Add(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("failed to import reminder: %w", err)
		}

		fmt.Printf("✓ Imported reminder %d: %s\n", id, parsed.Title)
		if parsed.Confidence < 0.6 {
			fmt.Printf("  %s parse confidence %.2f, review the details with: remind show %d\n",
				color.New(color.FgYellow).Sprint("low"), parsed.Confidence, id)
		} else {
			fmt.Printf("  Parse confidence: %.2f\n", parsed.Confidence)
		}
		return nil
	},
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return importCmd
}
