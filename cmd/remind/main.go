package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/cli"
	"github.com/example/remind/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "remind",
		Short:   "remind - capture, browse and complete reminders",
		Version: version.String(),
		Long: `remind is a reminders application backed by a local sqlite database.
Capture reminders directly or import drafts parsed from voice input,
browse and filter them, and mark them complete.`,
	}

	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.RmCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
