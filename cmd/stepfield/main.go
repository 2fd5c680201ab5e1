// Stepfield is a terminal playground for bounded numeric value editors.
//
// It renders a column of editable numeric fields, each with step buttons
// that repeat and accelerate while held, inline text entry with
// validation, and range alerts. Fields are loaded from a preset file in
// the user's config directory.
//
// Usage:
//
//	stepfield [command] [flags]
//
// Running without arguments launches the playground.
// See 'stepfield --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stepfield/stepfield/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stepfield",
	Short: "Bounded numeric field playground",
	Long: `A terminal playground for bounded numeric value editors.

Each field shows its value with increment and decrement buttons that
repeat while held, accelerating the longer the button is down. Pressing
enter on a field opens inline text entry with validation against the
field's range.

If no command is specified, the playground launches with the fields
defined in the preset file.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the playground when no subcommand provided
		return runPlayground(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stepfield %s (commit: %s)\n", version.Version, version.Commit)
	},
}
