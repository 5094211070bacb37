// Package cli provides the command-line interface for ChatLens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatlens",
		Short: "Analyze exported chat transcripts",
		Long: `ChatLens is a batch analysis tool for exported chat transcripts.

Point it at a chat export (.txt, or the .zip that contains one) and it
reports:
  - Message, word, media, and link volume
  - Busiest senders and their contribution
  - Word and emoji frequency
  - Monthly and daily timelines, weekday and month activity, hourly heatmap
  - A coarse sentiment tally

Statistics can cover the whole group or a single sender.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
