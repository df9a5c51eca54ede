// ABOUTME: Root CLI command with global flags shared by all subcommands
// ABOUTME: Wires analyze, memories, frameworks, session, and triggers commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	dbPath       string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Relational coaching decision pipeline",
		Long: `coach - relational coaching decision pipeline

Inspect the framework registry, analyze messages through the full
decision pipeline (decomposition, cross-pillar detection,
intersectionality analysis), and manage conversation memories.

Most commands read OPENAI_API_KEY from the environment or a local
.env file for embedding and LLM features.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: XDG data dir)")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewMemoriesCmd())
	cmd.AddCommand(NewFrameworksCmd())
	cmd.AddCommand(NewSessionCmd())
	cmd.AddCommand(NewTriggersCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
