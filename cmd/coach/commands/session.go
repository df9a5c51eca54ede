// ABOUTME: CLI command to close sessions and browse session history
// ABOUTME: Session numbers are assigned monotonically per user at close time
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/purposewaze/relate-coach/internal/llm"
	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/models"
)

var (
	sessionUser         string
	sessionID           string
	sessionTopics       []string
	sessionTechniques   []string
	sessionHomework     []string
	sessionBreakthrough string
	sessionMessages     int
)

// NewSessionCmd creates the session command with its subcommands
func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Close sessions and browse session history",
	}

	cmd.PersistentFlags().StringVar(&sessionUser, "user", "default", "User ID")

	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Close a session and persist its summary",
		Long: `Close a coaching session. The next session number for the user is
assigned automatically and the summary becomes available to future
sessions as opening context.

Examples:
  coach session close --session sess_20260831_ab12 --topic "money fights" --technique "XYZ statements"`,
		RunE: runSessionClose,
	}
	closeCmd.Flags().StringVar(&sessionID, "session", "", "Session ID being closed (required)")
	closeCmd.Flags().StringArrayVar(&sessionTopics, "topic", nil, "Topic discussed (repeatable)")
	closeCmd.Flags().StringArrayVar(&sessionTechniques, "technique", nil, "Technique introduced (repeatable)")
	closeCmd.Flags().StringArrayVar(&sessionHomework, "homework", nil, "Homework assigned (repeatable)")
	closeCmd.Flags().StringVar(&sessionBreakthrough, "breakthrough", "", "Breakthrough moment, if any")
	closeCmd.Flags().IntVar(&sessionMessages, "messages", 0, "Message count for the session")
	_ = closeCmd.MarkFlagRequired("session")
	cmd.AddCommand(closeCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List a user's session summaries",
		RunE:  runSessionList,
	})

	return cmd
}

func runSessionClose(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return fmt.Errorf("OPENAI_API_KEY is required to close sessions")
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	client, err := llm.NewOpenAIClient(key)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}
	engine := memory.NewEngine(store, client)

	summary := models.SessionSummary{
		Topics:       sessionTopics,
		Techniques:   sessionTechniques,
		Homework:     sessionHomework,
		Breakthrough: sessionBreakthrough,
		MessageCount: sessionMessages,
	}

	saved, err := engine.CloseSession(sessionUser, sessionID, summary)
	if err != nil {
		return fmt.Errorf("closing session: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Closed session #%d (%s)\n", saved.SessionNumber, saved.SummaryID)
	}
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	summaries, err := store.Summaries().ListByUser(sessionUser)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if len(summaries) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions found")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tTOPICS\tTECHNIQUES\tMESSAGES\tWHEN\n")
	fmt.Fprintf(w, "-\t------\t----------\t--------\t----\n")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			s.SessionNumber,
			truncate(strings.Join(s.Topics, ", "), 40),
			truncate(strings.Join(s.Techniques, ", "), 30),
			s.MessageCount,
			formatTime(s.CreatedAt))
	}
	w.Flush()
	return nil
}
