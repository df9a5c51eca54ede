// ABOUTME: CLI command to search and inspect stored conversation memories
// ABOUTME: Hybrid search blends similarity, recency, and importance
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
)

var (
	memoriesUser  string
	memoriesLimit int
)

// NewMemoriesCmd creates the memories command with its subcommands
func NewMemoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memories",
		Short: "Search and inspect conversation memories",
	}

	cmd.PersistentFlags().StringVar(&memoriesUser, "user", "default", "User ID")

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search memories by semantic similarity",
		Long: `Search a user's memories. Results are ranked by a blend of
embedding similarity, recency, and importance.

Examples:
  coach memories search "breathing exercise"
  coach memories search --user alice --limit 10 "fights about money"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMemoriesSearch,
	}
	searchCmd.Flags().IntVar(&memoriesLimit, "limit", memory.DefaultRetrievalLimit, "Maximum results")
	cmd.AddCommand(searchCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Count a user's active memories",
		RunE:  runMemoriesCount,
	})

	return cmd
}

func runMemoriesSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(memoriesLimit, "limit"); err != nil {
		return err
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for memory search")
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
	query := strings.Join(args, " ")

	results, err := engine.Retrieve(memoriesUser, query, memoriesLimit)
	if err != nil {
		return fmt.Errorf("searching memories: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No memories found")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TYPE\tSCORE\tMEMORY\tWHEN\n")
	fmt.Fprintf(w, "----\t-----\t------\t----\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n",
			r.Memory.MemoryType,
			r.CombinedScore,
			truncate(r.Memory.MemoryText, 60),
			formatTime(r.Memory.CreatedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d memor(ies)\n", len(results))
	}
	return nil
}

func runMemoriesCount(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	count, err := store.Memories().CountActive(memoriesUser)
	if err != nil {
		return fmt.Errorf("counting memories: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d active memories for %s\n", count, memoriesUser)
	return nil
}
