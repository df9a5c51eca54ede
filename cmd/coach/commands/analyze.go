// ABOUTME: CLI command to run a message through the decision pipeline
// ABOUTME: Prints composed response guidance or the full analysis as JSON
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/purposewaze/relate-coach/internal/core"
	"github.com/purposewaze/relate-coach/internal/llm"
	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/models"
)

var (
	analyzeUser   string
	analyzeTriage string
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [message]",
		Short: "Analyze a message through the decision pipeline",
		Long: `Analyze a user message through the full decision pipeline:
query decomposition, cross-pillar detection, intersectionality
analysis, and composed response guidance.

An upstream triage verdict can be supplied as JSON with --triage;
without one the message is treated as green with no domain steer.

Examples:
  coach analyze "We fight about money and he shuts down"
  coach analyze --user alice --triage '{"triage_color":"yellow","recommended_domains":["communication_conflict"]}' "We keep having the same fight"
  coach analyze --format json "I feel like we're roommates"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeUser, "user", "default", "User ID for memory retrieval")
	cmd.Flags().StringVar(&analyzeTriage, "triage", "", "Upstream triage decision as JSON")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	message := strings.Join(args, " ")

	triage := &models.TriageDecision{
		TriageColor: models.TriageGreen,
		ResponseTemplate: models.ResponseTemplate{
			AllowHomework: true,
			AllowReframe:  true,
		},
	}
	if analyzeTriage != "" {
		if err := json.Unmarshal([]byte(analyzeTriage), triage); err != nil {
			return fmt.Errorf("parsing triage JSON: %w", err)
		}
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	var (
		llmDecomposer core.LLMDecomposer
		memoryEngine  *memory.Engine
	)
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client, err := llm.NewOpenAIClient(key)
		if err != nil {
			return fmt.Errorf("initializing OpenAI client: %w", err)
		}
		llmDecomposer = client
		memoryEngine = memory.NewEngine(store, client)
	} else if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: OPENAI_API_KEY not set, running rule-based only")
	}

	pipeline := core.NewPipeline(
		core.NewDecomposer(llmDecomposer),
		core.NewCrossPillarDetector(store),
		core.NewIntersectionalityEngine(),
		memoryEngine,
		0,
	)

	result, err := pipeline.Analyze(analyzeUser, message, nil, triage, nil)
	if err != nil {
		return fmt.Errorf("analyzing message: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Decomposition (%s):\n", result.Decomposition.Method)
		for _, sq := range result.Decomposition.SubQueries {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s\n", sq.TargetDomain, sq.Query)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.ComposedContext)
	return nil
}
