// ABOUTME: Main entry point for the coaching pipeline MCP server with stdio transport
// ABOUTME: Initializes storage, the decision pipeline, and MCP server with all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/purposewaze/relate-coach/internal/charm"
	"github.com/purposewaze/relate-coach/internal/config"
	"github.com/purposewaze/relate-coach/internal/core"
	"github.com/purposewaze/relate-coach/internal/llm"
	"github.com/purposewaze/relate-coach/internal/mcp"
	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/storage"
)

const version = "0.1.0"

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize storage with XDG-compliant paths
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Cloud sync for profiles and embeddings is best-effort
	if cfg.AutoSync {
		charmClient, err := charm.NewClient(&charm.Config{
			Host:     cfg.CharmHost,
			DBName:   cfg.CharmDBName,
			AutoSync: cfg.AutoSync,
		})
		if err != nil {
			log.Printf("Warning: charm sync unavailable, running local-only: %v", err)
		} else if err := store.EnableCharmSync(charmClient); err != nil {
			log.Printf("Warning: failed to enable charm sync: %v", err)
		}
	}

	var (
		llmDecomposer core.LLMDecomposer
		memoryEngine  *memory.Engine
	)
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - LLM decomposition and memory retrieval will not work")
	} else {
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey)
		if err != nil {
			log.Fatalf("Failed to initialize OpenAI client: %v", err)
		}
		llmDecomposer = client
		memoryEngine = memory.NewEngine(store, client)
	}

	decomposer := core.NewDecomposer(llmDecomposer)
	detector := core.NewCrossPillarDetector(store)
	engine := core.NewIntersectionalityEngineWithThreshold(cfg.SecondaryFocusThreshold)
	pipeline := core.NewPipeline(decomposer, detector, engine, memoryEngine, cfg.RetrievalLimit)

	server := mcpserver.NewMCPServer(
		"Relate Coach Pipeline",
		version,
	)

	handlers := mcp.RegisterTools(server, store, pipeline, memoryEngine)

	log.Println("Coaching pipeline MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	// Drain background extraction before exit
	handlers.Shutdown()
}
