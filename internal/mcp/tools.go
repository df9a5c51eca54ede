// ABOUTME: MCP tool definitions and registration for the coaching pipeline server
// ABOUTME: Defines JSON schemas for the 5 analysis and memory tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/purposewaze/relate-coach/internal/core"
	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage, pipeline *core.Pipeline, memoryEngine *memory.Engine) *Handlers {
	handlers := &Handlers{
		storage:  store,
		pipeline: pipeline,
		memory:   memoryEngine,
	}

	// 1. analyze_message - Run the full decision pipeline for one message
	server.AddTool(mcp.Tool{
		Name:        "analyze_message",
		Description: "Analyze a user message through the coaching decision pipeline: query decomposition, cross-pillar detection, intersectionality analysis, and composed response guidance.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User the message belongs to",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "The user message to analyze",
				},
				"triage": map[string]interface{}{
					"type":        "string",
					"description": "Upstream triage decision as JSON (triage_color, recommended_domains, excluded_frameworks, ...). Defaults to green with no domain recommendations.",
				},
			},
			Required: []string{"user_id", "message"},
		},
	}, handlers.AnalyzeMessage)

	// 2. record_exchange - Extract and store memories from a message
	server.AddTool(mcp.Tool{
		Name:        "record_exchange",
		Description: "Extract durable memories (breakthroughs, setbacks, techniques tried, goals) from a user message and store them in the background.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User the exchange belongs to",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Current session identifier",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message to extract memories from",
				},
			},
			Required: []string{"user_id", "message"},
		},
	}, handlers.RecordExchange)

	// 3. retrieve_memories - Hybrid search over stored memories
	server.AddTool(mcp.Tool{
		Name:        "retrieve_memories",
		Description: "Retrieve a user's most relevant memories for a query, ranked by blended similarity, recency, and importance.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User whose memories to search",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query for memory retrieval",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"user_id", "query"},
		},
	}, handlers.RetrieveMemories)

	// 4. close_session - Summarize and close a coaching session
	server.AddTool(mcp.Tool{
		Name:        "close_session",
		Description: "Close a coaching session, assigning the next session number and persisting a summary for cross-session continuity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User the session belongs to",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session identifier being closed",
				},
				"summary": map[string]interface{}{
					"type":        "string",
					"description": "Session summary as JSON (topics, techniques, homework, affect_trajectory, triage_colors, breakthrough, message_count)",
				},
			},
			Required: []string{"user_id", "session_id"},
		},
	}, handlers.CloseSession)

	// 5. list_frameworks - Inspect the framework registry
	server.AddTool(mcp.Tool{
		Name:        "list_frameworks",
		Description: "List coaching frameworks from the registry with evidence tier, default triage, and contraindications. Optionally filtered by domain.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"domain": map[string]interface{}{
					"type":        "string",
					"description": "Optional domain ID to filter by (e.g. communication_conflict)",
				},
			},
		},
	}, handlers.ListFrameworks)

	return handlers
}
