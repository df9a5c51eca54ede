// ABOUTME: MCP tool handler implementations for the coaching pipeline server
// ABOUTME: Contains handler implementations with proper error handling for all 5 tools
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/purposewaze/relate-coach/internal/core"
	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/models"
	"github.com/purposewaze/relate-coach/internal/registry"
	"github.com/purposewaze/relate-coach/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage  *storage.Storage
	pipeline *core.Pipeline
	memory   *memory.Engine
}

// AnalyzeMessage handles the analyze_message tool
func (h *Handlers) AnalyzeMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id argument is required and must be a string"), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	triage := defaultTriage()
	if triageJSON := request.GetString("triage", ""); triageJSON != "" {
		if err := json.Unmarshal([]byte(triageJSON), triage); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid triage JSON: %v", err)), nil
		}
	}

	profile := h.loadProfile(userID)

	result, err := h.pipeline.Analyze(userID, message, profile, triage, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RecordExchange handles the record_exchange tool
func (h *Handlers) RecordExchange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id argument is required and must be a string"), nil
	}
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}
	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sessionID = fmt.Sprintf("sess_%s_%s", time.Now().Format("20060102"), uuid.New().String()[:8])
	}

	// Extraction runs in the background; the tool returns immediately
	h.pipeline.RecordExchange(userID, sessionID, message)

	response := map[string]interface{}{
		"status":     "queued",
		"user_id":    userID,
		"session_id": sessionID,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RetrieveMemories handles the retrieve_memories tool
func (h *Handlers) RetrieveMemories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id argument is required and must be a string"), nil
	}
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", memory.DefaultRetrievalLimit)

	if h.memory == nil {
		return mcp.NewToolResultError("memory engine unavailable: OPENAI_API_KEY not configured"), nil
	}

	memories, err := h.memory.Retrieve(userID, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("retrieval failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(memories))
	for _, m := range memories {
		results = append(results, map[string]interface{}{
			"memory_id":      m.Memory.MemoryID,
			"memory_type":    string(m.Memory.MemoryType),
			"memory_text":    m.Memory.MemoryText,
			"importance":     m.Memory.ImportanceScore,
			"similarity":     m.Similarity,
			"recency_weight": m.RecencyWeight,
			"combined_score": m.CombinedScore,
			"created_at":     m.Memory.CreatedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"user_id":  userID,
		"query":    query,
		"count":    len(results),
		"memories": results,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// CloseSession handles the close_session tool
func (h *Handlers) CloseSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := request.RequireString("user_id")
	if err != nil {
		return mcp.NewToolResultError("user_id argument is required and must be a string"), nil
	}
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id argument is required and must be a string"), nil
	}

	var summary models.SessionSummary
	if summaryJSON := request.GetString("summary", ""); summaryJSON != "" {
		if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid summary JSON: %v", err)), nil
		}
	}

	if h.memory == nil {
		return mcp.NewToolResultError("memory engine unavailable: OPENAI_API_KEY not configured"), nil
	}

	// Drain pending extraction so the summary reflects the whole session;
	// the server keeps serving, so the recorder must stay open
	h.pipeline.Drain()

	saved, err := h.memory.CloseSession(userID, sessionID, summary)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to close session: %v", err)), nil
	}

	response := map[string]interface{}{
		"summary_id":     saved.SummaryID,
		"session_number": saved.SessionNumber,
		"message_count":  saved.MessageCount,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListFrameworks handles the list_frameworks tool
func (h *Handlers) ListFrameworks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domainID := request.GetString("domain", "")

	var frameworks []models.Framework
	if domainID != "" {
		if _, err := registry.DomainByID(domainID); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		frameworks = registry.FrameworksForDomain(domainID)
	} else {
		frameworks = registry.AllFrameworks()
	}

	results := make([]map[string]interface{}, 0, len(frameworks))
	for _, fw := range frameworks {
		results = append(results, map[string]interface{}{
			"name":              fw.Name,
			"domain":            fw.Domain,
			"tier":              string(fw.Tier),
			"default_triage":    string(fw.DefaultTriage),
			"contraindications": fw.Contraindications,
			"issue_types":       fw.IssueTypes,
		})
	}

	response := map[string]interface{}{
		"count":      len(results),
		"frameworks": results,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// Shutdown waits for all pending background extraction to complete
func (h *Handlers) Shutdown() {
	h.pipeline.Shutdown()
}

// loadProfile fetches the charm-synced profile when available
func (h *Handlers) loadProfile(userID string) *models.UserProfile {
	profiles := h.storage.Profiles()
	if profiles == nil {
		return nil
	}
	profile, err := profiles.Get(userID)
	if err != nil {
		return nil
	}
	return profile
}

// defaultTriage is used when the caller supplies no upstream verdict:
// green, no domain steer, homework and reframes permitted
func defaultTriage() *models.TriageDecision {
	return &models.TriageDecision{
		TriageColor: models.TriageGreen,
		Confidence:  0,
		ResponseTemplate: models.ResponseTemplate{
			AllowHomework: true,
			AllowReframe:  true,
		},
	}
}
