// ABOUTME: Engine stores extracted memories with embeddings and retrieves ranked context
// ABOUTME: Embedding failures degrade per memory; retrieval delegates to hybrid search
package memory

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/purposewaze/relate-coach/internal/models"
)

// Retrieval defaults
const (
	DefaultRetrievalLimit = 5
	DefaultRecencyDays    = 90
	DefaultMinImportance  = 0.3
)

// Store is the persistence collaborator for memories and session summaries
type Store interface {
	InsertMemory(mem *models.ConversationMemory) error
	SearchMemories(userID string, queryEmbedding []float64, limit, recencyDays int, minImportance float64) ([]models.RetrievedMemory, error)
	LatestSessionSummary(userID string) (*models.SessionSummary, error)
	NextSessionNumber(userID string) (int, error)
	InsertSessionSummary(summary *models.SessionSummary) error
}

// Embedder generates embedding vectors for memory storage and retrieval queries
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// Engine is the conversation memory engine
type Engine struct {
	store         Store
	embedder      Embedder
	limit         int
	recencyDays   int
	minImportance float64
}

// NewEngine creates a memory engine with default retrieval parameters
func NewEngine(store Store, embedder Embedder) *Engine {
	return &Engine{
		store:         store,
		embedder:      embedder,
		limit:         DefaultRetrievalLimit,
		recencyDays:   DefaultRecencyDays,
		minImportance: DefaultMinImportance,
	}
}

// ExtractAndStore extracts memories from a message and persists them.
// A failed embedding drops that one memory with a log line; the batch
// continues. Memory loss is never a hard failure.
func (e *Engine) ExtractAndStore(userID, sessionID, message string) []models.ConversationMemory {
	extracted := ExtractFromMessage(message)
	if len(extracted) == 0 {
		return nil
	}

	var stored []models.ConversationMemory
	for _, ex := range extracted {
		mem, err := models.NewConversationMemory(userID, sessionID, ex.MemoryType, ex.MemoryText, ex.Importance)
		if err != nil {
			log.Printf("[MemoryEngine] skipping invalid memory: %v", err)
			continue
		}
		mem.SourceExcerpt = ex.Excerpt

		if e.embedder != nil {
			vector, err := e.embedder.GenerateEmbedding(ex.MemoryText)
			if err != nil {
				log.Printf("[MemoryEngine] embedding failed for %s memory, dropping: %v", ex.MemoryType, err)
				continue
			}
			mem.Embedding = vector
		}

		if err := e.store.InsertMemory(mem); err != nil {
			log.Printf("[MemoryEngine] insert failed for %s memory, dropping: %v", ex.MemoryType, err)
			continue
		}
		stored = append(stored, *mem)
	}

	return stored
}

// Retrieve embeds the query and delegates ranking to the store's hybrid search.
// An embedding failure here is a hard error: retrieval similarity is
// meaningless without the same embedding space as storage.
func (e *Engine) Retrieve(userID, query string, limit int) ([]models.RetrievedMemory, error) {
	if limit <= 0 {
		limit = e.limit
	}

	vector, err := e.embedder.GenerateEmbedding(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed retrieval query: %w", err)
	}

	results, err := e.store.SearchMemories(userID, vector, limit, e.recencyDays, e.minImportance)
	if err != nil {
		return nil, fmt.Errorf("memory search failed: %w", err)
	}
	return results, nil
}

// CloseSession creates the session summary row with a per-user monotonic
// session number
func (e *Engine) CloseSession(userID, sessionID string, summary models.SessionSummary) (*models.SessionSummary, error) {
	n, err := e.store.NextSessionNumber(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to assign session number: %w", err)
	}

	summary.SummaryID = "sum_" + uuid.New().String()
	summary.UserID = userID
	summary.SessionID = sessionID
	summary.SessionNumber = n
	summary.CreatedAt = time.Now().UTC()

	if err := e.store.InsertSessionSummary(&summary); err != nil {
		return nil, fmt.Errorf("failed to insert session summary: %w", err)
	}
	return &summary, nil
}

// FormatContext renders the most recent session summary and the retrieved
// memories into the context block handed to the composer
func (e *Engine) FormatContext(userID string, memories []models.RetrievedMemory) string {
	var sb strings.Builder

	summary, err := e.store.LatestSessionSummary(userID)
	if err != nil {
		log.Printf("[MemoryEngine] could not load latest session summary: %v", err)
	}
	if summary != nil {
		sb.WriteString(formatSessionSummary(summary))
	}

	if len(memories) > 0 {
		sb.WriteString("## Relevant Memories\n")
		for _, rm := range chronological(memories) {
			sb.WriteString(fmt.Sprintf("- [%s, %s] %s\n",
				relativeTime(rm.Memory.CreatedAt), rm.Memory.MemoryType, rm.Memory.MemoryText))
		}
		sb.WriteString("\nReference specific memories above when they are relevant to the user's message.\n")
	}

	return sb.String()
}

// formatSessionSummary renders the last session's topics, techniques, and homework
func formatSessionSummary(summary *models.SessionSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Last Session (#%d)\n", summary.SessionNumber))
	if len(summary.Topics) > 0 {
		sb.WriteString(fmt.Sprintf("Topics: %s\n", strings.Join(summary.Topics, ", ")))
	}
	if len(summary.Techniques) > 0 {
		sb.WriteString(fmt.Sprintf("Techniques: %s\n", strings.Join(summary.Techniques, ", ")))
	}
	if len(summary.Homework) > 0 {
		sb.WriteString(fmt.Sprintf("Homework: %s\n", strings.Join(summary.Homework, ", ")))
	}
	if summary.Breakthrough != "" {
		sb.WriteString(fmt.Sprintf("Breakthrough: %s\n", summary.Breakthrough))
	}
	sb.WriteString("\n")
	return sb.String()
}

// chronological orders retrieved memories oldest first for narrative flow
func chronological(memories []models.RetrievedMemory) []models.RetrievedMemory {
	out := make([]models.RetrievedMemory, len(memories))
	copy(out, memories)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Memory.CreatedAt.Before(out[j].Memory.CreatedAt)
	})
	return out
}

// relativeTime renders "today", "yesterday", or "N days ago"
func relativeTime(t time.Time) string {
	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
