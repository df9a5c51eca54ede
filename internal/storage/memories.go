// ABOUTME: Conversation memory persistence with hybrid retrieval scoring
// ABOUTME: Blends cosine similarity, recency decay, and importance per query
package storage

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/purposewaze/relate-coach/internal/models"
)

// Hybrid retrieval blend weights
const (
	weightSimilarity = 0.5
	weightRecency    = 0.3
	weightImportance = 0.2
)

// MemoryStore handles conversation memory persistence
type MemoryStore struct {
	db *DB
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore(db *DB) *MemoryStore {
	return &MemoryStore{db: db}
}

// Save saves a conversation memory
func (s *MemoryStore) Save(mem *models.ConversationMemory) error {
	createdAt := mem.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var blob []byte
	if len(mem.Embedding) > 0 {
		blob = vectorToBlob(mem.Embedding)
	}

	_, err := s.db.Exec(`
		INSERT INTO conversation_memories
			(id, user_id, session_id, memory_type, memory_text, embedding,
			 source_excerpt, frameworks, issues, primary_affect, affect_intensity,
			 importance_score, is_active, superseded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			memory_text = excluded.memory_text,
			embedding = excluded.embedding,
			importance_score = excluded.importance_score,
			is_active = excluded.is_active,
			superseded_by = excluded.superseded_by
	`, mem.MemoryID, mem.UserID, nullString(mem.SessionID), string(mem.MemoryType),
		mem.MemoryText, blob, nullString(mem.SourceExcerpt),
		encodeList(mem.Frameworks), encodeList(mem.Issues),
		nullString(mem.EmotionalContext.PrimaryAffect), mem.EmotionalContext.Intensity,
		mem.ImportanceScore, boolToInt(mem.IsActive), nullString(mem.SupersededBy), createdAt)

	return err
}

// GetByID retrieves a memory by its ID
func (s *MemoryStore) GetByID(memoryID string) (*models.ConversationMemory, error) {
	row := s.db.QueryRow(memorySelect+` WHERE id = ?`, memoryID)

	mem, err := scanMemory(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// GetBySession retrieves all active memories for a session, oldest first
func (s *MemoryStore) GetBySession(userID, sessionID string) ([]models.ConversationMemory, error) {
	rows, err := s.db.Query(memorySelect+`
		WHERE user_id = ? AND session_id = ? AND is_active = 1
		ORDER BY created_at ASC
	`, userID, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanMemories(rows)
}

// Supersede deactivates a memory and records what replaced it.
// The old row stays in place for audit.
func (s *MemoryStore) Supersede(oldID, newID string) error {
	res, err := s.db.Exec(`
		UPDATE conversation_memories
		SET is_active = 0, superseded_by = ?
		WHERE id = ?
	`, newID, oldID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("memory not found: %s", oldID)
	}
	return nil
}

// EmbeddingLookup resolves the vector for a memory whose local row carries
// none, e.g. a row synced from another device. nil when unresolvable.
type EmbeddingLookup func(memoryID string) []float64

// Search performs hybrid retrieval over a user's active memories.
// Each candidate is scored 0.5*similarity + 0.3*recency + 0.2*importance,
// with the components exposed on the result for downstream explanation.
func (s *MemoryStore) Search(userID string, queryEmbedding []float64, limit, recencyDays int, minImportance float64) ([]models.RetrievedMemory, error) {
	return s.SearchWithLookup(userID, queryEmbedding, limit, recencyDays, minImportance, nil)
}

// SearchWithLookup is Search with an optional fallback source for vectors
// missing from the local rows.
func (s *MemoryStore) SearchWithLookup(userID string, queryEmbedding []float64, limit, recencyDays int, minImportance float64, lookup EmbeddingLookup) ([]models.RetrievedMemory, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -recencyDays)

	rows, err := s.db.Query(memorySelect+`
		WHERE user_id = ? AND is_active = 1
		  AND importance_score >= ?
		  AND created_at >= ?
	`, userID, minImportance, cutoff)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	candidates, err := scanMemories(rows)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	window := float64(recencyDays) * 24 * float64(time.Hour)

	var results []models.RetrievedMemory
	for _, mem := range candidates {
		vec := mem.Embedding
		if len(vec) == 0 && lookup != nil {
			vec = lookup(mem.MemoryID)
		}
		similarity := CosineSimilarity(queryEmbedding, vec)
		recency := 1.0
		if window > 0 {
			recency = 1.0 - float64(now.Sub(mem.CreatedAt))/window
		}
		if recency < 0 {
			recency = 0
		}

		results = append(results, models.RetrievedMemory{
			Memory:        mem,
			Similarity:    similarity,
			RecencyWeight: recency,
			CombinedScore: weightSimilarity*similarity + weightRecency*recency + weightImportance*mem.ImportanceScore,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CombinedScore > results[j].CombinedScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// CountActive returns the number of active memories for a user
func (s *MemoryStore) CountActive(userID string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM conversation_memories
		WHERE user_id = ? AND is_active = 1
	`, userID).Scan(&count)
	return count, err
}

const memorySelect = `
	SELECT id, user_id, session_id, memory_type, memory_text, embedding,
	       source_excerpt, frameworks, issues, primary_affect, affect_intensity,
	       importance_score, is_active, superseded_by, created_at
	FROM conversation_memories`

// scanMemory scans one memory row via the given scan function
func scanMemory(scan func(dest ...interface{}) error) (*models.ConversationMemory, error) {
	var (
		mem          models.ConversationMemory
		sessionID    sql.NullString
		memType      string
		blob         []byte
		excerpt      sql.NullString
		frameworks   sql.NullString
		issues       sql.NullString
		affect       sql.NullString
		isActive     int
		supersededBy sql.NullString
	)

	err := scan(&mem.MemoryID, &mem.UserID, &sessionID, &memType, &mem.MemoryText, &blob,
		&excerpt, &frameworks, &issues, &affect, &mem.EmotionalContext.Intensity,
		&mem.ImportanceScore, &isActive, &supersededBy, &mem.CreatedAt)
	if err != nil {
		return nil, err
	}

	mem.MemoryType = models.MemoryType(memType)
	mem.SessionID = sessionID.String
	mem.SourceExcerpt = excerpt.String
	mem.EmotionalContext.PrimaryAffect = affect.String
	mem.IsActive = isActive != 0
	mem.SupersededBy = supersededBy.String
	if len(blob) > 0 {
		mem.Embedding = blobToVector(blob)
	}
	if frameworks.Valid {
		mem.Frameworks = decodeList(frameworks.String)
	}
	if issues.Valid {
		mem.Issues = decodeList(issues.String)
	}

	return &mem, nil
}

// scanMemories scans all rows into memories
func scanMemories(rows *sql.Rows) ([]models.ConversationMemory, error) {
	var memories []models.ConversationMemory
	for rows.Next() {
		mem, err := scanMemory(rows.Scan)
		if err != nil {
			return nil, err
		}
		memories = append(memories, *mem)
	}
	return memories, rows.Err()
}

// CosineSimilarity calculates cosine similarity between two vectors
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

// encodeList serializes a string list as JSON, empty lists as NULL
func encodeList(items []string) interface{} {
	if len(items) == 0 {
		return nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return string(data)
}

// decodeList deserializes a JSON string list, tolerating bad rows
func decodeList(data string) []string {
	if data == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil
	}
	return items
}

// nullString converts an empty string to sql.NullString
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// boolToInt converts a bool to SQLite's integer representation
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
