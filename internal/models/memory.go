// ABOUTME: ConversationMemory and SessionSummary persistence types
// ABOUTME: Memories are never hard-deleted, only superseded
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MemoryType is one of the 10 fixed kinds of extracted memory
type MemoryType string

const (
	MemoryInsight           MemoryType = "insight"
	MemoryBreakthrough      MemoryType = "breakthrough"
	MemorySetback           MemoryType = "setback"
	MemoryTechniqueTried    MemoryType = "technique_tried"
	MemoryPatternDetected   MemoryType = "pattern_detected"
	MemoryGoalSet           MemoryType = "goal_set"
	MemoryTriggerIdentified MemoryType = "trigger_identified"
	MemoryStrengthObserved  MemoryType = "strength_observed"
	MemoryContextRevealed   MemoryType = "context_revealed"
	MemoryHomeworkAssigned  MemoryType = "homework_assigned"
)

// EmotionalContext is a per-memory snapshot of the user's affect
type EmotionalContext struct {
	PrimaryAffect string  `json:"primary_affect,omitempty"`
	Intensity     float64 `json:"intensity,omitempty"`
}

// ConversationMemory is one durable fact extracted from a user's message
type ConversationMemory struct {
	MemoryID         string           `json:"memory_id"`
	UserID           string           `json:"user_id"`
	SessionID        string           `json:"session_id"`
	MemoryType       MemoryType       `json:"memory_type"`
	MemoryText       string           `json:"memory_text"`
	Embedding        []float64        `json:"embedding,omitempty"`
	SourceExcerpt    string           `json:"source_excerpt,omitempty"`
	Frameworks       []string         `json:"frameworks,omitempty"`
	Issues           []string         `json:"issues,omitempty"`
	EmotionalContext EmotionalContext `json:"emotional_context,omitempty"`
	ImportanceScore  float64          `json:"importance_score"`
	IsActive         bool             `json:"is_active"`
	SupersededBy     string           `json:"superseded_by,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// NewConversationMemory creates a memory with validation and a generated ID
func NewConversationMemory(userID, sessionID string, memType MemoryType, text string, importance float64) (*ConversationMemory, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("memory text cannot be empty")
	}
	if importance < 0 || importance > 1 {
		return nil, errors.New("importance score must be in [0,1]")
	}
	return &ConversationMemory{
		MemoryID:        "mem_" + uuid.New().String(),
		UserID:          userID,
		SessionID:       sessionID,
		MemoryType:      memType,
		MemoryText:      text,
		ImportanceScore: importance,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// RetrievedMemory is a ranked retrieval result with its score components exposed
type RetrievedMemory struct {
	Memory        ConversationMemory `json:"memory"`
	Similarity    float64            `json:"similarity"`
	RecencyWeight float64            `json:"recency_weight"`
	CombinedScore float64            `json:"combined_score"`
}

// SessionSummary is one row per closed conversation session
type SessionSummary struct {
	SummaryID        string        `json:"summary_id"`
	UserID           string        `json:"user_id"`
	SessionID        string        `json:"session_id"`
	SessionNumber    int           `json:"session_number"`
	Topics           []string      `json:"topics,omitempty"`
	Techniques       []string      `json:"techniques,omitempty"`
	Homework         []string      `json:"homework,omitempty"`
	AffectTrajectory []string      `json:"affect_trajectory,omitempty"`
	TriageColors     []TriageColor `json:"triage_colors,omitempty"`
	Breakthrough     string        `json:"breakthrough,omitempty"`
	MessageCount     int           `json:"message_count"`
	CreatedAt        time.Time     `json:"created_at"`
}
