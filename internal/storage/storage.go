// ABOUTME: Unified Storage layer that wraps the SQLite stores
// ABOUTME: Optionally mirrors embeddings and profiles to Charm KV
package storage

import (
	"fmt"
	"log"
	"sync"

	"github.com/purposewaze/relate-coach/internal/models"
)

// Storage manages all persistent data for the coaching pipeline
type Storage struct {
	db        *DB
	memories  *MemoryStore
	summaries *SummaryStore
	triggers  *TriggerStore
	vector    *VectorStorage
	profiles  *ProfileStore
	mu        sync.RWMutex
}

// NewStorage initializes storage at the default database path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db)
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db)
}

func newStorage(db *DB) (*Storage, error) {
	s := &Storage{
		db:        db,
		memories:  NewMemoryStore(db),
		summaries: NewSummaryStore(db),
		triggers:  NewTriggerStore(db),
	}

	if err := s.triggers.SeedDefaults(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed triggers: %w", err)
	}

	return s, nil
}

// EnableCharmSync attaches a Charm KV client so embeddings and profiles
// sync to the cloud. Mirror failures are logged, never fatal.
func (s *Storage) EnableCharmSync(kv KV) error {
	vs, err := NewVectorStorage(kv)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.vector = vs
	s.profiles = NewProfileStore(kv)
	return nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// DB returns the underlying database wrapper
func (s *Storage) DB() *DB {
	return s.db
}

// Memories returns the memory store
func (s *Storage) Memories() *MemoryStore {
	return s.memories
}

// Summaries returns the summary store
func (s *Storage) Summaries() *SummaryStore {
	return s.summaries
}

// Triggers returns the trigger store
func (s *Storage) Triggers() *TriggerStore {
	return s.triggers
}

// Profiles returns the charm-backed profile store, nil unless charm sync is enabled
func (s *Storage) Profiles() *ProfileStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles
}

// InsertMemory persists a memory and mirrors its embedding to Charm KV
func (s *Storage) InsertMemory(mem *models.ConversationMemory) error {
	if err := s.memories.Save(mem); err != nil {
		return err
	}

	s.mu.RLock()
	vector := s.vector
	s.mu.RUnlock()

	if vector != nil && len(mem.Embedding) > 0 {
		if err := vector.SaveEmbedding(mem.MemoryID, mem.UserID, mem.Embedding); err != nil {
			log.Printf("[Storage] Failed to mirror embedding for %s: %v", mem.MemoryID, err)
		}
	}
	return nil
}

// SearchMemories performs hybrid retrieval over a user's active memories.
// When charm sync is enabled, rows that lack a local vector (synced in from
// another device) are scored from the Charm embedding mirror.
func (s *Storage) SearchMemories(userID string, queryEmbedding []float64, limit, recencyDays int, minImportance float64) ([]models.RetrievedMemory, error) {
	s.mu.RLock()
	vector := s.vector
	s.mu.RUnlock()

	var lookup EmbeddingLookup
	if vector != nil {
		lookup = func(memoryID string) []float64 {
			emb, err := vector.GetEmbedding(memoryID)
			if err != nil || emb == nil {
				return nil
			}
			return emb.Vector
		}
	}
	return s.memories.SearchWithLookup(userID, queryEmbedding, limit, recencyDays, minImportance, lookup)
}

// SupersedeMemory deactivates an old memory in favor of a new one
func (s *Storage) SupersedeMemory(oldID, newID string) error {
	return s.memories.Supersede(oldID, newID)
}

// LatestSessionSummary returns the most recent summary for a user
func (s *Storage) LatestSessionSummary(userID string) (*models.SessionSummary, error) {
	return s.summaries.Latest(userID)
}

// NextSessionNumber returns the session number the next close should use
func (s *Storage) NextSessionNumber(userID string) (int, error) {
	return s.summaries.NextSessionNumber(userID)
}

// InsertSessionSummary persists a closed session's summary
func (s *Storage) InsertSessionSummary(summary *models.SessionSummary) error {
	return s.summaries.Save(summary)
}

// ActiveTriggers returns all active cross-pillar trigger rows
func (s *Storage) ActiveTriggers() ([]models.CrossPillarTrigger, error) {
	return s.triggers.Active()
}
