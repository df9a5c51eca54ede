// ABOUTME: Vector storage with Charm KV backend for cross-device recall
// ABOUTME: Mirrors memory embeddings to the cloud and serves them back to search
package storage

import (
	"fmt"
	"time"

	"github.com/purposewaze/relate-coach/internal/charm"
	"github.com/purposewaze/relate-coach/internal/models"
)

// Expected embedding dimension for OpenAI text-embedding-3-small
const ExpectedEmbeddingDimension = 1536

// SkipDimensionValidation can be set to true in tests to allow smaller vectors
var SkipDimensionValidation = false

// KV is the subset of the charm client the cloud mirrors depend on.
// *charm.Client satisfies it.
type KV interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	SetJSON(key string, value interface{}) error
	GetJSON(key string, dest interface{}) error
}

// VectorStorage manages embedding storage in Charm KV
type VectorStorage struct {
	kv KV
}

// NewVectorStorage creates a new VectorStorage instance with Charm backend
func NewVectorStorage(kv KV) (*VectorStorage, error) {
	return &VectorStorage{
		kv: kv,
	}, nil
}

// SaveEmbedding saves an embedding vector to Charm KV
func (vs *VectorStorage) SaveEmbedding(memoryID, userID string, vector []float64) error {
	if !SkipDimensionValidation && len(vector) != ExpectedEmbeddingDimension {
		return fmt.Errorf("invalid embedding dimension: expected %d, got %d", ExpectedEmbeddingDimension, len(vector))
	}

	embedding := models.Embedding{
		MemoryID:  memoryID,
		UserID:    userID,
		Vector:    vector,
		CreatedAt: time.Now(),
	}

	key := charm.EmbeddingKey(memoryID)
	return vs.kv.SetJSON(key, embedding)
}

// GetEmbedding retrieves a stored embedding; errors when the key is absent
func (vs *VectorStorage) GetEmbedding(memoryID string) (*models.Embedding, error) {
	var emb models.Embedding
	if err := vs.kv.GetJSON(charm.EmbeddingKey(memoryID), &emb); err != nil {
		return nil, err
	}
	return &emb, nil
}
