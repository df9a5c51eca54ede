// ABOUTME: Embedding vector type for the cloud-synced memory mirror
// ABOUTME: Vectors are keyed by the memory they were generated from
package models

import "time"

// Embedding is a stored vector for one conversation memory
type Embedding struct {
	MemoryID  string    `json:"memory_id"`
	UserID    string    `json:"user_id"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}
