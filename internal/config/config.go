// ABOUTME: Centralized configuration for the coaching decision pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the pipeline and its collaborators
type Config struct {
	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Pipeline tuning
	SecondaryFocusThreshold float64
	PassthroughWordLimit    int
	PillarDetectThreshold   float64
	PillarChunkThreshold    float64

	// Memory retrieval defaults
	RetrievalLimit  int
	RecencyDays     int
	MinImportance   float64
	VectorDimension int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:               getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:             getEnv("CHARM_DB", "relate-coach"),
		AutoSync:                getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:               os.Getenv("OPENAI_API_KEY"),
		ChatModel:               getEnv("COACH_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel:          getEnv("COACH_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:                 getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:              getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:              getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		SecondaryFocusThreshold: getEnvFloat("SECONDARY_FOCUS_THRESHOLD", 15),
		PassthroughWordLimit:    getEnvInt("PASSTHROUGH_WORD_LIMIT", 15),
		PillarDetectThreshold:   getEnvFloat("PILLAR_DETECT_THRESHOLD", 0.4),
		PillarChunkThreshold:    getEnvFloat("PILLAR_CHUNK_THRESHOLD", 0.6),
		RetrievalLimit:          getEnvInt("MEMORY_RETRIEVAL_LIMIT", 5),
		RecencyDays:             getEnvInt("MEMORY_RECENCY_DAYS", 90),
		MinImportance:           getEnvFloat("MEMORY_MIN_IMPORTANCE", 0.3),
		VectorDimension:         getEnvInt("VECTOR_DIMENSION", 1536),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.SecondaryFocusThreshold < 0 {
		return fmt.Errorf("SECONDARY_FOCUS_THRESHOLD must be >= 0, got %f", c.SecondaryFocusThreshold)
	}
	if c.PillarDetectThreshold < 0 || c.PillarDetectThreshold > 1 {
		return fmt.Errorf("PILLAR_DETECT_THRESHOLD must be 0-1, got %f", c.PillarDetectThreshold)
	}
	if c.PillarChunkThreshold < 0 || c.PillarChunkThreshold > 1 {
		return fmt.Errorf("PILLAR_CHUNK_THRESHOLD must be 0-1, got %f", c.PillarChunkThreshold)
	}
	if c.MinImportance < 0 || c.MinImportance > 1 {
		return fmt.Errorf("MEMORY_MIN_IMPORTANCE must be 0-1, got %f", c.MinImportance)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetrievalLimit <= 0 {
		return fmt.Errorf("MEMORY_RETRIEVAL_LIMIT must be positive, got %d", c.RetrievalLimit)
	}
	if c.RecencyDays <= 0 {
		return fmt.Errorf("MEMORY_RECENCY_DAYS must be positive, got %d", c.RecencyDays)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
