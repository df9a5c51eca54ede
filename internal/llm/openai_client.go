// ABOUTME: OpenAI client for embeddings and LLM-based query decomposition
// ABOUTME: Uses text-embedding-3-small for embeddings, gpt-4o-mini for decomposition (configurable)
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/purposewaze/relate-coach/internal/models"
	"github.com/purposewaze/relate-coach/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel openai.EmbeddingModel
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("COACH_OPENAI_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      chatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		MaxRetries:     3,
		RetryDelay:     time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	maxRetries     int
	retryDelay     time.Duration
}

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(config.APIKey)

	return &OpenAIClient{
		client:         client,
		chatModel:      config.ChatModel,
		embeddingModel: config.EmbeddingModel,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// GetClient returns the underlying OpenAI client for direct use
func (c *OpenAIClient) GetClient() *openai.Client {
	return c.client
}

// GenerateEmbedding generates a 1536-dimensional embedding vector using text-embedding-3-small
func (c *OpenAIClient) GenerateEmbedding(text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

		resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		// Convert []float32 to []float64
		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}

		cancel()
		return embedding64, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}

// DecomposeQuery asks the chat model to split a message into domain-targeted
// sub-queries. Callers must treat any error or empty result as a signal to fall
// back to rule-based decomposition.
func (c *OpenAIClient) DecomposeQuery(message string, domains []string) ([]models.SubQuery, error) {
	systemPrompt := fmt.Sprintf(`You are a query decomposition assistant for a relationship coaching system. Split the user's message into at most %d retrieval sub-queries.

Valid target domains: %s

For each sub-query provide:
- query: a focused search query for that aspect of the message
- target_domain: one of the valid domains
- reason: one short sentence on why this aspect matters

Return ONLY a JSON array of sub-query objects. Never repeat a target_domain.`,
		models.MaxSubQueries, jsonList(domains))

	userPrompt := fmt.Sprintf("Decompose this message:\n\n%s", message)

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.2, // Low temperature for consistent decomposition
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		content := resp.Choices[0].Message.Content

		var subQueries []models.SubQuery
		if err := json.Unmarshal([]byte(content), &subQueries); err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: failed to parse JSON: %w", attempt+1, err)
			continue
		}

		if len(subQueries) > models.MaxSubQueries {
			subQueries = subQueries[:models.MaxSubQueries]
		}

		cancel()
		return subQueries, nil
	}

	return nil, fmt.Errorf("failed to decompose query after %d attempts: %w", c.maxRetries+1, lastErr)
}

func jsonList(items []string) string {
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
