// ABOUTME: Query decomposition types for splitting one message into sub-queries
// ABOUTME: Capped at 4 sub-queries, one per retrieval domain
package models

// DecompositionMethod records which decomposition path produced the result
type DecompositionMethod string

const (
	// MethodRuleBased - regex signal table produced the sub-queries
	MethodRuleBased DecompositionMethod = "rule_based"

	// MethodLLM - LLM refinement pass produced the sub-queries
	MethodLLM DecompositionMethod = "llm"

	// MethodPassthrough - no decomposition, use the original message as the sole query
	MethodPassthrough DecompositionMethod = "passthrough"
)

// MaxSubQueries caps decomposition output per message
const MaxSubQueries = 4

// SubQuery is one domain-targeted retrieval query derived from the message
type SubQuery struct {
	Query        string `json:"query"`
	TargetDomain string `json:"target_domain"`
	Reason       string `json:"reason,omitempty"`
}

// DecompositionResult is the full output of the query decomposer
type DecompositionResult struct {
	SubQueries    []SubQuery          `json:"sub_queries"`
	IsComplex     bool                `json:"is_complex"`
	Method        DecompositionMethod `json:"method"`
	OriginalQuery string              `json:"original_query"`
}
