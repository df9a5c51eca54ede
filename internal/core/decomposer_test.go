// ABOUTME: Tests for rule-based query decomposition and the optional LLM pass
// ABOUTME: Uses a fake LLMDecomposer to exercise refinement and fallback paths
package core

import (
	"errors"
	"testing"

	"github.com/purposewaze/relate-coach/internal/models"
)

type fakeLLM struct {
	result []models.SubQuery
	err    error
	calls  int
}

func (f *fakeLLM) DecomposeQuery(message string, domains []string) ([]models.SubQuery, error) {
	f.calls++
	return f.result, f.err
}

func TestDecompose_MultiDomain(t *testing.T) {
	d := NewDecomposer(nil)
	result := d.Decompose("We fight about money constantly and then he shuts down for days", nil)

	if result.Method != models.MethodRuleBased {
		t.Errorf("Method = %s, want %s", result.Method, models.MethodRuleBased)
	}
	if !result.IsComplex {
		t.Error("IsComplex = false, want true")
	}
	if len(result.SubQueries) != 2 {
		t.Fatalf("len(SubQueries) = %d, want 2", len(result.SubQueries))
	}

	// Signal table order puts financial before communication
	if result.SubQueries[0].TargetDomain != "financial_mens" {
		t.Errorf("SubQueries[0].TargetDomain = %s, want financial_mens", result.SubQueries[0].TargetDomain)
	}
	if result.SubQueries[1].TargetDomain != "communication_conflict" {
		t.Errorf("SubQueries[1].TargetDomain = %s, want communication_conflict", result.SubQueries[1].TargetDomain)
	}
}

func TestDecompose_Passthrough(t *testing.T) {
	d := NewDecomposer(nil)
	result := d.Decompose("How do I plan a nice date night?", nil)

	if result.Method != models.MethodPassthrough {
		t.Errorf("Method = %s, want %s", result.Method, models.MethodPassthrough)
	}
	if len(result.SubQueries) != 0 {
		t.Errorf("len(SubQueries) = %d, want 0", len(result.SubQueries))
	}
	if result.OriginalQuery != "How do I plan a nice date night?" {
		t.Errorf("OriginalQuery = %q", result.OriginalQuery)
	}
}

func TestDecompose_SingleSignalLongMessage(t *testing.T) {
	d := NewDecomposer(nil)
	msg := "My wife and I have been arguing a lot lately and I really do not know " +
		"what to do about it anymore because nothing seems to work"
	result := d.Decompose(msg, nil)

	if result.Method != models.MethodRuleBased {
		t.Errorf("Method = %s, want %s", result.Method, models.MethodRuleBased)
	}
	if result.IsComplex {
		t.Error("IsComplex = true, want false for a single-domain message")
	}
	if len(result.SubQueries) != 1 {
		t.Fatalf("len(SubQueries) = %d, want 1", len(result.SubQueries))
	}
	if result.SubQueries[0].TargetDomain != "communication_conflict" {
		t.Errorf("TargetDomain = %s, want communication_conflict", result.SubQueries[0].TargetDomain)
	}
}

func TestDecompose_CapAndSafetyFirst(t *testing.T) {
	d := NewDecomposer(nil)
	// Hits abuse, trauma, addiction, trust, financial, communication: six signals
	msg := "He gets abusive when drinking, I have trauma from it, I cannot trust " +
		"him anymore, we are in debt, and every conversation turns into a fight"
	result := d.Decompose(msg, nil)

	if len(result.SubQueries) != models.MaxSubQueries {
		t.Fatalf("len(SubQueries) = %d, want %d", len(result.SubQueries), models.MaxSubQueries)
	}

	seen := make(map[string]bool)
	for _, sq := range result.SubQueries {
		if seen[sq.TargetDomain] {
			t.Errorf("duplicate target domain %s", sq.TargetDomain)
		}
		seen[sq.TargetDomain] = true
	}

	// Safety-first ordering keeps abuse at the head and drops the later rows
	if result.SubQueries[0].TargetDomain != "abuse_narcissism" {
		t.Errorf("SubQueries[0].TargetDomain = %s, want abuse_narcissism", result.SubQueries[0].TargetDomain)
	}
	if seen["communication_conflict"] {
		t.Error("communication_conflict should be dropped past the cap")
	}
}

func TestDecompose_ProfileAdditions(t *testing.T) {
	d := NewDecomposer(nil)
	profile := &models.UserProfile{
		AssessedPattern: "pursue-withdraw",
		KnownTriggers:   []string{"criticism", "silence"},
	}
	msg := "We had another fight last night and I said things I regret saying to her"
	result := d.Decompose(msg, profile)

	if len(result.SubQueries) != 3 {
		t.Fatalf("len(SubQueries) = %d, want 3", len(result.SubQueries))
	}
	if result.SubQueries[1].TargetDomain != TargetAssessedPattern {
		t.Errorf("SubQueries[1].TargetDomain = %s, want %s", result.SubQueries[1].TargetDomain, TargetAssessedPattern)
	}
	if result.SubQueries[2].TargetDomain != TargetKnownTriggers {
		t.Errorf("SubQueries[2].TargetDomain = %s, want %s", result.SubQueries[2].TargetDomain, TargetKnownTriggers)
	}
}

func TestDecompose_ProfileAdditionsRespectCap(t *testing.T) {
	d := NewDecomposer(nil)
	profile := &models.UserProfile{AssessedPattern: "pursue-withdraw"}
	msg := "He gets abusive when drinking, I have trauma from it, I cannot trust " +
		"him, and we are drowning in debt"
	result := d.Decompose(msg, profile)

	if len(result.SubQueries) != models.MaxSubQueries {
		t.Fatalf("len(SubQueries) = %d, want %d", len(result.SubQueries), models.MaxSubQueries)
	}
	for _, sq := range result.SubQueries {
		if sq.TargetDomain == TargetAssessedPattern {
			t.Error("profile addition should be dropped when the cap is reached")
		}
	}
}

func TestDecompose_LLMRefinement(t *testing.T) {
	llm := &fakeLLM{result: []models.SubQuery{
		{Query: "money fights as perpetual problem", TargetDomain: "financial_mens", Reason: "refined"},
		{Query: "stonewalling after conflict", TargetDomain: "communication_conflict", Reason: "refined"},
	}}
	d := NewDecomposer(llm)
	result := d.Decompose("We fight about money constantly and then he shuts down for days", nil)

	if llm.calls != 1 {
		t.Errorf("llm.calls = %d, want 1", llm.calls)
	}
	if result.Method != models.MethodLLM {
		t.Errorf("Method = %s, want %s", result.Method, models.MethodLLM)
	}
	if len(result.SubQueries) != 2 {
		t.Fatalf("len(SubQueries) = %d, want 2", len(result.SubQueries))
	}
	if result.SubQueries[0].Query != "money fights as perpetual problem" {
		t.Errorf("SubQueries[0].Query = %q", result.SubQueries[0].Query)
	}
}

func TestDecompose_LLMFailureFallsBack(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	d := NewDecomposer(llm)
	result := d.Decompose("We fight about money constantly and then he shuts down for days", nil)

	if result.Method != models.MethodRuleBased {
		t.Errorf("Method = %s, want %s after LLM failure", result.Method, models.MethodRuleBased)
	}
	if len(result.SubQueries) != 2 {
		t.Errorf("len(SubQueries) = %d, want 2 rule-based sub-queries", len(result.SubQueries))
	}
}

func TestDecompose_LLMSkippedForSingleDomain(t *testing.T) {
	llm := &fakeLLM{result: []models.SubQuery{{Query: "x", TargetDomain: "y"}}}
	d := NewDecomposer(llm)
	msg := "My wife and I have been arguing a lot lately and I really do not know " +
		"what to do about it anymore"
	d.Decompose(msg, nil)

	if llm.calls != 0 {
		t.Errorf("llm.calls = %d, want 0 for single-domain message", llm.calls)
	}
}

func TestDecompose_LLMTruncatesOversizedResult(t *testing.T) {
	llm := &fakeLLM{result: []models.SubQuery{
		{Query: "a", TargetDomain: "financial_mens"},
		{Query: "b", TargetDomain: "communication_conflict"},
		{Query: "c", TargetDomain: "foundation_attachment"},
		{Query: "d", TargetDomain: "trust_betrayal"},
		{Query: "e", TargetDomain: "intimacy_sexuality"},
	}}
	d := NewDecomposer(llm)
	result := d.Decompose("We fight about money constantly and then he shuts down for days", nil)

	if len(result.SubQueries) != models.MaxSubQueries {
		t.Errorf("len(SubQueries) = %d, want %d", len(result.SubQueries), models.MaxSubQueries)
	}
}
