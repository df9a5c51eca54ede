// ABOUTME: Pipeline orchestrates the full per-message decision flow
// ABOUTME: Runs decomposition, cross-pillar detection, and retrieval concurrently
package core

import (
	"log"
	"sync"

	"github.com/purposewaze/relate-coach/internal/memory"
	"github.com/purposewaze/relate-coach/internal/models"
)

// PipelineResult is everything the pipeline derives from one message
type PipelineResult struct {
	Decomposition   models.DecompositionResult        `json:"decomposition"`
	Signals         models.CrossPillarSignals         `json:"signals"`
	Analysis        *models.IntersectionalityAnalysis `json:"analysis"`
	Memories        []models.RetrievedMemory          `json:"memories,omitempty"`
	MemoryContext   string                            `json:"memory_context,omitempty"`
	ComposedContext string                            `json:"composed_context"`
}

// Pipeline wires the decision components together for one-call analysis
type Pipeline struct {
	decomposer *Decomposer
	detector   *CrossPillarDetector
	engine     *IntersectionalityEngine
	composer   *ContextComposer
	memory     *memory.Engine
	retrieveN  int

	// recorderMu serializes Add against Wait so the recorder can be
	// drained repeatedly while still accepting new work.
	recorderMu sync.Mutex
	recorderWg sync.WaitGroup
	closed     bool
}

// NewPipeline creates a pipeline. memoryEngine may be nil when no store
// is configured; analysis then runs without conversational recall.
func NewPipeline(decomposer *Decomposer, detector *CrossPillarDetector, engine *IntersectionalityEngine, memoryEngine *memory.Engine, retrievalLimit int) *Pipeline {
	if retrievalLimit <= 0 {
		retrievalLimit = memory.DefaultRetrievalLimit
	}
	return &Pipeline{
		decomposer: decomposer,
		detector:   detector,
		engine:     engine,
		composer:   NewContextComposer(),
		memory:     memoryEngine,
		retrieveN:  retrievalLimit,
	}
}

// Analyze runs the full decision flow for one user message. Decomposition,
// cross-pillar detection, and memory retrieval are independent and run
// concurrently; the intersectionality pass needs all three and runs after.
func (p *Pipeline) Analyze(userID, message string, profile *models.UserProfile, triage *models.TriageDecision, affect *models.EmotionalContext) (*PipelineResult, error) {
	result := &PipelineResult{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result.Decomposition = p.decomposer.Decompose(message, profile)
	}()

	go func() {
		defer wg.Done()
		result.Signals = p.detector.Detect(message, profile, affect)
	}()

	if p.memory != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memories, err := p.memory.Retrieve(userID, message, p.retrieveN)
			if err != nil {
				// Retrieval is enrichment, not a gate
				log.Printf("[Pipeline] Memory retrieval failed for %s: %v", userID, err)
				return
			}
			result.Memories = memories
		}()
	}

	wg.Wait()

	if p.memory != nil {
		result.MemoryContext = p.memory.FormatContext(userID, result.Memories)
	}

	result.Analysis = p.engine.Analyze(triage, p.analysisContext(profile, triage))
	result.ComposedContext = p.composer.Compose(&result.Signals, result.Analysis, triage, result.MemoryContext)

	return result, nil
}

// RecordExchange extracts and stores memories from a message in the
// background. Safe to call fire-and-forget; Drain or Shutdown collect
// the work. Calls after Shutdown are dropped.
func (p *Pipeline) RecordExchange(userID, sessionID, message string) {
	if p.memory == nil {
		return
	}

	p.recorderMu.Lock()
	if p.closed {
		p.recorderMu.Unlock()
		return
	}
	p.recorderWg.Add(1)
	p.recorderMu.Unlock()

	go func() {
		defer p.recorderWg.Done()
		stored := p.memory.ExtractAndStore(userID, sessionID, message)
		if len(stored) > 0 {
			log.Printf("[Pipeline] Stored %d memories for %s", len(stored), userID)
		}
	}()
}

// Drain waits for in-flight background extraction to complete. The
// recorder stays open; new exchanges may be recorded afterwards.
func (p *Pipeline) Drain() {
	p.recorderMu.Lock()
	defer p.recorderMu.Unlock()
	p.recorderWg.Wait()
}

// Shutdown drains the recorder and stops accepting new work
func (p *Pipeline) Shutdown() {
	p.recorderMu.Lock()
	defer p.recorderMu.Unlock()
	p.closed = true
	p.recorderWg.Wait()
}

// analysisContext assembles the per-message context for the
// intersectionality engine from the profile and triage verdict
func (p *Pipeline) analysisContext(profile *models.UserProfile, triage *models.TriageDecision) *models.AnalysisContext {
	ctx := &models.AnalysisContext{}
	if profile != nil {
		ctx.LifeStage = profile.LifeStage
		ctx.CulturalContext = profile.CulturalContext
	}
	if triage != nil {
		ctx.DetectedIssues = triage.SearchParams.FilterIssueTypes
	}
	return ctx
}
