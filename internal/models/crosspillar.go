// ABOUTME: Cross-pillar detection types for root-cause mismatch analysis
// ABOUTME: Covers the 5 life pillars and externally stored trigger rows
package models

// Pillar is one of the five life domains used for root-cause detection
type Pillar string

const (
	PillarRelational Pillar = "relational"
	PillarPhysical   Pillar = "physical"
	PillarFinancial  Pillar = "financial"
	PillarMental     Pillar = "mental"
	PillarSpiritual  Pillar = "spiritual"
)

// PillarSignal is one scored pillar with its matched evidence
type PillarSignal struct {
	Pillar     Pillar   `json:"pillar"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence,omitempty"`
}

// TriggerMatch is one matched row from the external trigger table
type TriggerMatch struct {
	TriggerID         string   `json:"trigger_id"`
	PresentingSymptom string   `json:"presenting_symptom"`
	RootCause         string   `json:"root_cause"`
	MatchedKeywords   []string `json:"matched_keywords"`
	AffectedPillars   []Pillar `json:"affected_pillars,omitempty"`
}

// CrossPillarSignals is the detector's full output for one message
type CrossPillarSignals struct {
	DetectedPillars         []PillarSignal `json:"detected_pillars"`
	PrimaryPillar           Pillar         `json:"primary_pillar"`
	RootCauseHypothesis     string         `json:"root_cause_hypothesis,omitempty"`
	CrossPillarChunksNeeded bool           `json:"cross_pillar_chunks_needed"`
	TriggerMatches          []TriggerMatch `json:"trigger_matches,omitempty"`
}

// CrossPillarTrigger is one queryable trigger row (stored externally, filterable by IsActive)
type CrossPillarTrigger struct {
	TriggerID          string   `json:"trigger_id"`
	Keywords           []string `json:"keywords"`
	AffectedPillars    []Pillar `json:"affected_pillars"`
	PresentingSymptom  string   `json:"presenting_symptom"`
	RootCause          string   `json:"root_cause"`
	RecommendedDomains []string `json:"recommended_domains,omitempty"`
	IsActive           bool     `json:"is_active"`
}
