// ABOUTME: Framework and FrameworkDomain reference types for the coaching catalog
// ABOUTME: Static metadata consumed by the decision pipeline, never mutated at runtime
package models

// EvidenceTier rates how well-supported a therapeutic framework is
type EvidenceTier string

const (
	TierGold   EvidenceTier = "gold"
	TierSilver EvidenceTier = "silver"
	TierBronze EvidenceTier = "bronze"
	TierCopper EvidenceTier = "copper"
)

// TriageColor is the 4-level safety classification gating coaching behavior
type TriageColor string

const (
	TriageRed    TriageColor = "red"
	TriageOrange TriageColor = "orange"
	TriageYellow TriageColor = "yellow"
	TriageGreen  TriageColor = "green"
)

// FrameworkDomain is one of the 10 fixed framework categories
type FrameworkDomain struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	BasePriority float64  `json:"base_priority"`
	Frameworks   []string `json:"frameworks"`
}

// Framework is a named therapeutic/psychoeducational model with its metadata
type Framework struct {
	Name              string       `json:"name"`
	Domain            string       `json:"domain"`
	Tier              EvidenceTier `json:"tier"`
	DefaultTriage     TriageColor  `json:"default_triage"`
	Contraindications []string     `json:"contraindications,omitempty"`
	CulturalFlags     []string     `json:"cultural_flags,omitempty"`
	IntegrationPoints []string     `json:"integration_points,omitempty"`
	IssueTypes        []string     `json:"issue_types,omitempty"`
	LifeStages        []string     `json:"life_stages,omitempty"`
}

// AddressesIssue reports whether the framework covers the given issue type
func (f *Framework) AddressesIssue(issue string) bool {
	for _, it := range f.IssueTypes {
		if it == issue {
			return true
		}
	}
	return false
}

// AppliesToLifeStage reports whether the framework covers the given life stage
func (f *Framework) AppliesToLifeStage(stage string) bool {
	for _, ls := range f.LifeStages {
		if ls == stage {
			return true
		}
	}
	return false
}
