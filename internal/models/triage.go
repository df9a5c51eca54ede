// ABOUTME: TriageDecision carries the upstream safety classifier's verdict
// ABOUTME: Consumed by the intersectionality engine, never produced in this repo
package models

// SearchParams narrows knowledge-base retrieval for a triage decision
type SearchParams struct {
	FilterIssueTypes []string `json:"filter_issue_types,omitempty"`
	FilterDomains    []string `json:"filter_domains,omitempty"`
	MaxChunks        int      `json:"max_chunks,omitempty"`
}

// ResponseTemplate flags what response behavior the triage level permits
type ResponseTemplate struct {
	AllowHomework  bool   `json:"allow_homework"`
	AllowReframe   bool   `json:"allow_reframe"`
	SafetyPreamble string `json:"safety_preamble,omitempty"`
}

// TriageDecision is the authoritative safety verdict for one incoming message.
// ExcludedFrameworks and ActiveContraindications must be honored by every
// downstream component.
type TriageDecision struct {
	TriageColor             TriageColor      `json:"triage_color"`
	RecommendedDomains      []string         `json:"recommended_domains"`
	RecommendedFrameworks   []string         `json:"recommended_frameworks,omitempty"`
	ExcludedFrameworks      []string         `json:"excluded_frameworks,omitempty"`
	ActiveContraindications []string         `json:"active_contraindications,omitempty"`
	Confidence              float64          `json:"confidence"`
	SearchParams            SearchParams     `json:"search_params"`
	ResponseTemplate        ResponseTemplate `json:"response_template"`
}

// IsExcluded reports whether a framework name is on the exclusion list
func (td *TriageDecision) IsExcluded(framework string) bool {
	for _, ex := range td.ExcludedFrameworks {
		if ex == framework {
			return true
		}
	}
	return false
}
