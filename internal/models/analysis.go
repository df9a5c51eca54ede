// ABOUTME: Intersectionality analysis types: priority stack, 2-Focus selection, strategy
// ABOUTME: Computed fresh per message, never persisted
package models

// PriorityEntry is one row of the priority stack for a domain under consideration
type PriorityEntry struct {
	Domain           string      `json:"domain"`
	PriorityScore    float64     `json:"priority_score"`
	MatchedIssues    []string    `json:"matched_issues,omitempty"`
	DominantTriage   TriageColor `json:"dominant_triage"`
	PrimaryFramework string      `json:"primary_framework,omitempty"`
}

// FocusSelection is the materialized choice of at most 2 frameworks for one domain
type FocusSelection struct {
	Domain     string       `json:"domain"`
	Frameworks []string     `json:"frameworks"`
	Approach   string       `json:"approach"`
	BestTier   EvidenceTier `json:"best_tier"`
}

// IntegrationBridge links two frameworks in different domains
type IntegrationBridge struct {
	FromFramework string `json:"from_framework"`
	ToFramework   string `json:"to_framework"`
	Concept       string `json:"concept"`
	Application   string `json:"application"`
}

// HomeworkType gates what growth assignments a response may carry
type HomeworkType string

const (
	HomeworkSingleFocus     HomeworkType = "single_focus"
	HomeworkDualIntegration HomeworkType = "dual_integration"
	HomeworkNone            HomeworkType = "none"
)

// ResponseStrategy is the derived, ephemeral plan for one response
type ResponseStrategy struct {
	OpeningFrame          string       `json:"opening_frame"`
	PrimaryIntervention   string       `json:"primary_intervention"`
	SecondaryIntervention string       `json:"secondary_intervention,omitempty"`
	IntegrationStatement  string       `json:"integration_statement,omitempty"`
	FollowUpFocus         string       `json:"follow_up_focus,omitempty"`
	Avoid                 []string     `json:"avoid,omitempty"`
	HomeworkType          HomeworkType `json:"homework_type"`
}

// IntersectionalityAnalysis is the full decision output for one message
type IntersectionalityAnalysis struct {
	PriorityStack    []PriorityEntry     `json:"priority_stack"`
	PrimaryFocus     *FocusSelection     `json:"primary_focus"`
	SecondaryFocus   *FocusSelection     `json:"secondary_focus,omitempty"`
	Bridges          []IntegrationBridge `json:"bridges,omitempty"`
	ResponseStrategy ResponseStrategy    `json:"response_strategy"`
	ComplexityScore  float64             `json:"complexity_score"`
	TriageColor      TriageColor         `json:"triage_color"`
}
