// ABOUTME: UserProfile represents assessed relational context for personalization
// ABOUTME: Optional input to decomposition and cross-pillar detection
package models

import "time"

// UserProfile carries the user's assessed relational context
type UserProfile struct {
	UserID          string    `json:"user_id"`
	AttachmentStyle string    `json:"attachment_style,omitempty"`
	AssessedPattern string    `json:"assessed_pattern,omitempty"`
	KnownTriggers   []string  `json:"known_triggers,omitempty"`
	LifeStage       string    `json:"life_stage,omitempty"`
	CulturalContext []string  `json:"cultural_context,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

// AnalysisContext is the per-message context handed to the intersectionality engine
type AnalysisContext struct {
	LifeStage       string   `json:"life_stage"`
	DetectedIssues  []string `json:"detected_issues,omitempty"`
	CulturalContext []string `json:"cultural_context,omitempty"`
}
