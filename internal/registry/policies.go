// ABOUTME: Evidence-tier weights, triage-color policies, and issue-priority bonuses
// ABOUTME: Magic constants here are empirically tuned cutoffs, not derived policy
package registry

import "github.com/purposewaze/relate-coach/internal/models"

var tierWeights = map[models.EvidenceTier]float64{
	models.TierGold:   1.0,
	models.TierSilver: 0.75,
	models.TierBronze: 0.5,
	models.TierCopper: 0.25,
}

// ColorPolicy gates response behavior for one triage color
type ColorPolicy struct {
	Severity       int
	AllowHomework  bool
	AllowReframe   bool
	SafetyPreamble string
	OpeningFrame   string
}

var triagePolicies = map[models.TriageColor]ColorPolicy{
	models.TriageRed: {
		Severity:       3,
		AllowHomework:  false,
		AllowReframe:   false,
		SafetyPreamble: "Before anything else: if you are in immediate danger, please contact emergency services or a crisis line. What you describe is serious and your safety comes first.",
		OpeningFrame:   "Acknowledge the crisis directly and slow everything down. Do not coach toward growth until safety is established.",
	},
	models.TriageOrange: {
		Severity:       2,
		AllowHomework:  false,
		AllowReframe:   false,
		SafetyPreamble: "What you are describing deserves support beyond coaching. A licensed professional can help with this, and I can help you think about finding one.",
		OpeningFrame:   "Validate what they shared, recommend professional referral, and stay with their experience rather than pushing forward.",
	},
	models.TriageYellow: {
		Severity:      1,
		AllowHomework: true,
		AllowReframe:  true,
		OpeningFrame:  "Coach with monitoring: engage the issue while watching for escalation signals in their responses.",
	},
	models.TriageGreen: {
		Severity:      0,
		AllowHomework: true,
		AllowReframe:  true,
		OpeningFrame:  "Affirm the growth orientation of the question and engage fully with practical coaching.",
	},
}

// issuePriorities are per-issue score bonuses for the priority stack.
// Safety-adjacent issues carry the highest bonuses so they dominate stacking.
var issuePriorities = map[string]float64{
	"abuse":                   25,
	"coercive_control":        25,
	"acute_crisis":            25,
	"addiction":               20,
	"partner_addiction":       18,
	"trauma":                  18,
	"childhood_trauma":        15,
	"infidelity":              15,
	"betrayal":                14,
	"financial_infidelity":    12,
	"online_infidelity":       10,
	"trust_erosion":           10,
	"attachment_injury":       8,
	"emotional_dysregulation": 8,
	"sexual_disconnection":    8,
	"desire_discrepancy":      7,
	"financial_stress":        7,
	"provider_pressure":       6,
	"parenting_conflict":      6,
	"coparenting":             6,
	"anxious_attachment":      6,
	"avoidant_attachment":     6,
	"isolation":               6,
	"in_law_conflict":         5,
	"conflict":                5,
	"communication_breakdown": 5,
	"emotional_distance":      4,
	"digital_conflict":        3,
}
