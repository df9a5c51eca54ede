// ABOUTME: ContextComposer renders the decision pipeline output into one markdown block
// ABOUTME: The block is appended to the system prompt; it is the sole artifact the LLM caller consumes
package core

import (
	"fmt"
	"strings"

	"github.com/purposewaze/relate-coach/internal/models"
	"github.com/purposewaze/relate-coach/internal/registry"
)

// ContextComposer assembles the per-response context block
type ContextComposer struct{}

// NewContextComposer creates a new ContextComposer
func NewContextComposer() *ContextComposer {
	return &ContextComposer{}
}

// Compose concatenates cross-pillar findings, the intersectionality strategy,
// and memory context into a single markdown block
func (cc *ContextComposer) Compose(signals *models.CrossPillarSignals, analysis *models.IntersectionalityAnalysis, triage *models.TriageDecision, memoryContext string) string {
	var sections []string

	if signals != nil {
		if s := cc.formatCrossPillar(signals); s != "" {
			sections = append(sections, s)
		}
	}
	if analysis != nil && triage != nil {
		sections = append(sections, cc.FormatAnalysis(analysis, triage))
	}
	if memoryContext != "" {
		sections = append(sections, memoryContext)
	}

	return strings.Join(sections, "\n")
}

// formatCrossPillar renders detected pillars and the root-cause hypothesis
func (cc *ContextComposer) formatCrossPillar(signals *models.CrossPillarSignals) string {
	if len(signals.DetectedPillars) == 0 && signals.RootCauseHypothesis == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Cross-Pillar Signals\n")
	sb.WriteString(fmt.Sprintf("Primary pillar: %s\n", signals.PrimaryPillar))

	for _, sig := range signals.DetectedPillars {
		sb.WriteString(fmt.Sprintf("- %s (confidence %.2f)", sig.Pillar, sig.Confidence))
		if len(sig.Evidence) > 0 {
			sb.WriteString(fmt.Sprintf(": %s", strings.Join(sig.Evidence, ", ")))
		}
		sb.WriteString("\n")
	}

	if signals.RootCauseHypothesis != "" {
		sb.WriteString(fmt.Sprintf("Root-cause hypothesis: %s\n", signals.RootCauseHypothesis))
	}

	return sb.String()
}

// FormatAnalysis renders the full intersectionality analysis as markdown
func (cc *ContextComposer) FormatAnalysis(analysis *models.IntersectionalityAnalysis, triage *models.TriageDecision) string {
	var sb strings.Builder
	policy := registry.TriagePolicy(triage.TriageColor)

	sb.WriteString("## Response Guidance\n")
	sb.WriteString(fmt.Sprintf("Triage level: %s | Complexity: %.1f/10\n", triage.TriageColor, analysis.ComplexityScore))

	if triage.ResponseTemplate.SafetyPreamble != "" {
		sb.WriteString(fmt.Sprintf("\nMANDATORY PREAMBLE:\n%s\n", triage.ResponseTemplate.SafetyPreamble))
	} else if policy.SafetyPreamble != "" {
		sb.WriteString(fmt.Sprintf("\nMANDATORY PREAMBLE:\n%s\n", policy.SafetyPreamble))
	}

	if analysis.PrimaryFocus != nil {
		sb.WriteString(cc.formatFocus("Primary focus", analysis.PrimaryFocus))
	}
	if analysis.SecondaryFocus != nil {
		sb.WriteString(cc.formatFocus("Secondary focus", analysis.SecondaryFocus))
	}

	for _, bridge := range analysis.Bridges {
		sb.WriteString(fmt.Sprintf("\nIntegration bridge (%s): %s\n", bridge.Concept, bridge.Application))
	}

	sb.WriteString("\nStrategy:\n")
	step := 1
	for _, line := range cc.strategySteps(analysis.ResponseStrategy) {
		sb.WriteString(fmt.Sprintf("%d. %s\n", step, line))
		step++
	}

	if len(analysis.ResponseStrategy.Avoid) > 0 {
		sb.WriteString("\nAvoid:\n")
		for _, a := range analysis.ResponseStrategy.Avoid {
			sb.WriteString(fmt.Sprintf("- %s\n", a))
		}
	}

	sb.WriteString(fmt.Sprintf("\nHomework: %s", analysis.ResponseStrategy.HomeworkType))
	if !policy.AllowHomework {
		sb.WriteString(" (homework is not permitted at this triage level)")
	}
	sb.WriteString("\n")
	if !policy.AllowReframe {
		sb.WriteString("Reframing is not permitted at this triage level.\n")
	}

	return sb.String()
}

// formatFocus renders one focus selection block
func (cc *ContextComposer) formatFocus(title string, focus *models.FocusSelection) string {
	var sb strings.Builder
	label := focus.Domain
	if d, err := registry.DomainByID(focus.Domain); err == nil {
		label = d.Label
	}
	sb.WriteString(fmt.Sprintf("\n%s: %s (evidence: %s)\n", title, label, focus.BestTier))
	if len(focus.Frameworks) > 0 {
		sb.WriteString(fmt.Sprintf("Frameworks: %s\n", strings.Join(focus.Frameworks, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Approach: %s\n", focus.Approach))
	return sb.String()
}

// strategySteps flattens the response strategy into numbered steps
func (cc *ContextComposer) strategySteps(strategy models.ResponseStrategy) []string {
	var steps []string
	if strategy.OpeningFrame != "" {
		steps = append(steps, strategy.OpeningFrame)
	}
	if strategy.PrimaryIntervention != "" {
		steps = append(steps, strategy.PrimaryIntervention)
	}
	if strategy.SecondaryIntervention != "" {
		steps = append(steps, strategy.SecondaryIntervention)
	}
	if strategy.IntegrationStatement != "" {
		steps = append(steps, strategy.IntegrationStatement)
	}
	if strategy.FollowUpFocus != "" {
		steps = append(steps, fmt.Sprintf("Hold %s as the follow-up focus for a future session.", strategy.FollowUpFocus))
	}
	return steps
}
