// ABOUTME: IntersectionalityEngine builds the priority stack, 2-Focus selection,
// ABOUTME: bridges, response strategy, and complexity score for one triage decision
package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/purposewaze/relate-coach/internal/models"
	"github.com/purposewaze/relate-coach/internal/registry"
)

// DefaultSecondaryFocusThreshold gates whether a second focus is worth splitting
// the user's attention over. Empirically tuned cutoff.
const DefaultSecondaryFocusThreshold = 15

// Priority-stack bonuses
const (
	lifeStageBonus     = 5
	redEscalationBonus = 50
	orangeEscalation   = 30
)

// Universal safety directives added for red/orange triage
var universalSafetyAvoids = []string{
	"Do not assign growth-oriented homework or exercises.",
	"Do not reframe the situation as a growth opportunity.",
	"Do not minimize or relativize what the user described.",
}

// Domain-specific directives keyed by safety-critical issue
var issueAvoids = map[string][]string{
	"abuse": {
		"Do not suggest couples exercises that require engaging the abusive partner.",
		"Do not frame the abuse as a mutual communication problem.",
	},
	"addiction": {
		"Do not suggest moderation strategies for active addiction.",
		"Do not assign accountability tasks to the partner of the addicted person.",
	},
	"trauma": {
		"Do not prompt detailed retelling of traumatic events.",
		"Do not push exposure-style exercises without professional support.",
	},
}

// IntersectionalityEngine reconciles the triage decision with the registry
type IntersectionalityEngine struct {
	secondaryThreshold float64
}

// NewIntersectionalityEngine creates an engine with the default threshold
func NewIntersectionalityEngine() *IntersectionalityEngine {
	return &IntersectionalityEngine{secondaryThreshold: DefaultSecondaryFocusThreshold}
}

// NewIntersectionalityEngineWithThreshold overrides the secondary-focus cutoff
func NewIntersectionalityEngineWithThreshold(threshold float64) *IntersectionalityEngine {
	return &IntersectionalityEngine{secondaryThreshold: threshold}
}

// Analyze is a pure function of (triage, ctx) plus registry lookups.
// Excluded frameworks are filtered before selection, never after. A nil
// triage is treated as an empty green verdict, not an error.
func (e *IntersectionalityEngine) Analyze(triage *models.TriageDecision, ctx *models.AnalysisContext) *models.IntersectionalityAnalysis {
	if triage == nil {
		triage = &models.TriageDecision{TriageColor: models.TriageGreen}
	}
	stack := e.buildPriorityStack(triage, ctx)

	analysis := &models.IntersectionalityAnalysis{
		PriorityStack: stack,
		TriageColor:   triage.TriageColor,
	}

	if len(stack) > 0 {
		analysis.PrimaryFocus = e.selectFocus(stack[0], triage)
	}
	if len(stack) > 1 && stack[1].PriorityScore > e.secondaryThreshold {
		analysis.SecondaryFocus = e.selectFocus(stack[1], triage)
	}

	if analysis.PrimaryFocus != nil && analysis.SecondaryFocus != nil {
		analysis.Bridges = e.findBridges(analysis.PrimaryFocus, analysis.SecondaryFocus)
	}

	analysis.ResponseStrategy = e.composeStrategy(triage, stack, analysis)
	analysis.ComplexityScore = e.complexityScore(triage, stack)

	return analysis
}

// buildPriorityStack scores every recommended domain. Entries are built in
// registry order so the descending stable sort keeps ties deterministic.
func (e *IntersectionalityEngine) buildPriorityStack(triage *models.TriageDecision, ctx *models.AnalysisContext) []models.PriorityEntry {
	recommended := make(map[string]bool, len(triage.RecommendedDomains))
	for _, d := range triage.RecommendedDomains {
		recommended[d] = true
	}

	filterIssues := make(map[string]bool, len(triage.SearchParams.FilterIssueTypes))
	for _, it := range triage.SearchParams.FilterIssueTypes {
		filterIssues[it] = true
	}

	var stack []models.PriorityEntry
	for _, domain := range registry.Domains() {
		if !recommended[domain.ID] {
			continue
		}

		score := domain.BasePriority
		matchedSet := make(map[string]bool)
		lifeStageMatches := 0

		for _, fw := range registry.FrameworksForDomain(domain.ID) {
			for _, issue := range fw.IssueTypes {
				if filterIssues[issue] && !matchedSet[issue] {
					matchedSet[issue] = true
					score += registry.IssuePriority(issue)
				}
			}
			if ctx != nil && ctx.LifeStage != "" && fw.AppliesToLifeStage(ctx.LifeStage) {
				lifeStageMatches++
			}
		}
		score += float64(lifeStageMatches) * lifeStageBonus

		dominant := registry.DominantTriage(domain.ID)
		switch dominant {
		case models.TriageRed:
			score += redEscalationBonus
		case models.TriageOrange:
			score += orangeEscalation
		}

		entry := models.PriorityEntry{
			Domain:         domain.ID,
			PriorityScore:  score,
			MatchedIssues:  sortedKeys(matchedSet),
			DominantTriage: dominant,
		}
		if fws := e.selectFrameworks(domain.ID, triage, 1); len(fws) > 0 {
			entry.PrimaryFramework = fws[0]
		}
		stack = append(stack, entry)
	}

	sort.SliceStable(stack, func(i, j int) bool {
		return stack[i].PriorityScore > stack[j].PriorityScore
	})
	return stack
}

// selectFrameworks picks up to limit frameworks for a domain, preferring ones
// already recommended by triage. Excluded frameworks never enter the pool.
func (e *IntersectionalityEngine) selectFrameworks(domainID string, triage *models.TriageDecision, limit int) []string {
	var picked []string

	for _, name := range triage.RecommendedFrameworks {
		if len(picked) >= limit {
			break
		}
		if triage.IsExcluded(name) {
			continue
		}
		fw, err := registry.FrameworkByName(name)
		if err != nil || fw.Domain != domainID {
			continue
		}
		picked = append(picked, name)
	}

	if len(picked) < limit {
		for _, fw := range registry.FrameworksForDomain(domainID) {
			if len(picked) >= limit {
				break
			}
			if triage.IsExcluded(fw.Name) || containsString(picked, fw.Name) {
				continue
			}
			picked = append(picked, fw.Name)
		}
	}

	return picked
}

// selectFocus materializes the 2-Focus choice for one stack entry
func (e *IntersectionalityEngine) selectFocus(entry models.PriorityEntry, triage *models.TriageDecision) *models.FocusSelection {
	names := e.selectFrameworks(entry.Domain, triage, 2)

	bestTier := models.TierCopper
	for _, name := range names {
		if fw, err := registry.FrameworkByName(name); err == nil {
			if registry.BetterTier(fw.Tier, bestTier) {
				bestTier = fw.Tier
			}
		}
	}

	label := entry.Domain
	if d, err := registry.DomainByID(entry.Domain); err == nil {
		label = d.Label
	}

	approach := fmt.Sprintf("Work within %s", label)
	if len(names) > 0 {
		approach = fmt.Sprintf("Lead with %s", strings.Join(names, ", supported by "))
	}
	if len(entry.MatchedIssues) > 0 {
		approach += fmt.Sprintf(", addressing %s", strings.Join(entry.MatchedIssues, ", "))
	}

	return &models.FocusSelection{
		Domain:     entry.Domain,
		Frameworks: names,
		Approach:   approach,
		BestTier:   bestTier,
	}
}

// findBridges looks up curated bridges between the two focus domains,
// synthesizing a generic one when the table has no match
func (e *IntersectionalityEngine) findBridges(primary, secondary *models.FocusSelection) []models.IntegrationBridge {
	prefer := append(append([]string{}, primary.Frameworks...), secondary.Frameworks...)
	found := registry.FindBridges(primary.Domain, secondary.Domain, prefer)
	if len(found) > 0 {
		return found
	}
	return []models.IntegrationBridge{registry.SynthesizeBridge(primary.Domain, secondary.Domain)}
}

// composeStrategy derives the response plan. The homework gate is the safety
// invariant: no growth homework is ever assigned above yellow severity.
func (e *IntersectionalityEngine) composeStrategy(triage *models.TriageDecision, stack []models.PriorityEntry, analysis *models.IntersectionalityAnalysis) models.ResponseStrategy {
	policy := registry.TriagePolicy(triage.TriageColor)

	strategy := models.ResponseStrategy{
		OpeningFrame: policy.OpeningFrame,
		HomeworkType: models.HomeworkNone,
	}

	if analysis.PrimaryFocus != nil {
		strategy.PrimaryIntervention = analysis.PrimaryFocus.Approach
	}
	if analysis.SecondaryFocus != nil {
		strategy.SecondaryIntervention = analysis.SecondaryFocus.Approach
		strategy.FollowUpFocus = analysis.SecondaryFocus.Domain
	} else if len(stack) > 1 {
		strategy.FollowUpFocus = stack[1].Domain
	}
	if len(analysis.Bridges) > 0 {
		b := analysis.Bridges[0]
		strategy.IntegrationStatement = fmt.Sprintf("%s: %s", b.Concept, b.Application)
	}

	severity := registry.SeverityRank(triage.TriageColor)
	if severity >= registry.SeverityRank(models.TriageOrange) {
		strategy.Avoid = append(strategy.Avoid, universalSafetyAvoids...)
	}
	if analysis.PrimaryFocus != nil && len(stack) > 0 {
		for _, issue := range []string{"abuse", "addiction", "trauma"} {
			if containsString(stack[0].MatchedIssues, issue) {
				strategy.Avoid = append(strategy.Avoid, issueAvoids[issue]...)
			}
		}
	}

	switch triage.TriageColor {
	case models.TriageGreen:
		if analysis.SecondaryFocus != nil {
			strategy.HomeworkType = models.HomeworkDualIntegration
		} else {
			strategy.HomeworkType = models.HomeworkSingleFocus
		}
	case models.TriageYellow:
		strategy.HomeworkType = models.HomeworkSingleFocus
	}

	return strategy
}

// complexityScore is capped at 10 and rounded to one decimal
func (e *IntersectionalityEngine) complexityScore(triage *models.TriageDecision, stack []models.PriorityEntry) float64 {
	score := math.Min(3, float64(len(stack)))

	issues := make(map[string]bool)
	for _, entry := range stack {
		for _, issue := range entry.MatchedIssues {
			issues[issue] = true
		}
	}
	score += math.Min(3, float64(len(issues)))

	switch triage.TriageColor {
	case models.TriageRed:
		score += 2
	case models.TriageOrange:
		score += 1.5
	case models.TriageYellow:
		score += 1
	}

	score += math.Min(2, 0.5*float64(len(triage.ActiveContraindications)))

	score = math.Round(score*10) / 10
	return math.Min(10, score)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
