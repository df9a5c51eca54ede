// ABOUTME: Decomposer splits one user message into domain-targeted retrieval sub-queries
// ABOUTME: Rule-based regex signal table with an optional LLM refinement pass
package core

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/purposewaze/relate-coach/internal/models"
)

// Special retrieval targets for profile-derived sub-queries
const (
	TargetAssessedPattern = "assessed_pattern"
	TargetKnownTriggers   = "known_triggers"
)

// domainSignal is one row of the rule table: first match wins per domain
type domainSignal struct {
	domain  string
	pattern *regexp.Regexp
	boost   string
	reason  string
}

// Ordered safety-first: when more than 4 domains match, the earlier rows win
var domainSignals = []domainSignal{
	{
		domain:  "abuse_narcissism",
		pattern: regexp.MustCompile(`(?i)abus|narcissis|gaslight|controls? me|controlling|afraid of (him|her|them)|threatens?|isolat`),
		boost:   "abuse narcissism control safety",
		reason:  "abuse or control signal",
	},
	{
		domain:  "trauma_recovery",
		pattern: regexp.MustCompile(`(?i)trauma|ptsd|flashback|triggered|nightmares?|childhood (abuse|neglect)`),
		boost:   "trauma recovery regulation grounding",
		reason:  "trauma signal",
	},
	{
		domain:  "addiction_recovery",
		pattern: regexp.MustCompile(`(?i)drink(s|ing)?|alcohol|drugs?|gambl|addict|porn`),
		boost:   "addiction compulsive behavior recovery partner",
		reason:  "addiction signal",
	},
	{
		domain:  "trust_betrayal",
		pattern: regexp.MustCompile(`(?i)trust|cheat(ed|ing)?|affair|lied|lying|betray|secret|hiding`),
		boost:   "trust betrayal repair disclosure",
		reason:  "trust or betrayal signal",
	},
	{
		domain:  "financial_mens",
		pattern: regexp.MustCompile(`(?i)money|financ|debt|bills?|afford|paycheck|spending|budget|\bbroke\b|provider`),
		boost:   "financial stress money conflict provider pressure",
		reason:  "financial signal",
	},
	{
		domain:  "communication_conflict",
		pattern: regexp.MustCompile(`(?i)fight|argu(e|ing|ment)s?|yell|shout|shuts? down|stonewall|silent treatment|won'?t talk|criticiz`),
		boost:   "communication conflict de-escalation repair",
		reason:  "communication or conflict signal",
	},
	{
		domain:  "foundation_attachment",
		pattern: regexp.MustCompile(`(?i)clingy|needy|abandon|pulls? away|distant|avoidant|anxious|insecure|attachment`),
		boost:   "attachment style connection security",
		reason:  "attachment signal",
	},
	{
		domain:  "intimacy_sexuality",
		pattern: regexp.MustCompile(`(?i)\bsex\b|sexual|intimacy|intimate|affection|desire|bedroom|physical connection`),
		boost:   "intimacy sexuality desire connection",
		reason:  "intimacy signal",
	},
	{
		domain:  "parenting_family",
		pattern: regexp.MustCompile(`(?i)\bkids?\b|children|parent(ing)?|\bson\b|daughter|step(kids?|son|daughter)|in-laws?|mother-in-law|father-in-law`),
		boost:   "parenting family systems boundaries",
		reason:  "parenting or family signal",
	},
	{
		domain:  "cultural_context",
		pattern: regexp.MustCompile(`(?i)cultur|religio|faith|tradition|family expectations|arranged`),
		boost:   "cultural context faith family expectations",
		reason:  "cultural signal",
	},
	{
		domain:  "identity_purpose",
		pattern: regexp.MustCompile(`(?i)who I am|identity|purpose|lost myself|no direction|meaning`),
		boost:   "identity purpose self direction",
		reason:  "identity signal",
	},
	{
		domain:  "modern_threats",
		pattern: regexp.MustCompile(`(?i)phone|texting|social media|instagram|facebook|online|dating app|screen time`),
		boost:   "digital strain online boundaries",
		reason:  "digital signal",
	},
}

// LLMDecomposer is the optional LLM refinement collaborator
type LLMDecomposer interface {
	DecomposeQuery(message string, domains []string) ([]models.SubQuery, error)
}

// Decomposer turns one message into up to 4 retrieval sub-queries
type Decomposer struct {
	llm                  LLMDecomposer // nil disables the LLM pass
	passthroughWordLimit int
}

// NewDecomposer creates a rule-based decomposer; llm may be nil
func NewDecomposer(llm LLMDecomposer) *Decomposer {
	return &Decomposer{
		llm:                  llm,
		passthroughWordLimit: 15,
	}
}

// Decompose splits the message into domain-targeted sub-queries.
// Passthrough results carry no sub-queries: callers use the original message
// as the sole query.
func (d *Decomposer) Decompose(message string, profile *models.UserProfile) models.DecompositionResult {
	subQueries, domainMatches := d.rulePass(message, profile)

	// Short messages with at most one signal are not worth the retrieval overhead
	if len(subQueries) <= 1 && wordCount(message) < d.passthroughWordLimit {
		return models.DecompositionResult{
			Method:        models.MethodPassthrough,
			OriginalQuery: message,
		}
	}

	result := models.DecompositionResult{
		SubQueries:    subQueries,
		IsComplex:     len(subQueries) >= 2,
		Method:        models.MethodRuleBased,
		OriginalQuery: message,
	}

	// LLM refinement only pays off on genuinely multi-domain messages
	if d.llm != nil && domainMatches >= 2 {
		if refined := d.llmPass(message, subQueries); refined != nil {
			result.SubQueries = refined
			result.IsComplex = len(refined) >= 2
			result.Method = models.MethodLLM
		}
	}

	return result
}

// rulePass runs the signal table plus profile-derived additions.
// Returns the sub-queries and the count of domain-signal matches.
func (d *Decomposer) rulePass(message string, profile *models.UserProfile) ([]models.SubQuery, int) {
	var subQueries []models.SubQuery
	seen := make(map[string]bool)

	for _, sig := range domainSignals {
		if len(subQueries) >= models.MaxSubQueries {
			break
		}
		if seen[sig.domain] {
			continue
		}
		if sig.pattern.MatchString(message) {
			seen[sig.domain] = true
			subQueries = append(subQueries, models.SubQuery{
				Query:        message + " " + sig.boost,
				TargetDomain: sig.domain,
				Reason:       sig.reason,
			})
		}
	}
	domainMatches := len(subQueries)

	if profile != nil {
		// Additions past the cap are silently dropped
		if profile.AssessedPattern != "" && len(subQueries) < models.MaxSubQueries && !seen[TargetAssessedPattern] {
			subQueries = append(subQueries, models.SubQuery{
				Query:        fmt.Sprintf("%s pattern: %s", profile.AssessedPattern, message),
				TargetDomain: TargetAssessedPattern,
				Reason:       "assessed relational pattern",
			})
		}
		if len(profile.KnownTriggers) > 0 && len(subQueries) < models.MaxSubQueries && !seen[TargetKnownTriggers] {
			subQueries = append(subQueries, models.SubQuery{
				Query:        fmt.Sprintf("triggers %s: %s", strings.Join(profile.KnownTriggers, " "), message),
				TargetDomain: TargetKnownTriggers,
				Reason:       "known triggers",
			})
		}
	}

	return subQueries, domainMatches
}

// llmPass attempts LLM refinement; any failure falls back to nil
func (d *Decomposer) llmPass(message string, ruleResult []models.SubQuery) []models.SubQuery {
	domains := make([]string, 0, len(ruleResult))
	for _, sq := range ruleResult {
		domains = append(domains, sq.TargetDomain)
	}

	refined, err := d.llm.DecomposeQuery(message, domains)
	if err != nil {
		log.Printf("[Decomposer] LLM pass failed, using rule-based result: %v", err)
		return nil
	}
	if len(refined) == 0 {
		return nil
	}
	if len(refined) > models.MaxSubQueries {
		refined = refined[:models.MaxSubQueries]
	}
	return refined
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
