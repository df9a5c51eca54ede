// ABOUTME: CrossPillarDetector finds root causes living outside the relational domain
// ABOUTME: Weighted pillar rules, ordered cascade patterns, and external trigger matching
package core

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/purposewaze/relate-coach/internal/models"
)

// pillarRule is one weighted regex for a pillar; confidence is the max
// weight among matching rules, not the sum
type pillarRule struct {
	pattern *regexp.Regexp
	weight  float64
}

var pillarRules = map[models.Pillar][]pillarRule{
	models.PillarPhysical: {
		{regexp.MustCompile(`(?i)exhausted|no sleep|can'?t sleep|sleep deprived|insomnia`), 0.8},
		{regexp.MustCompile(`(?i)tired all the time|chronic pain|always sick`), 0.6},
		{regexp.MustCompile(`(?i)headaches?|low energy|no energy`), 0.5},
		{regexp.MustCompile(`(?i)stopped working out|gained weight|barely eating`), 0.4},
	},
	models.PillarFinancial: {
		{regexp.MustCompile(`(?i)lost my job|laid off|can'?t pay|drowning in debt`), 0.8},
		{regexp.MustCompile(`(?i)money is tight|paycheck to paycheck|\bdebt\b`), 0.6},
		{regexp.MustCompile(`(?i)second job|working overtime|working late every`), 0.4},
	},
	models.PillarMental: {
		{regexp.MustCompile(`(?i)depress|panic attacks?|hopeless|can'?t get out of bed`), 0.8},
		{regexp.MustCompile(`(?i)overwhelmed|burn(ed|t)? out|can'?t focus`), 0.6},
		{regexp.MustCompile(`(?i)stressed|on edge|irritable`), 0.4},
	},
	models.PillarSpiritual: {
		{regexp.MustCompile(`(?i)lost my faith|crisis of faith|god has abandoned`), 0.7},
		{regexp.MustCompile(`(?i)no purpose|empty inside|what'?s the point`), 0.5},
		{regexp.MustCompile(`(?i)stopped going to church|disconnected from god`), 0.4},
	},
}

// Evaluation order for deterministic output
var pillarOrder = []models.Pillar{
	models.PillarPhysical,
	models.PillarFinancial,
	models.PillarMental,
	models.PillarSpiritual,
}

// cascadePattern requires all keyword regexes to match; first full match wins
type cascadePattern struct {
	name       string
	keywords   []*regexp.Regexp
	hypothesis string
}

// SleepDeprivationHypothesis is the cascade text for the sleep cascade
const SleepDeprivationHypothesis = "Presenting as fights about everything, but the pattern points to sleep deprivation eroding emotional regulation."

var cascadePatterns = []cascadePattern{
	{
		name: "sleep_deprivation",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)exhausted|no sleep|can'?t sleep|sleep deprived|insomnia`),
			regexp.MustCompile(`(?i)fight|snap|argu|irritable`),
		},
		hypothesis: SleepDeprivationHypothesis,
	},
	{
		name: "job_loss_shame",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)lost my job|laid off|unemployed`),
			regexp.MustCompile(`(?i)snap|fight|withdraw|distant|ashamed|shame`),
		},
		hypothesis: "Presenting as withdrawal or irritability, but the pattern points to job-loss shame attacking provider identity.",
	},
	{
		name: "financial_secrecy",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bdebt\b|money|spending`),
			regexp.MustCompile(`(?i)hiding|secret|lied|lying`),
		},
		hypothesis: "Presenting as a trust problem, but the pattern points to financial shame driving concealment.",
	},
	{
		name: "depression_withdrawal",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)depress|hopeless|empty`),
			regexp.MustCompile(`(?i)distant|withdrawn|no interest|shut down`),
		},
		hypothesis: "Presenting as emotional distance, but the pattern points to untreated depression flattening connection.",
	},
	{
		name: "burnout_depletion",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)burn(ed|t)? out|overwhelmed`),
			regexp.MustCompile(`(?i)nothing left|no energy for|checked out`),
		},
		hypothesis: "Presenting as not caring about the relationship, but the pattern points to work burnout leaving no capacity for it.",
	},
	{
		name: "faith_drift",
		keywords: []*regexp.Regexp{
			regexp.MustCompile(`(?i)faith|church|\bgod\b`),
			regexp.MustCompile(`(?i)drifting|different direction|lost|disconnected`),
		},
		hypothesis: "Presenting as growing apart, but the pattern points to a faith shift changing shared meaning.",
	},
}

// TriggerSource supplies the externally stored trigger table
type TriggerSource interface {
	ActiveTriggers() ([]models.CrossPillarTrigger, error)
}

// CrossPillarDetector scores pillars and matches cascades and triggers
type CrossPillarDetector struct {
	triggers        TriggerSource // nil disables trigger matching
	detectThreshold float64
	chunkThreshold  float64
}

// NewCrossPillarDetector creates a detector; triggers may be nil
func NewCrossPillarDetector(triggers TriggerSource) *CrossPillarDetector {
	return &CrossPillarDetector{
		triggers:        triggers,
		detectThreshold: 0.4,
		chunkThreshold:  0.6,
	}
}

// Detect analyzes one message for cross-pillar root causes.
// Pillar scoring and cascade matching are pure; a failed trigger lookup
// degrades to an empty match list.
func (d *CrossPillarDetector) Detect(message string, profile *models.UserProfile, affect *models.EmotionalContext) models.CrossPillarSignals {
	signals := d.scorePillars(message)

	hypothesis := d.matchCascade(message)

	triggerMatches := d.matchTriggers(message)
	if hypothesis == "" && len(triggerMatches) > 0 {
		hypothesis = triggerMatches[0].RootCause
	}

	// The conversation is always at minimum relational
	signals = append(signals, models.PillarSignal{
		Pillar:     models.PillarRelational,
		Confidence: 0.5,
	})

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Confidence > signals[j].Confidence
	})

	chunksNeeded := false
	for _, sig := range signals {
		if sig.Pillar != models.PillarRelational && sig.Confidence >= d.chunkThreshold {
			chunksNeeded = true
			break
		}
	}

	var detected []models.PillarSignal
	for _, sig := range signals {
		if sig.Confidence >= d.detectThreshold {
			detected = append(detected, sig)
		}
	}

	return models.CrossPillarSignals{
		DetectedPillars:         detected,
		PrimaryPillar:           signals[0].Pillar,
		RootCauseHypothesis:     hypothesis,
		CrossPillarChunksNeeded: chunksNeeded,
		TriggerMatches:          triggerMatches,
	}
}

// scorePillars evaluates the weighted rule table for the 4 non-relational pillars
func (d *CrossPillarDetector) scorePillars(message string) []models.PillarSignal {
	var signals []models.PillarSignal
	for _, pillar := range pillarOrder {
		var confidence float64
		var evidence []string
		for _, rule := range pillarRules[pillar] {
			match := rule.pattern.FindString(message)
			if match == "" {
				continue
			}
			if rule.weight > confidence {
				confidence = rule.weight
			}
			evidence = append(evidence, match)
		}
		if confidence > 0 {
			signals = append(signals, models.PillarSignal{
				Pillar:     pillar,
				Confidence: confidence,
				Evidence:   evidence,
			})
		}
	}
	return signals
}

// matchCascade returns the hypothesis of the first cascade whose keyword
// regexes all match; only one cascade can fire per message
func (d *CrossPillarDetector) matchCascade(message string) string {
	for _, cascade := range cascadePatterns {
		all := true
		for _, kw := range cascade.keywords {
			if !kw.MatchString(message) {
				all = false
				break
			}
		}
		if all {
			return cascade.hypothesis
		}
	}
	return ""
}

// matchTriggers ranks trigger rows by keyword-match count, capped at 3.
// Lookup failures are non-fatal and return an empty list.
func (d *CrossPillarDetector) matchTriggers(message string) []models.TriggerMatch {
	if d.triggers == nil {
		return nil
	}

	rows, err := d.triggers.ActiveTriggers()
	if err != nil {
		log.Printf("[CrossPillar] trigger lookup failed, continuing without: %v", err)
		return nil
	}

	lowered := strings.ToLower(message)
	var matches []models.TriggerMatch
	for _, row := range rows {
		var matched []string
		for _, kw := range row.Keywords {
			if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		matches = append(matches, models.TriggerMatch{
			TriggerID:         row.TriggerID,
			PresentingSymptom: row.PresentingSymptom,
			RootCause:         row.RootCause,
			MatchedKeywords:   matched,
			AffectedPillars:   row.AffectedPillars,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].MatchedKeywords) > len(matches[j].MatchedKeywords)
	})

	if len(matches) > 3 {
		matches = matches[:3]
	}
	return matches
}
