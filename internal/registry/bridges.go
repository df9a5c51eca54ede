// ABOUTME: Hand-curated integration bridges linking frameworks across domains
// ABOUTME: FindBridges is bidirectional; a generic bridge is synthesized when none match
package registry

import (
	"fmt"

	"github.com/purposewaze/relate-coach/internal/models"
)

var bridges = []models.IntegrationBridge{
	{
		FromFramework: "Attachment Theory",
		ToFramework:   "Gottman Method",
		Concept:       "attachment needs under conflict",
		Application:   "Name the attachment need driving the fight before teaching de-escalation moves.",
	},
	{
		FromFramework: "Emotionally Focused Therapy",
		ToFramework:   "Sensate Focus",
		Concept:       "emotional safety before physical reconnection",
		Application:   "Re-establish the emotional bond first; sensate focus exercises land only once both partners feel safe.",
	},
	{
		FromFramework: "Money Scripts Assessment",
		ToFramework:   "Nonviolent Communication",
		Concept:       "money beliefs as unmet needs",
		Application:   "Translate each partner's money script into the need underneath it, then practice expressing that need without blame.",
	},
	{
		FromFramework: "Financial Therapy Fundamentals",
		ToFramework:   "Gottman Method",
		Concept:       "perpetual problems around money",
		Application:   "Treat recurring money fights as a perpetual problem to manage through dialogue, not a solvable dispute.",
	},
	{
		FromFramework: "Trauma-Informed Stabilization",
		ToFramework:   "Emotionally Focused Therapy",
		Concept:       "stabilize before attachment work",
		Application:   "Ground and regulate first; attachment restructuring waits until trauma responses are manageable.",
	},
	{
		FromFramework: "Window of Tolerance Psychoeducation",
		ToFramework:   "Gottman Method",
		Concept:       "flooding as a nervous-system event",
		Application:   "Frame conflict flooding as leaving the window of tolerance; use structured breaks before resuming dialogue.",
	},
	{
		FromFramework: "Betrayal Trauma Psychoeducation",
		ToFramework:   "Atone-Attune-Attach Model",
		Concept:       "betrayal as trauma, repair as phases",
		Application:   "Let the hurt partner's trauma responses set the pace through the atone phase before attunement work begins.",
	},
	{
		FromFramework: "Motivational Interviewing",
		ToFramework:   "CRAFT for Partners",
		Concept:       "change talk across the couple",
		Application:   "Coach the partner to reinforce change talk at home while the user builds their own motivation.",
	},
	{
		FromFramework: "CRAFT for Partners",
		ToFramework:   "Nonviolent Communication",
		Concept:       "non-confrontational influence",
		Application:   "Use NVC requests to replace nagging or ultimatums when encouraging a partner toward treatment.",
	},
	{
		FromFramework: "Safety Planning",
		ToFramework:   "Trauma-Informed Stabilization",
		Concept:       "safety as the precondition for healing",
		Application:   "Complete and rehearse the safety plan before any trauma processing or stabilization work.",
	},
	{
		FromFramework: "Narcissistic Abuse Recovery",
		ToFramework:   "Internal Family Systems",
		Concept:       "reclaiming exiled self-parts",
		Application:   "Use parts language to help the user separate their own voice from the internalized critical voice.",
	},
	{
		FromFramework: "Family Systems Mapping",
		ToFramework:   "Differentiation of Self",
		Concept:       "triangles and fusion",
		Application:   "Map the family triangle pulling the couple apart, then coach differentiation moves inside it.",
	},
	{
		FromFramework: "In-Law Boundary Setting",
		ToFramework:   "Differentiation of Self",
		Concept:       "boundaries without cutoff",
		Application:   "Frame boundary setting as staying connected while refusing fusion, not as estrangement.",
	},
	{
		FromFramework: "Online Infidelity Triage",
		ToFramework:   "Atone-Attune-Attach Model",
		Concept:       "digital betrayal is betrayal",
		Application:   "Apply the same repair phases to online infidelity; minimizing the medium stalls atonement.",
	},
	{
		FromFramework: "Pornography Compulsion Protocol",
		ToFramework:   "Sensate Focus",
		Concept:       "rebuilding embodied intimacy",
		Application:   "Pair compulsion recovery with graduated partner-focused touch to rebuild real-world arousal patterns.",
	},
	{
		FromFramework: "Emotion Coaching for Parents",
		ToFramework:   "Gottman Method",
		Concept:       "the couple as co-regulators",
		Application:   "Strengthen the couple's own conflict repair so they can model regulation for their children.",
	},
	{
		FromFramework: "Financial Infidelity Repair",
		ToFramework:   "Disclosure Protocol",
		Concept:       "full disclosure before rebuilding",
		Application:   "Run a structured financial disclosure before transparency contracting; drip disclosure re-injures trust.",
	},
	{
		FromFramework: "Complex PTSD Psychoeducation",
		ToFramework:   "Attachment Theory",
		Concept:       "developmental trauma shapes attachment",
		Application:   "Link present attachment behaviors to survival adaptations; reduce shame before skills work.",
	},
}

// AllBridges returns the curated bridge table
func AllBridges() []models.IntegrationBridge {
	out := make([]models.IntegrationBridge, len(bridges))
	copy(out, bridges)
	return out
}

// FindBridges returns curated bridges connecting the two domains, in either
// direction. preferFrameworks biases results toward bridges touching at least
// one of the given framework names; when any preferred bridge exists only
// preferred bridges are returned.
func FindBridges(domainA, domainB string, preferFrameworks []string) []models.IntegrationBridge {
	preferred := make(map[string]bool, len(preferFrameworks))
	for _, name := range preferFrameworks {
		preferred[name] = true
	}

	var matched, matchedPreferred []models.IntegrationBridge
	for _, b := range bridges {
		fromDomain := domainOfFramework(b.FromFramework)
		toDomain := domainOfFramework(b.ToFramework)
		connects := (fromDomain == domainA && toDomain == domainB) ||
			(fromDomain == domainB && toDomain == domainA)
		if !connects {
			continue
		}
		matched = append(matched, b)
		if preferred[b.FromFramework] || preferred[b.ToFramework] {
			matchedPreferred = append(matchedPreferred, b)
		}
	}

	if len(matchedPreferred) > 0 {
		return matchedPreferred
	}
	return matched
}

// SynthesizeBridge builds a generic bridge from two domain labels, used when
// no curated bridge connects the selected focus domains.
func SynthesizeBridge(domainA, domainB string) models.IntegrationBridge {
	labelA, labelB := domainA, domainB
	if d, err := DomainByID(domainA); err == nil {
		labelA = d.Label
	}
	if d, err := DomainByID(domainB); err == nil {
		labelB = d.Label
	}
	return models.IntegrationBridge{
		Concept: fmt.Sprintf("connecting %s and %s", labelA, labelB),
		Application: fmt.Sprintf(
			"Address %s first, then show how progress there creates room to work on %s.",
			labelA, labelB),
	}
}

func domainOfFramework(name string) string {
	if fw, ok := frameworkIndex[name]; ok {
		return fw.Domain
	}
	return ""
}
