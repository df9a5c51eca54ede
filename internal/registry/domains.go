// ABOUTME: The 10 framework domains with hand-assigned base priority weights
// ABOUTME: Order here is the registry iteration order used for tie-breaking
package registry

import "github.com/purposewaze/relate-coach/internal/models"

// Domain identifiers
const (
	DomainFoundationAttachment  = "foundation_attachment"
	DomainCommunicationConflict = "communication_conflict"
	DomainAbuseNarcissism       = "abuse_narcissism"
	DomainTraumaRecovery        = "trauma_recovery"
	DomainTrustBetrayal         = "trust_betrayal"
	DomainIntimacySexuality     = "intimacy_sexuality"
	DomainFinancialMens         = "financial_mens"
	DomainParentingFamily       = "parenting_family"
	DomainAddictionRecovery     = "addiction_recovery"
	DomainModernThreats         = "modern_threats"
)

var domains = []models.FrameworkDomain{
	{
		ID:           DomainAbuseNarcissism,
		Label:        "Abuse & Narcissism Recovery",
		BasePriority: 12,
		Frameworks: []string{
			"Safety Planning",
			"Power and Control Wheel",
			"Coercive Control Mapping",
			"Narcissistic Abuse Recovery",
			"Trauma Bonding Psychoeducation",
			"Gray Rock Technique",
		},
	},
	{
		ID:           DomainTraumaRecovery,
		Label:        "Trauma Recovery",
		BasePriority: 11,
		Frameworks: []string{
			"Trauma-Informed Stabilization",
			"Window of Tolerance Psychoeducation",
			"Somatic Grounding Skills",
			"EMDR-Informed Psychoeducation",
			"Complex PTSD Psychoeducation",
			"Polyvagal-Informed Regulation",
		},
	},
	{
		ID:           DomainFoundationAttachment,
		Label:        "Foundation & Attachment",
		BasePriority: 10,
		Frameworks: []string{
			"Attachment Theory",
			"Emotionally Focused Therapy",
			"Internal Family Systems",
			"Differentiation of Self",
			"Adult Attachment Psychoeducation",
			"Imago Relationship Therapy",
		},
	},
	{
		ID:           DomainCommunicationConflict,
		Label:        "Communication & Conflict",
		BasePriority: 9,
		Frameworks: []string{
			"Gottman Method",
			"Nonviolent Communication",
			"Gottman-Rapoport Protocol",
			"Active Listening Training",
			"Speaker-Listener Technique",
			"Fair Fighting Protocol",
			"Repair Attempt Coaching",
		},
	},
	{
		ID:           DomainAddictionRecovery,
		Label:        "Addiction & Compulsive Behavior",
		BasePriority: 9,
		Frameworks: []string{
			"Motivational Interviewing",
			"CRAFT for Partners",
			"Relapse Prevention Planning",
			"12-Step Facilitation",
			"SMART Recovery Tools",
			"Pornography Compulsion Protocol",
		},
	},
	{
		ID:           DomainTrustBetrayal,
		Label:        "Trust & Betrayal Repair",
		BasePriority: 8,
		Frameworks: []string{
			"Atone-Attune-Attach Model",
			"Disclosure Protocol",
			"Betrayal Trauma Psychoeducation",
			"Transparency Contracting",
			"Forgiveness Process Model",
		},
	},
	{
		ID:           DomainIntimacySexuality,
		Label:        "Intimacy & Sexuality",
		BasePriority: 7,
		Frameworks: []string{
			"Sensate Focus",
			"Desire Discrepancy Coaching",
			"Sexual Communication Scripts",
			"Dual Control Model Psychoeducation",
			"Emotional Intimacy Ladder",
		},
	},
	{
		ID:           DomainFinancialMens,
		Label:        "Financial Stress & Provider Identity",
		BasePriority: 6,
		Frameworks: []string{
			"Financial Therapy Fundamentals",
			"Money Scripts Assessment",
			"Financial Infidelity Repair",
			"Joint Budget Protocol",
			"Provider Identity Reframe",
			"Scarcity Cycle Psychoeducation",
		},
	},
	{
		ID:           DomainParentingFamily,
		Label:        "Parenting & Family Systems",
		BasePriority: 6,
		Frameworks: []string{
			"Emotion Coaching for Parents",
			"Family Systems Mapping",
			"Co-Parenting Protocol",
			"Blended Family Integration",
			"Parenting Style Alignment",
			"In-Law Boundary Setting",
		},
	},
	{
		ID:           DomainModernThreats,
		Label:        "Modern Threats & Digital Strain",
		BasePriority: 5,
		Frameworks: []string{
			"Online Infidelity Triage",
			"Digital Boundary Setting",
			"Social Media Conflict Protocol",
			"Phone-Free Connection Rituals",
			"Comparison Culture Reframe",
			"Remote Work Strain Protocol",
		},
	},
}
