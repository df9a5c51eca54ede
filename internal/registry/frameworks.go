// ABOUTME: Full framework catalog: 59 frameworks across the 10 domains
// ABOUTME: Evidence tiers, default triage colors, contraindications, cultural flags
package registry

import "github.com/purposewaze/relate-coach/internal/models"

// Contraindication tags
const (
	ContraActiveAbuse       = "active_abuse"
	ContraActiveAddiction   = "active_addiction"
	ContraUntreatedTrauma   = "untreated_trauma"
	ContraAcuteCrisis       = "acute_crisis"
	ContraActiveLitigation  = "active_litigation"
	ContraSevereMentalIll   = "severe_mental_illness"
	ContraOngoingDeception  = "ongoing_deception"
)

var frameworks = []models.Framework{
	// Abuse & Narcissism Recovery
	{
		Name:              "Safety Planning",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageRed,
		IssueTypes:        []string{"abuse", "coercive_control", "acute_crisis"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "parenting_young", "parenting_teens", "empty_nest", "divorced_rebuilding", "blended_family"},
		IntegrationPoints: []string{"Trauma-Informed Stabilization", "Power and Control Wheel"},
	},
	{
		Name:              "Power and Control Wheel",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageRed,
		IssueTypes:        []string{"abuse", "coercive_control"},
		LifeStages:        []string{"dating", "established", "parenting_young", "divorced_rebuilding"},
		IntegrationPoints: []string{"Safety Planning"},
	},
	{
		Name:              "Coercive Control Mapping",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageRed,
		IssueTypes:        []string{"coercive_control", "abuse", "isolation"},
		LifeStages:        []string{"established", "parenting_young", "parenting_teens"},
		IntegrationPoints: []string{"Safety Planning", "Power and Control Wheel"},
	},
	{
		Name:              "Narcissistic Abuse Recovery",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		Contraindications: []string{ContraAcuteCrisis},
		IssueTypes:        []string{"abuse", "emotional_distance", "isolation"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Internal Family Systems", "Trauma Bonding Psychoeducation"},
	},
	{
		Name:              "Trauma Bonding Psychoeducation",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		IssueTypes:        []string{"abuse", "attachment_injury"},
		LifeStages:        []string{"dating", "established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Attachment Theory"},
	},
	{
		Name:              "Gray Rock Technique",
		Domain:            DomainAbuseNarcissism,
		Tier:              models.TierCopper,
		DefaultTriage:     models.TriageOrange,
		Contraindications: []string{ContraAcuteCrisis},
		IssueTypes:        []string{"abuse", "coercive_control"},
		LifeStages:        []string{"divorced_rebuilding", "established"},
	},

	// Trauma Recovery
	{
		Name:              "Trauma-Informed Stabilization",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageOrange,
		IssueTypes:        []string{"trauma", "childhood_trauma", "emotional_dysregulation"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "parenting_young", "parenting_teens", "empty_nest", "divorced_rebuilding", "blended_family"},
		IntegrationPoints: []string{"Safety Planning", "Somatic Grounding Skills"},
	},
	{
		Name:              "Window of Tolerance Psychoeducation",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"trauma", "emotional_dysregulation", "conflict"},
		LifeStages:        []string{"dating", "established", "parenting_young", "parenting_teens"},
		IntegrationPoints: []string{"Gottman Method", "Somatic Grounding Skills"},
	},
	{
		Name:              "Somatic Grounding Skills",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"trauma", "emotional_dysregulation"},
		LifeStages:        []string{"dating", "established", "parenting_young", "divorced_rebuilding"},
		IntegrationPoints: []string{"Window of Tolerance Psychoeducation"},
	},
	{
		Name:              "EMDR-Informed Psychoeducation",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		Contraindications: []string{ContraAcuteCrisis, ContraSevereMentalIll},
		IssueTypes:        []string{"trauma", "childhood_trauma"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
	},
	{
		Name:              "Complex PTSD Psychoeducation",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		IssueTypes:        []string{"trauma", "childhood_trauma", "attachment_injury"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Attachment Theory", "Internal Family Systems"},
	},
	{
		Name:              "Polyvagal-Informed Regulation",
		Domain:            DomainTraumaRecovery,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"trauma", "emotional_dysregulation", "conflict"},
		LifeStages:        []string{"dating", "established", "parenting_young"},
		IntegrationPoints: []string{"Somatic Grounding Skills"},
	},

	// Foundation & Attachment
	{
		Name:              "Attachment Theory",
		Domain:            DomainFoundationAttachment,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"attachment_injury", "anxious_attachment", "avoidant_attachment", "emotional_distance"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "parenting_young", "parenting_teens", "empty_nest", "divorced_rebuilding", "blended_family"},
		IntegrationPoints: []string{"Gottman Method", "Emotionally Focused Therapy", "Sensate Focus"},
	},
	{
		Name:              "Emotionally Focused Therapy",
		Domain:            DomainFoundationAttachment,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraActiveAbuse},
		IssueTypes:        []string{"attachment_injury", "emotional_distance", "conflict"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "empty_nest", "blended_family"},
		IntegrationPoints: []string{"Attachment Theory", "Sensate Focus", "Gottman Method"},
	},
	{
		Name:              "Internal Family Systems",
		Domain:            DomainFoundationAttachment,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraSevereMentalIll},
		IssueTypes:        []string{"attachment_injury", "emotional_dysregulation", "childhood_trauma"},
		LifeStages:        []string{"dating", "established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Complex PTSD Psychoeducation", "Narcissistic Abuse Recovery"},
	},
	{
		Name:              "Differentiation of Self",
		Domain:            DomainFoundationAttachment,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"emotional_distance", "in_law_conflict", "anxious_attachment"},
		LifeStages:        []string{"engaged", "newlywed", "established", "empty_nest"},
		IntegrationPoints: []string{"Family Systems Mapping", "In-Law Boundary Setting"},
		CulturalFlags:     []string{"collectivist_family"},
	},
	{
		Name:          "Adult Attachment Psychoeducation",
		Domain:        DomainFoundationAttachment,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"anxious_attachment", "avoidant_attachment"},
		LifeStages:    []string{"dating", "engaged", "newlywed", "established"},
	},
	{
		Name:              "Imago Relationship Therapy",
		Domain:            DomainFoundationAttachment,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraActiveAbuse},
		IssueTypes:        []string{"conflict", "emotional_distance", "attachment_injury"},
		LifeStages:        []string{"established", "empty_nest"},
		IntegrationPoints: []string{"Active Listening Training"},
	},

	// Communication & Conflict
	{
		Name:              "Gottman Method",
		Domain:            DomainCommunicationConflict,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraActiveAbuse},
		IssueTypes:        []string{"conflict", "communication_breakdown", "emotional_distance"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "parenting_young", "parenting_teens", "empty_nest", "blended_family"},
		IntegrationPoints: []string{"Attachment Theory", "Window of Tolerance Psychoeducation", "Atone-Attune-Attach Model"},
	},
	{
		Name:              "Nonviolent Communication",
		Domain:            DomainCommunicationConflict,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"communication_breakdown", "conflict"},
		LifeStages:        []string{"dating", "engaged", "newlywed", "established", "parenting_young", "parenting_teens", "blended_family"},
		IntegrationPoints: []string{"Money Scripts Assessment", "Emotion Coaching for Parents"},
		CulturalFlags:     []string{"intercultural"},
	},
	{
		Name:              "Gottman-Rapoport Protocol",
		Domain:            DomainCommunicationConflict,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"conflict", "communication_breakdown"},
		LifeStages:        []string{"established", "parenting_young", "parenting_teens"},
		IntegrationPoints: []string{"Gottman Method"},
	},
	{
		Name:          "Active Listening Training",
		Domain:        DomainCommunicationConflict,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"communication_breakdown", "emotional_distance"},
		LifeStages:    []string{"dating", "engaged", "newlywed", "established", "empty_nest"},
	},
	{
		Name:          "Speaker-Listener Technique",
		Domain:        DomainCommunicationConflict,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"communication_breakdown", "conflict"},
		LifeStages:    []string{"engaged", "newlywed", "established"},
	},
	{
		Name:          "Fair Fighting Protocol",
		Domain:        DomainCommunicationConflict,
		Tier:          models.TierBronze,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"conflict"},
		LifeStages:    []string{"dating", "established", "parenting_young"},
	},
	{
		Name:              "Repair Attempt Coaching",
		Domain:            DomainCommunicationConflict,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"conflict", "emotional_distance"},
		LifeStages:        []string{"established", "parenting_young", "parenting_teens"},
		IntegrationPoints: []string{"Gottman Method"},
	},

	// Addiction & Compulsive Behavior
	{
		Name:              "Motivational Interviewing",
		Domain:            DomainAddictionRecovery,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"addiction", "partner_addiction"},
		LifeStages:        []string{"dating", "established", "parenting_young", "divorced_rebuilding"},
		IntegrationPoints: []string{"CRAFT for Partners", "Relapse Prevention Planning"},
	},
	{
		Name:              "CRAFT for Partners",
		Domain:            DomainAddictionRecovery,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageYellow,
		Contraindications: []string{ContraActiveAbuse},
		IssueTypes:        []string{"partner_addiction"},
		LifeStages:        []string{"established", "parenting_young", "parenting_teens"},
		IntegrationPoints: []string{"Motivational Interviewing", "Nonviolent Communication"},
	},
	{
		Name:              "Relapse Prevention Planning",
		Domain:            DomainAddictionRecovery,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageOrange,
		Contraindications: []string{ContraAcuteCrisis},
		IssueTypes:        []string{"addiction"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Motivational Interviewing"},
	},
	{
		Name:          "12-Step Facilitation",
		Domain:        DomainAddictionRecovery,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageYellow,
		IssueTypes:    []string{"addiction", "partner_addiction"},
		LifeStages:    []string{"established", "divorced_rebuilding"},
		CulturalFlags: []string{"faith_centered"},
	},
	{
		Name:          "SMART Recovery Tools",
		Domain:        DomainAddictionRecovery,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageYellow,
		IssueTypes:    []string{"addiction"},
		LifeStages:    []string{"dating", "established"},
	},
	{
		Name:              "Pornography Compulsion Protocol",
		Domain:            DomainAddictionRecovery,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"addiction", "sexual_disconnection", "online_infidelity"},
		LifeStages:        []string{"dating", "newlywed", "established"},
		IntegrationPoints: []string{"Sensate Focus", "Digital Boundary Setting"},
	},

	// Trust & Betrayal Repair
	{
		Name:              "Atone-Attune-Attach Model",
		Domain:            DomainTrustBetrayal,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageYellow,
		Contraindications: []string{ContraOngoingDeception},
		IssueTypes:        []string{"infidelity", "betrayal", "trust_erosion"},
		LifeStages:        []string{"established", "newlywed", "empty_nest"},
		IntegrationPoints: []string{"Gottman Method", "Betrayal Trauma Psychoeducation"},
	},
	{
		Name:              "Disclosure Protocol",
		Domain:            DomainTrustBetrayal,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		Contraindications: []string{ContraAcuteCrisis, ContraActiveLitigation},
		IssueTypes:        []string{"infidelity", "financial_infidelity", "betrayal"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
	},
	{
		Name:              "Betrayal Trauma Psychoeducation",
		Domain:            DomainTrustBetrayal,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageOrange,
		IssueTypes:        []string{"betrayal", "infidelity", "trauma"},
		LifeStages:        []string{"established", "divorced_rebuilding"},
		IntegrationPoints: []string{"Trauma-Informed Stabilization"},
	},
	{
		Name:              "Transparency Contracting",
		Domain:            DomainTrustBetrayal,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageYellow,
		Contraindications: []string{ContraOngoingDeception},
		IssueTypes:        []string{"trust_erosion", "infidelity", "financial_infidelity"},
		LifeStages:        []string{"established"},
	},
	{
		Name:          "Forgiveness Process Model",
		Domain:        DomainTrustBetrayal,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"betrayal", "trust_erosion"},
		LifeStages:    []string{"established", "empty_nest", "divorced_rebuilding"},
		CulturalFlags: []string{"faith_centered"},
	},

	// Intimacy & Sexuality
	{
		Name:              "Sensate Focus",
		Domain:            DomainIntimacySexuality,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraActiveAbuse, ContraUntreatedTrauma},
		IssueTypes:        []string{"sexual_disconnection", "desire_discrepancy"},
		LifeStages:        []string{"newlywed", "established", "empty_nest"},
		IntegrationPoints: []string{"Emotionally Focused Therapy", "Attachment Theory"},
	},
	{
		Name:          "Desire Discrepancy Coaching",
		Domain:        DomainIntimacySexuality,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"desire_discrepancy", "sexual_disconnection"},
		LifeStages:    []string{"newlywed", "established", "parenting_young", "empty_nest"},
	},
	{
		Name:          "Sexual Communication Scripts",
		Domain:        DomainIntimacySexuality,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"sexual_disconnection", "communication_breakdown"},
		LifeStages:    []string{"dating", "newlywed", "established"},
		CulturalFlags: []string{"traditional_gender_roles"},
	},
	{
		Name:          "Dual Control Model Psychoeducation",
		Domain:        DomainIntimacySexuality,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"desire_discrepancy"},
		LifeStages:    []string{"established", "empty_nest"},
	},
	{
		Name:          "Emotional Intimacy Ladder",
		Domain:        DomainIntimacySexuality,
		Tier:          models.TierBronze,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"emotional_distance", "sexual_disconnection"},
		LifeStages:    []string{"dating", "established"},
	},

	// Financial Stress & Provider Identity
	{
		Name:              "Financial Therapy Fundamentals",
		Domain:            DomainFinancialMens,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"financial_stress", "conflict"},
		LifeStages:        []string{"engaged", "newlywed", "established", "parenting_young", "retirement"},
		IntegrationPoints: []string{"Money Scripts Assessment"},
	},
	{
		Name:              "Money Scripts Assessment",
		Domain:            DomainFinancialMens,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"financial_stress", "provider_pressure"},
		LifeStages:        []string{"engaged", "newlywed", "established", "retirement"},
		IntegrationPoints: []string{"Nonviolent Communication", "Financial Therapy Fundamentals"},
	},
	{
		Name:              "Financial Infidelity Repair",
		Domain:            DomainFinancialMens,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageYellow,
		Contraindications: []string{ContraOngoingDeception},
		IssueTypes:        []string{"financial_infidelity", "trust_erosion"},
		LifeStages:        []string{"established", "empty_nest"},
		IntegrationPoints: []string{"Disclosure Protocol", "Transparency Contracting"},
	},
	{
		Name:          "Joint Budget Protocol",
		Domain:        DomainFinancialMens,
		Tier:          models.TierBronze,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"financial_stress"},
		LifeStages:    []string{"engaged", "newlywed", "established", "parenting_young"},
	},
	{
		Name:          "Provider Identity Reframe",
		Domain:        DomainFinancialMens,
		Tier:          models.TierBronze,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"provider_pressure", "financial_stress"},
		LifeStages:    []string{"established", "parenting_young", "retirement"},
		CulturalFlags: []string{"traditional_gender_roles"},
	},
	{
		Name:          "Scarcity Cycle Psychoeducation",
		Domain:        DomainFinancialMens,
		Tier:          models.TierCopper,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"financial_stress"},
		LifeStages:    []string{"established", "parenting_young"},
	},

	// Parenting & Family Systems
	{
		Name:              "Emotion Coaching for Parents",
		Domain:            DomainParentingFamily,
		Tier:              models.TierGold,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"parenting_conflict", "emotional_dysregulation"},
		LifeStages:        []string{"parenting_young", "parenting_teens", "blended_family"},
		IntegrationPoints: []string{"Nonviolent Communication", "Gottman Method"},
	},
	{
		Name:              "Family Systems Mapping",
		Domain:            DomainParentingFamily,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"parenting_conflict", "in_law_conflict", "coparenting"},
		LifeStages:        []string{"parenting_young", "parenting_teens", "blended_family", "empty_nest"},
		IntegrationPoints: []string{"Differentiation of Self"},
		CulturalFlags:     []string{"collectivist_family", "immigrant_family"},
	},
	{
		Name:              "Co-Parenting Protocol",
		Domain:            DomainParentingFamily,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageGreen,
		Contraindications: []string{ContraActiveLitigation},
		IssueTypes:        []string{"coparenting", "parenting_conflict"},
		LifeStages:        []string{"divorced_rebuilding", "blended_family"},
	},
	{
		Name:          "Blended Family Integration",
		Domain:        DomainParentingFamily,
		Tier:          models.TierSilver,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"parenting_conflict", "coparenting"},
		LifeStages:    []string{"blended_family"},
	},
	{
		Name:          "Parenting Style Alignment",
		Domain:        DomainParentingFamily,
		Tier:          models.TierBronze,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"parenting_conflict"},
		LifeStages:    []string{"parenting_young", "parenting_teens"},
	},
	{
		Name:              "In-Law Boundary Setting",
		Domain:            DomainParentingFamily,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"in_law_conflict"},
		LifeStages:        []string{"newlywed", "established", "parenting_young"},
		IntegrationPoints: []string{"Differentiation of Self"},
		CulturalFlags:     []string{"collectivist_family", "immigrant_family"},
	},

	// Modern Threats & Digital Strain
	{
		Name:              "Online Infidelity Triage",
		Domain:            DomainModernThreats,
		Tier:              models.TierSilver,
		DefaultTriage:     models.TriageYellow,
		IssueTypes:        []string{"online_infidelity", "infidelity", "digital_conflict"},
		LifeStages:        []string{"dating", "established"},
		IntegrationPoints: []string{"Atone-Attune-Attach Model", "Digital Boundary Setting"},
	},
	{
		Name:              "Digital Boundary Setting",
		Domain:            DomainModernThreats,
		Tier:              models.TierBronze,
		DefaultTriage:     models.TriageGreen,
		IssueTypes:        []string{"digital_conflict", "emotional_distance"},
		LifeStages:        []string{"dating", "newlywed", "established", "parenting_teens"},
		IntegrationPoints: []string{"Pornography Compulsion Protocol"},
	},
	{
		Name:          "Social Media Conflict Protocol",
		Domain:        DomainModernThreats,
		Tier:          models.TierCopper,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"digital_conflict", "conflict"},
		LifeStages:    []string{"dating", "newlywed", "established"},
	},
	{
		Name:          "Phone-Free Connection Rituals",
		Domain:        DomainModernThreats,
		Tier:          models.TierCopper,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"emotional_distance", "digital_conflict"},
		LifeStages:    []string{"dating", "newlywed", "established", "parenting_young"},
	},
	{
		Name:          "Comparison Culture Reframe",
		Domain:        DomainModernThreats,
		Tier:          models.TierCopper,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"digital_conflict", "emotional_distance"},
		LifeStages:    []string{"dating", "newlywed"},
	},
	{
		Name:          "Remote Work Strain Protocol",
		Domain:        DomainModernThreats,
		Tier:          models.TierCopper,
		DefaultTriage: models.TriageGreen,
		IssueTypes:    []string{"emotional_distance", "conflict"},
		LifeStages:    []string{"newlywed", "established", "parenting_young"},
	},
}
