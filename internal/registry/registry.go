// ABOUTME: Read-only lookup API over the static coaching metadata registry
// ABOUTME: All tables are package-level immutable data; accessors never mutate
package registry

import (
	"fmt"

	"github.com/purposewaze/relate-coach/internal/models"
)

var frameworkIndex = buildFrameworkIndex()

func buildFrameworkIndex() map[string]*models.Framework {
	idx := make(map[string]*models.Framework, len(frameworks))
	for i := range frameworks {
		idx[frameworks[i].Name] = &frameworks[i]
	}
	return idx
}

// Domains returns the 10 framework domains in fixed registry order
func Domains() []models.FrameworkDomain {
	out := make([]models.FrameworkDomain, len(domains))
	copy(out, domains)
	return out
}

// DomainByID looks up a domain by its identifier
func DomainByID(id string) (*models.FrameworkDomain, error) {
	for i := range domains {
		if domains[i].ID == id {
			d := domains[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("unknown domain: %s", id)
}

// FrameworkByName looks up a framework by its exact name
func FrameworkByName(name string) (*models.Framework, error) {
	fw, ok := frameworkIndex[name]
	if !ok {
		return nil, fmt.Errorf("unknown framework: %s", name)
	}
	f := *fw
	return &f, nil
}

// FrameworksForDomain returns the domain's member frameworks in catalog order
func FrameworksForDomain(domainID string) []models.Framework {
	d, err := DomainByID(domainID)
	if err != nil {
		return nil
	}
	out := make([]models.Framework, 0, len(d.Frameworks))
	for _, name := range d.Frameworks {
		if fw, ok := frameworkIndex[name]; ok {
			out = append(out, *fw)
		}
	}
	return out
}

// AllFrameworks returns the full catalog
func AllFrameworks() []models.Framework {
	out := make([]models.Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// DominantTriage returns the highest-severity default triage color among a
// domain's member frameworks. Defaults to green for unknown domains.
func DominantTriage(domainID string) models.TriageColor {
	dominant := models.TriageGreen
	for _, fw := range FrameworksForDomain(domainID) {
		if SeverityRank(fw.DefaultTriage) > SeverityRank(dominant) {
			dominant = fw.DefaultTriage
		}
	}
	return dominant
}

// TierWeight returns the numeric weight for an evidence tier
func TierWeight(tier models.EvidenceTier) float64 {
	if w, ok := tierWeights[tier]; ok {
		return w
	}
	return 0
}

// BetterTier reports whether a is a stronger evidence tier than b
func BetterTier(a, b models.EvidenceTier) bool {
	return TierWeight(a) > TierWeight(b)
}

// SeverityRank orders triage colors red > orange > yellow > green
func SeverityRank(color models.TriageColor) int {
	switch color {
	case models.TriageRed:
		return 3
	case models.TriageOrange:
		return 2
	case models.TriageYellow:
		return 1
	default:
		return 0
	}
}

// TriagePolicy returns the response policy for a triage color
func TriagePolicy(color models.TriageColor) ColorPolicy {
	if p, ok := triagePolicies[color]; ok {
		return p
	}
	return triagePolicies[models.TriageGreen]
}

// IssuePriority returns the score bonus for an issue type (0 if unlisted)
func IssuePriority(issue string) float64 {
	return issuePriorities[issue]
}
