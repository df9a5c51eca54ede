// ABOUTME: Tests for registry integrity and lookup accessors
// ABOUTME: Verifies the catalog is internally consistent and fully resolvable
package registry

import (
	"testing"

	"github.com/purposewaze/relate-coach/internal/models"
)

func TestCatalogSize(t *testing.T) {
	if got := len(AllFrameworks()); got != 59 {
		t.Errorf("len(AllFrameworks()) = %d, want 59", got)
	}
	if got := len(Domains()); got != 10 {
		t.Errorf("len(Domains()) = %d, want 10", got)
	}
}

func TestDomainMembersResolve(t *testing.T) {
	total := 0
	for _, d := range Domains() {
		for _, name := range d.Frameworks {
			fw, err := FrameworkByName(name)
			if err != nil {
				t.Errorf("domain %s references unknown framework %q", d.ID, name)
				continue
			}
			if fw.Domain != d.ID {
				t.Errorf("framework %q has Domain = %q, want %q", name, fw.Domain, d.ID)
			}
			total++
		}
	}
	if total != 59 {
		t.Errorf("sum of domain members = %d, want 59", total)
	}
}

func TestFrameworkByName_Unknown(t *testing.T) {
	if _, err := FrameworkByName("Imaginary Protocol"); err == nil {
		t.Error("FrameworkByName() should error for unknown framework")
	}
}

func TestDomainByID_Unknown(t *testing.T) {
	if _, err := DomainByID("astrology"); err == nil {
		t.Error("DomainByID() should error for unknown domain")
	}
}

func TestFrameworkMetadata(t *testing.T) {
	for _, fw := range AllFrameworks() {
		if TierWeight(fw.Tier) == 0 {
			t.Errorf("framework %q has unrecognized tier %q", fw.Name, fw.Tier)
		}
		if SeverityRank(fw.DefaultTriage) == 0 && fw.DefaultTriage != models.TriageGreen {
			t.Errorf("framework %q has unrecognized triage %q", fw.Name, fw.DefaultTriage)
		}
	}
}

func TestIntegrationPointsResolve(t *testing.T) {
	for _, fw := range AllFrameworks() {
		for _, ip := range fw.IntegrationPoints {
			if ip == fw.Name {
				t.Errorf("framework %q lists itself as an integration point", fw.Name)
			}
			if _, err := FrameworkByName(ip); err != nil {
				t.Errorf("framework %q integration point %q does not resolve", fw.Name, ip)
			}
		}
	}
}

func TestBridgeEndpointsResolve(t *testing.T) {
	for _, b := range AllBridges() {
		if _, err := FrameworkByName(b.FromFramework); err != nil {
			t.Errorf("bridge from %q does not resolve", b.FromFramework)
		}
		if _, err := FrameworkByName(b.ToFramework); err != nil {
			t.Errorf("bridge to %q does not resolve", b.ToFramework)
		}
		if b.Concept == "" || b.Application == "" {
			t.Errorf("bridge %s->%s missing concept or application", b.FromFramework, b.ToFramework)
		}
	}
}

func TestTierWeights(t *testing.T) {
	tests := []struct {
		tier models.EvidenceTier
		want float64
	}{
		{models.TierGold, 1.0},
		{models.TierSilver, 0.75},
		{models.TierBronze, 0.5},
		{models.TierCopper, 0.25},
	}
	for _, tt := range tests {
		if got := TierWeight(tt.tier); got != tt.want {
			t.Errorf("TierWeight(%s) = %v, want %v", tt.tier, got, tt.want)
		}
	}

	if !BetterTier(models.TierGold, models.TierSilver) {
		t.Error("BetterTier(gold, silver) = false, want true")
	}
	if BetterTier(models.TierCopper, models.TierCopper) {
		t.Error("BetterTier(copper, copper) = true, want false")
	}
}

func TestSeverityOrdering(t *testing.T) {
	colors := []models.TriageColor{models.TriageGreen, models.TriageYellow, models.TriageOrange, models.TriageRed}
	for i := 1; i < len(colors); i++ {
		if SeverityRank(colors[i]) <= SeverityRank(colors[i-1]) {
			t.Errorf("SeverityRank(%s) should exceed SeverityRank(%s)", colors[i], colors[i-1])
		}
	}
}

func TestTriagePolicies_HomeworkGate(t *testing.T) {
	if TriagePolicy(models.TriageRed).AllowHomework {
		t.Error("red policy must not allow homework")
	}
	if TriagePolicy(models.TriageOrange).AllowHomework {
		t.Error("orange policy must not allow homework")
	}
	if !TriagePolicy(models.TriageYellow).AllowHomework {
		t.Error("yellow policy should allow homework")
	}
	if !TriagePolicy(models.TriageGreen).AllowHomework {
		t.Error("green policy should allow homework")
	}

	if TriagePolicy(models.TriageRed).SafetyPreamble == "" {
		t.Error("red policy should carry a safety preamble")
	}
	if TriagePolicy(models.TriageOrange).SafetyPreamble == "" {
		t.Error("orange policy should carry a safety preamble")
	}
}

func TestIssuePriorities_SafetyDominates(t *testing.T) {
	if IssuePriority("abuse") <= IssuePriority("conflict") {
		t.Error("abuse priority should exceed conflict priority")
	}
	if IssuePriority("addiction") <= IssuePriority("digital_conflict") {
		t.Error("addiction priority should exceed digital_conflict priority")
	}
	if IssuePriority("made_up_issue") != 0 {
		t.Error("unknown issues should score 0")
	}
}

func TestDominantTriage(t *testing.T) {
	// Abuse domain contains red-default frameworks
	if got := DominantTriage(DomainAbuseNarcissism); got != models.TriageRed {
		t.Errorf("DominantTriage(abuse_narcissism) = %s, want red", got)
	}
	// Unknown domains default to green
	if got := DominantTriage("unknown"); got != models.TriageGreen {
		t.Errorf("DominantTriage(unknown) = %s, want green", got)
	}
}

func TestFindBridges_Bidirectional(t *testing.T) {
	forward := FindBridges(DomainFinancialMens, DomainCommunicationConflict, nil)
	reverse := FindBridges(DomainCommunicationConflict, DomainFinancialMens, nil)
	if len(forward) == 0 {
		t.Fatal("expected at least one curated bridge between financial_mens and communication_conflict")
	}
	if len(forward) != len(reverse) {
		t.Errorf("bridge lookup not symmetric: %d forward, %d reverse", len(forward), len(reverse))
	}
}

func TestSynthesizeBridge(t *testing.T) {
	b := SynthesizeBridge(DomainTraumaRecovery, DomainModernThreats)
	if b.Concept == "" || b.Application == "" {
		t.Error("synthesized bridge should have concept and application")
	}
}
