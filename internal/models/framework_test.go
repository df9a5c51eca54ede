// ABOUTME: Tests for Framework metadata accessors
// ABOUTME: Verifies issue and life-stage membership checks
package models

import "testing"

func TestFramework_AddressesIssue(t *testing.T) {
	fw := Framework{
		Name:       "Gottman Method",
		IssueTypes: []string{"conflict", "communication_breakdown"},
	}

	if !fw.AddressesIssue("conflict") {
		t.Error("AddressesIssue(conflict) = false, want true")
	}
	if fw.AddressesIssue("abuse") {
		t.Error("AddressesIssue(abuse) = true, want false")
	}

	empty := Framework{Name: "bare"}
	if empty.AddressesIssue("conflict") {
		t.Error("framework without issue types should address nothing")
	}
}

func TestFramework_AppliesToLifeStage(t *testing.T) {
	fw := Framework{
		Name:       "Sensate Focus",
		LifeStages: []string{"newlywed", "established"},
	}

	if !fw.AppliesToLifeStage("established") {
		t.Error("AppliesToLifeStage(established) = false, want true")
	}
	if fw.AppliesToLifeStage("retirement") {
		t.Error("AppliesToLifeStage(retirement) = true, want false")
	}
}

func TestTriageDecision_IsExcluded(t *testing.T) {
	td := TriageDecision{
		ExcludedFrameworks: []string{"Gottman Method", "Sensate Focus"},
	}

	if !td.IsExcluded("Gottman Method") {
		t.Error("IsExcluded(Gottman Method) = false, want true")
	}
	if td.IsExcluded("Attachment Theory") {
		t.Error("IsExcluded(Attachment Theory) = true, want false")
	}

	var emptyTD TriageDecision
	if emptyTD.IsExcluded("anything") {
		t.Error("empty exclusion list should exclude nothing")
	}
}
