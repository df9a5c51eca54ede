// ABOUTME: Tests for the cross-pillar trigger table and seeded defaults
// ABOUTME: Triggers toggle via is_active and are never deleted
package storage

import (
	"testing"

	"github.com/purposewaze/relate-coach/internal/models"
)

func TestTriggerStore_SeededDefaults(t *testing.T) {
	store := newTestStorage(t)

	count, err := store.Triggers().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 6 {
		t.Errorf("Count() = %d, want 6 seeded triggers", count)
	}

	active, err := store.Triggers().Active()
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if len(active) != 6 {
		t.Errorf("len(Active()) = %d, want 6", len(active))
	}

	ids := make(map[string]models.CrossPillarTrigger)
	for _, trig := range active {
		ids[trig.TriggerID] = trig
	}
	jobLoss, ok := ids["trig_job_loss"]
	if !ok {
		t.Fatal("seeded trig_job_loss missing")
	}
	if len(jobLoss.Keywords) != 4 {
		t.Errorf("trig_job_loss Keywords = %v, want 4 entries", jobLoss.Keywords)
	}
	if len(jobLoss.AffectedPillars) != 2 || jobLoss.AffectedPillars[0] != models.PillarFinancial {
		t.Errorf("trig_job_loss AffectedPillars = %v", jobLoss.AffectedPillars)
	}
	if jobLoss.RootCause == "" || jobLoss.PresentingSymptom == "" {
		t.Error("seeded trigger missing root cause or presenting symptom")
	}
}

func TestTriggerStore_SeedDefaultsIdempotent(t *testing.T) {
	store := newTestStorage(t)

	if err := store.Triggers().SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}

	count, err := store.Triggers().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 6 {
		t.Errorf("Count() = %d after reseed, want 6", count)
	}
}

func TestTriggerStore_SetActive(t *testing.T) {
	store := newTestStorage(t)

	if err := store.Triggers().SetActive("trig_job_loss", false); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	active, err := store.Triggers().Active()
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if len(active) != 5 {
		t.Errorf("len(Active()) = %d, want 5 after disable", len(active))
	}
	for _, trig := range active {
		if trig.TriggerID == "trig_job_loss" {
			t.Error("disabled trigger returned by Active()")
		}
	}

	all, err := store.Triggers().All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 6 {
		t.Errorf("len(All()) = %d, want 6 including disabled", len(all))
	}

	if err := store.Triggers().SetActive("trig_job_loss", true); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}
	active, err = store.Triggers().Active()
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if len(active) != 6 {
		t.Errorf("len(Active()) = %d, want 6 after re-enable", len(active))
	}
}

func TestTriggerStore_SaveRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	custom := &models.CrossPillarTrigger{
		TriggerID:          "trig_custom",
		Keywords:           []string{"training for a marathon"},
		AffectedPillars:    []models.Pillar{models.PillarPhysical},
		PresentingSymptom:  "Partner feels deprioritized",
		RootCause:          "Time-intensive training crowding out couple time",
		RecommendedDomains: []string{"foundation_attachment"},
		IsActive:           true,
	}
	if err := store.Triggers().Save(custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	all, err := store.Triggers().All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("len(All()) = %d, want 7", len(all))
	}

	var got *models.CrossPillarTrigger
	for i := range all {
		if all[i].TriggerID == "trig_custom" {
			got = &all[i]
		}
	}
	if got == nil {
		t.Fatal("saved trigger not found")
	}
	if len(got.Keywords) != 1 || got.Keywords[0] != "training for a marathon" {
		t.Errorf("Keywords = %v", got.Keywords)
	}
	if len(got.RecommendedDomains) != 1 || got.RecommendedDomains[0] != "foundation_attachment" {
		t.Errorf("RecommendedDomains = %v", got.RecommendedDomains)
	}

	// Upsert updates in place
	custom.RootCause = "revised"
	if err := store.Triggers().Save(custom); err != nil {
		t.Fatalf("Save() upsert error = %v", err)
	}
	count, err := store.Triggers().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 7 {
		t.Errorf("Count() = %d after upsert, want 7", count)
	}
}

func TestStorage_ActiveTriggers(t *testing.T) {
	store := newTestStorage(t)

	rows, err := store.ActiveTriggers()
	if err != nil {
		t.Fatalf("ActiveTriggers() error = %v", err)
	}
	if len(rows) != 6 {
		t.Errorf("len(ActiveTriggers()) = %d, want 6", len(rows))
	}
}
