// ABOUTME: Tests for cross-pillar pillar scoring, cascade matching, and triggers
// ABOUTME: Uses a fake TriggerSource; the detector must degrade on lookup errors
package core

import (
	"errors"
	"testing"

	"github.com/purposewaze/relate-coach/internal/models"
)

type fakeTriggerSource struct {
	rows []models.CrossPillarTrigger
	err  error
}

func (f *fakeTriggerSource) ActiveTriggers() ([]models.CrossPillarTrigger, error) {
	return f.rows, f.err
}

func TestDetect_SleepDeprivationCascade(t *testing.T) {
	d := NewCrossPillarDetector(nil)
	signals := d.Detect("I'm exhausted all the time and we fight about everything", nil, nil)

	if signals.PrimaryPillar != models.PillarPhysical {
		t.Errorf("PrimaryPillar = %s, want physical", signals.PrimaryPillar)
	}
	if signals.RootCauseHypothesis != SleepDeprivationHypothesis {
		t.Errorf("RootCauseHypothesis = %q", signals.RootCauseHypothesis)
	}
	if !signals.CrossPillarChunksNeeded {
		t.Error("CrossPillarChunksNeeded = false, want true")
	}

	var physical *models.PillarSignal
	for i := range signals.DetectedPillars {
		if signals.DetectedPillars[i].Pillar == models.PillarPhysical {
			physical = &signals.DetectedPillars[i]
		}
	}
	if physical == nil {
		t.Fatal("physical pillar not detected")
	}
	if physical.Confidence != 0.8 {
		t.Errorf("physical confidence = %v, want 0.8", physical.Confidence)
	}
	if len(physical.Evidence) == 0 {
		t.Error("physical signal should carry evidence")
	}
}

func TestDetect_RelationalBaseline(t *testing.T) {
	d := NewCrossPillarDetector(nil)
	signals := d.Detect("We disagree about how to load the dishwasher", nil, nil)

	if signals.PrimaryPillar != models.PillarRelational {
		t.Errorf("PrimaryPillar = %s, want relational", signals.PrimaryPillar)
	}
	if len(signals.DetectedPillars) != 1 {
		t.Fatalf("len(DetectedPillars) = %d, want 1", len(signals.DetectedPillars))
	}
	if signals.DetectedPillars[0].Confidence != 0.5 {
		t.Errorf("relational confidence = %v, want 0.5", signals.DetectedPillars[0].Confidence)
	}
	if signals.CrossPillarChunksNeeded {
		t.Error("CrossPillarChunksNeeded = true, want false")
	}
	if signals.RootCauseHypothesis != "" {
		t.Errorf("RootCauseHypothesis = %q, want empty", signals.RootCauseHypothesis)
	}
}

func TestDetect_WeakSignalBelowThreshold(t *testing.T) {
	d := NewCrossPillarDetector(nil)
	// "second job" scores financial at 0.4, exactly at the detect threshold
	// but below the chunk threshold
	signals := d.Detect("I picked up a second job and we never see each other", nil, nil)

	if signals.PrimaryPillar != models.PillarRelational {
		t.Errorf("PrimaryPillar = %s, want relational", signals.PrimaryPillar)
	}
	if signals.CrossPillarChunksNeeded {
		t.Error("CrossPillarChunksNeeded = true, want false at 0.4 confidence")
	}

	found := false
	for _, sig := range signals.DetectedPillars {
		if sig.Pillar == models.PillarFinancial {
			found = true
			if sig.Confidence != 0.4 {
				t.Errorf("financial confidence = %v, want 0.4", sig.Confidence)
			}
		}
	}
	if !found {
		t.Error("financial pillar at 0.4 should still be detected")
	}
}

func TestDetect_CascadeTakesPrecedenceOverTriggers(t *testing.T) {
	src := &fakeTriggerSource{rows: []models.CrossPillarTrigger{
		{
			TriggerID: "trig_test",
			Keywords:  []string{"exhausted"},
			RootCause: "trigger root cause",
		},
	}}
	d := NewCrossPillarDetector(src)
	signals := d.Detect("I'm exhausted and we argue constantly", nil, nil)

	if signals.RootCauseHypothesis != SleepDeprivationHypothesis {
		t.Errorf("RootCauseHypothesis = %q, want sleep cascade text", signals.RootCauseHypothesis)
	}
	if len(signals.TriggerMatches) != 1 {
		t.Errorf("len(TriggerMatches) = %d, want 1", len(signals.TriggerMatches))
	}
}

func TestDetect_TriggerProvidesHypothesisWhenNoCascade(t *testing.T) {
	src := &fakeTriggerSource{rows: []models.CrossPillarTrigger{
		{
			TriggerID:         "trig_shift_work",
			Keywords:          []string{"night shift"},
			PresentingSymptom: "never see each other",
			RootCause:         "opposing schedules erode shared time",
			AffectedPillars:   []models.Pillar{models.PillarPhysical},
		},
	}}
	d := NewCrossPillarDetector(src)
	signals := d.Detect("She works the night shift now and we barely talk", nil, nil)

	if signals.RootCauseHypothesis != "opposing schedules erode shared time" {
		t.Errorf("RootCauseHypothesis = %q, want trigger root cause", signals.RootCauseHypothesis)
	}
	if len(signals.TriggerMatches) != 1 {
		t.Fatalf("len(TriggerMatches) = %d, want 1", len(signals.TriggerMatches))
	}
	if signals.TriggerMatches[0].TriggerID != "trig_shift_work" {
		t.Errorf("TriggerID = %s, want trig_shift_work", signals.TriggerMatches[0].TriggerID)
	}
}

func TestDetect_TriggerRankingAndCap(t *testing.T) {
	src := &fakeTriggerSource{rows: []models.CrossPillarTrigger{
		{TriggerID: "one_kw", Keywords: []string{"tired"}, RootCause: "a"},
		{TriggerID: "two_kw", Keywords: []string{"tired", "baby"}, RootCause: "b"},
		{TriggerID: "no_match", Keywords: []string{"casino"}, RootCause: "c"},
		{TriggerID: "also_one", Keywords: []string{"baby"}, RootCause: "d"},
		{TriggerID: "extra", Keywords: []string{"tired"}, RootCause: "e"},
	}}
	d := NewCrossPillarDetector(src)
	signals := d.Detect("So tired since the baby arrived", nil, nil)

	if len(signals.TriggerMatches) != 3 {
		t.Fatalf("len(TriggerMatches) = %d, want 3", len(signals.TriggerMatches))
	}
	if signals.TriggerMatches[0].TriggerID != "two_kw" {
		t.Errorf("TriggerMatches[0].TriggerID = %s, want two_kw", signals.TriggerMatches[0].TriggerID)
	}
	if len(signals.TriggerMatches[0].MatchedKeywords) != 2 {
		t.Errorf("MatchedKeywords = %v, want 2 entries", signals.TriggerMatches[0].MatchedKeywords)
	}
}

func TestDetect_TriggerLookupFailureIsNonFatal(t *testing.T) {
	src := &fakeTriggerSource{err: errors.New("database locked")}
	d := NewCrossPillarDetector(src)
	signals := d.Detect("I'm exhausted and we argue constantly", nil, nil)

	if len(signals.TriggerMatches) != 0 {
		t.Errorf("len(TriggerMatches) = %d, want 0 after lookup failure", len(signals.TriggerMatches))
	}
	if signals.RootCauseHypothesis != SleepDeprivationHypothesis {
		t.Error("cascade matching should still run after trigger failure")
	}
}

func TestDetect_MultiplePillars(t *testing.T) {
	d := NewCrossPillarDetector(nil)
	signals := d.Detect("I lost my job and I've been so depressed I can barely function", nil, nil)

	pillars := make(map[models.Pillar]float64)
	for _, sig := range signals.DetectedPillars {
		pillars[sig.Pillar] = sig.Confidence
	}
	if pillars[models.PillarFinancial] != 0.8 {
		t.Errorf("financial confidence = %v, want 0.8", pillars[models.PillarFinancial])
	}
	if pillars[models.PillarMental] != 0.8 {
		t.Errorf("mental confidence = %v, want 0.8", pillars[models.PillarMental])
	}
	// Stable sort keeps evaluation order among equal confidences
	if signals.PrimaryPillar != models.PillarFinancial {
		t.Errorf("PrimaryPillar = %s, want financial", signals.PrimaryPillar)
	}
	if !signals.CrossPillarChunksNeeded {
		t.Error("CrossPillarChunksNeeded = false, want true")
	}
}
