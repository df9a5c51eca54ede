// ABOUTME: Tests for the rule-based memory extractor
// ABOUTME: Covers multi-rule firing, sentence capture, and no-match messages
package memory

import (
	"strings"
	"testing"

	"github.com/purposewaze/relate-coach/internal/models"
)

func TestExtractFromMessage_MultipleRules(t *testing.T) {
	msg := "I tried the breathing exercise you gave me and it actually worked"
	extracted := ExtractFromMessage(msg)

	types := make(map[models.MemoryType]ExtractedMemory)
	for _, ex := range extracted {
		types[ex.MemoryType] = ex
	}

	br, ok := types[models.MemoryBreakthrough]
	if !ok {
		t.Fatal("breakthrough rule did not fire")
	}
	if br.Importance != 0.9 {
		t.Errorf("breakthrough importance = %v, want 0.9", br.Importance)
	}

	tt, ok := types[models.MemoryTechniqueTried]
	if !ok {
		t.Fatal("technique_tried rule did not fire")
	}
	if tt.Importance != 0.75 {
		t.Errorf("technique_tried importance = %v, want 0.75", tt.Importance)
	}

	hw, ok := types[models.MemoryHomeworkAssigned]
	if !ok {
		t.Fatal("homework_assigned rule did not fire")
	}
	if hw.Excerpt != msg {
		t.Errorf("Excerpt = %q, want full message", hw.Excerpt)
	}
}

func TestExtractFromMessage_NoMatch(t *testing.T) {
	if extracted := ExtractFromMessage("The weather is nice today"); extracted != nil {
		t.Errorf("ExtractFromMessage() = %v, want nil", extracted)
	}
}

func TestExtractFromMessage_RuleFiresOnce(t *testing.T) {
	// Two breakthrough patterns present; the rule must fire only once
	msg := "It finally clicked, a real breakthrough for the first time in years"
	extracted := ExtractFromMessage(msg)

	count := 0
	for _, ex := range extracted {
		if ex.MemoryType == models.MemoryBreakthrough {
			count++
		}
	}
	if count != 1 {
		t.Errorf("breakthrough fired %d times, want 1", count)
	}
}

func TestExtractFromMessage_CapturesSentence(t *testing.T) {
	msg := "Things have been rough lately. My goal is to stop yelling during arguments. We will see how it goes."
	extracted := ExtractFromMessage(msg)

	var goal *ExtractedMemory
	for i := range extracted {
		if extracted[i].MemoryType == models.MemoryGoalSet {
			goal = &extracted[i]
		}
	}
	if goal == nil {
		t.Fatal("goal_set rule did not fire")
	}
	if goal.MemoryText != "My goal is to stop yelling during arguments" {
		t.Errorf("MemoryText = %q, want the containing sentence", goal.MemoryText)
	}
}

func TestExtractFromMessage_Setback(t *testing.T) {
	extracted := ExtractFromMessage("We were doing better but then it all fell apart this weekend")

	if len(extracted) != 1 {
		t.Fatalf("len(extracted) = %d, want 1", len(extracted))
	}
	if extracted[0].MemoryType != models.MemorySetback {
		t.Errorf("MemoryType = %s, want setback", extracted[0].MemoryType)
	}
	if extracted[0].Importance != 0.85 {
		t.Errorf("Importance = %v, want 0.85", extracted[0].Importance)
	}
}

func TestExtractFromMessage_LongExcerptTruncated(t *testing.T) {
	msg := "I realized " + strings.Repeat("that this keeps happening to us ", 20)
	extracted := ExtractFromMessage(msg)

	if len(extracted) == 0 {
		t.Fatal("insight rule did not fire")
	}
	for _, ex := range extracted {
		if len(ex.Excerpt) > 200 {
			t.Errorf("Excerpt length = %d, want <= 200", len(ex.Excerpt))
		}
	}
}
