// ABOUTME: Tests for the memory store using an in-memory database
// ABOUTME: Covers hybrid search ranking, supersession, and the cosine helper
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/purposewaze/relate-coach/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustMemory(t *testing.T, userID, sessionID string, memType models.MemoryType, text string, importance float64, embedding []float64) *models.ConversationMemory {
	t.Helper()
	mem, err := models.NewConversationMemory(userID, sessionID, memType, text, importance)
	if err != nil {
		t.Fatalf("NewConversationMemory() error = %v", err)
	}
	mem.Embedding = embedding
	return mem
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := newTestStorage(t)

	mem := mustMemory(t, "user1", "sess1", models.MemoryBreakthrough,
		"finally named the pursue-withdraw cycle", 0.9, []float64{0.1, 0.2, 0.3})
	mem.SourceExcerpt = "we finally named it"
	mem.Issues = []string{"conflict"}

	if err := store.Memories().Save(mem); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Memories().GetByID(mem.MemoryID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.MemoryText != mem.MemoryText {
		t.Errorf("MemoryText = %q, want %q", got.MemoryText, mem.MemoryText)
	}
	if got.MemoryType != models.MemoryBreakthrough {
		t.Errorf("MemoryType = %s, want breakthrough", got.MemoryType)
	}
	if got.ImportanceScore != 0.9 {
		t.Errorf("ImportanceScore = %v, want 0.9", got.ImportanceScore)
	}
	if !got.IsActive {
		t.Error("IsActive = false, want true")
	}
	if len(got.Embedding) != 3 || got.Embedding[1] != 0.2 {
		t.Errorf("Embedding = %v, want [0.1 0.2 0.3]", got.Embedding)
	}
	if got.SourceExcerpt != "we finally named it" {
		t.Errorf("SourceExcerpt = %q", got.SourceExcerpt)
	}
	if len(got.Issues) != 1 || got.Issues[0] != "conflict" {
		t.Errorf("Issues = %v, want [conflict]", got.Issues)
	}
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.Memories().GetByID("mem_missing")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetByID() = %+v, want nil for a missing memory", got)
	}
}

func TestMemoryStore_GetBySession(t *testing.T) {
	store := newTestStorage(t)

	for _, text := range []string{"first", "second"} {
		mem := mustMemory(t, "user1", "sessA", models.MemoryInsight, text, 0.5, nil)
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	other := mustMemory(t, "user1", "sessB", models.MemoryInsight, "elsewhere", 0.5, nil)
	if err := store.Memories().Save(other); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Memories().GetBySession("user1", "sessA")
	if err != nil {
		t.Fatalf("GetBySession() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(GetBySession()) = %d, want 2", len(got))
	}
}

func TestMemoryStore_Search(t *testing.T) {
	store := newTestStorage(t)

	aligned := mustMemory(t, "user1", "sess1", models.MemoryBreakthrough,
		"aligned memory", 0.9, []float64{1, 0})
	orthogonal := mustMemory(t, "user1", "sess1", models.MemoryInsight,
		"orthogonal memory", 0.9, []float64{0, 1})
	for _, mem := range []*models.ConversationMemory{aligned, orthogonal} {
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	results, err := store.Memories().Search("user1", []float64{1, 0}, 5, 90, 0.3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	if results[0].Memory.MemoryText != "aligned memory" {
		t.Errorf("results[0] = %q, want aligned memory first", results[0].Memory.MemoryText)
	}
	if results[0].Similarity < 0.999 {
		t.Errorf("aligned similarity = %v, want ~1.0", results[0].Similarity)
	}
	if results[1].Similarity != 0 {
		t.Errorf("orthogonal similarity = %v, want 0", results[1].Similarity)
	}
	if results[0].RecencyWeight < 0.99 {
		t.Errorf("RecencyWeight = %v, want ~1.0 for a fresh memory", results[0].RecencyWeight)
	}
	if results[0].CombinedScore <= results[1].CombinedScore {
		t.Error("combined scores not in descending order")
	}
}

func TestMemoryStore_Search_MinImportanceFilter(t *testing.T) {
	store := newTestStorage(t)

	important := mustMemory(t, "user1", "sess1", models.MemoryBreakthrough, "keep", 0.9, []float64{1, 0})
	trivial := mustMemory(t, "user1", "sess1", models.MemoryInsight, "drop", 0.1, []float64{1, 0})
	for _, mem := range []*models.ConversationMemory{important, trivial} {
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	results, err := store.Memories().Search("user1", []float64{1, 0}, 5, 90, 0.3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Memory.MemoryText != "keep" {
		t.Errorf("results[0] = %q, want the important memory", results[0].Memory.MemoryText)
	}
}

func TestMemoryStore_Search_Limit(t *testing.T) {
	store := newTestStorage(t)

	for i := 0; i < 4; i++ {
		mem := mustMemory(t, "user1", "sess1", models.MemoryInsight, "insight", 0.5, []float64{1, 0})
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	results, err := store.Memories().Search("user1", []float64{1, 0}, 2, 90, 0.3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestMemoryStore_Supersede(t *testing.T) {
	store := newTestStorage(t)

	oldMem := mustMemory(t, "user1", "sess1", models.MemoryGoalSet, "old goal", 0.8, []float64{1, 0})
	newMem := mustMemory(t, "user1", "sess2", models.MemoryGoalSet, "revised goal", 0.8, []float64{1, 0})
	for _, mem := range []*models.ConversationMemory{oldMem, newMem} {
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	if err := store.Memories().Supersede(oldMem.MemoryID, newMem.MemoryID); err != nil {
		t.Fatalf("Supersede() error = %v", err)
	}

	got, err := store.Memories().GetByID(oldMem.MemoryID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.IsActive {
		t.Error("superseded memory should be inactive")
	}
	if got.SupersededBy != newMem.MemoryID {
		t.Errorf("SupersededBy = %s, want %s", got.SupersededBy, newMem.MemoryID)
	}

	results, err := store.Memories().Search("user1", []float64{1, 0}, 5, 90, 0.3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for _, rm := range results {
		if rm.Memory.MemoryID == oldMem.MemoryID {
			t.Error("superseded memory returned by Search()")
		}
	}
}

func TestMemoryStore_Supersede_NotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.Memories().Supersede("mem_missing", "mem_other")
	if err == nil {
		t.Fatal("Supersede() should error for a missing memory")
	}
	if !strings.Contains(err.Error(), "memory not found") {
		t.Errorf("error = %v, want memory not found", err)
	}
}

func TestMemoryStore_CountActive(t *testing.T) {
	store := newTestStorage(t)

	a := mustMemory(t, "user1", "sess1", models.MemoryInsight, "one", 0.5, nil)
	b := mustMemory(t, "user1", "sess1", models.MemoryInsight, "two", 0.5, nil)
	for _, mem := range []*models.ConversationMemory{a, b} {
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	if err := store.Memories().Supersede(a.MemoryID, b.MemoryID); err != nil {
		t.Fatalf("Supersede() error = %v", err)
	}

	count, err := store.Memories().CountActive("user1")
	if err != nil {
		t.Fatalf("CountActive() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountActive() = %d, want 1", count)
	}
}

func TestStorage_MemoryStoreInterface(t *testing.T) {
	store := newTestStorage(t)

	mem := mustMemory(t, "user1", "sess1", models.MemoryInsight, "via facade", 0.5, []float64{1, 0})
	if err := store.InsertMemory(mem); err != nil {
		t.Fatalf("InsertMemory() error = %v", err)
	}

	results, err := store.SearchMemories("user1", []float64{1, 0}, 5, 90, 0.3)
	if err != nil {
		t.Fatalf("SearchMemories() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0.0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"empty", nil, nil, 0.0},
	}
	for _, tt := range tests {
		got := CosineSimilarity(tt.a, tt.b)
		if got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("CosineSimilarity(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMemoryStore_Search_RecencyCutoff(t *testing.T) {
	store := newTestStorage(t)

	stale := mustMemory(t, "user1", "sess1", models.MemoryInsight, "stale", 0.9, []float64{1, 0})
	stale.CreatedAt = time.Now().UTC().AddDate(0, 0, -120)
	fresh := mustMemory(t, "user1", "sess1", models.MemoryInsight, "fresh", 0.9, []float64{1, 0})
	for _, mem := range []*models.ConversationMemory{stale, fresh} {
		if err := store.Memories().Save(mem); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	results, err := store.Memories().Search("user1", []float64{1, 0}, 5, 90, 0.3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Memory.MemoryText != "fresh" {
		t.Errorf("results[0] = %q, want fresh", results[0].Memory.MemoryText)
	}
}
