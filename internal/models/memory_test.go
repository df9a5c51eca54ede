// ABOUTME: Tests for ConversationMemory creation and validation
// ABOUTME: Verifies NewConversationMemory constructor and error conditions
package models

import (
	"strings"
	"testing"
)

func TestNewConversationMemory(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		importance float64
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid memory",
			text:       "finally named the pursue-withdraw cycle",
			importance: 0.9,
			wantErr:    false,
		},
		{
			name:       "importance at lower bound",
			text:       "minor observation",
			importance: 0,
			wantErr:    false,
		},
		{
			name:       "empty text",
			text:       "",
			importance: 0.5,
			wantErr:    true,
			errMsg:     "memory text cannot be empty",
		},
		{
			name:       "whitespace-only text",
			text:       "   ",
			importance: 0.5,
			wantErr:    true,
			errMsg:     "memory text cannot be empty",
		},
		{
			name:       "importance above 1",
			text:       "text",
			importance: 1.1,
			wantErr:    true,
			errMsg:     "importance score must be in [0,1]",
		},
		{
			name:       "negative importance",
			text:       "text",
			importance: -0.1,
			wantErr:    true,
			errMsg:     "importance score must be in [0,1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, err := NewConversationMemory("user1", "sess1", MemoryInsight, tt.text, tt.importance)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewConversationMemory() error = %v", err)
			}
			if !strings.HasPrefix(mem.MemoryID, "mem_") {
				t.Errorf("MemoryID = %q, want mem_ prefix", mem.MemoryID)
			}
			if !mem.IsActive {
				t.Error("new memory should be active")
			}
			if mem.CreatedAt.IsZero() {
				t.Error("CreatedAt should be set")
			}
		})
	}
}

func TestNewConversationMemory_UniqueIDs(t *testing.T) {
	a, err := NewConversationMemory("u", "s", MemoryInsight, "one", 0.5)
	if err != nil {
		t.Fatalf("NewConversationMemory() error = %v", err)
	}
	b, err := NewConversationMemory("u", "s", MemoryInsight, "two", 0.5)
	if err != nil {
		t.Fatalf("NewConversationMemory() error = %v", err)
	}
	if a.MemoryID == b.MemoryID {
		t.Error("memory IDs should be unique")
	}
}
