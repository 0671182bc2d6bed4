package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestFallbackPhrases(t *testing.T) {
	t.Parallel()

	phrases := FallbackPhrases()
	if len(phrases) != 5 {
		t.Fatalf("len = %d, want 5", len(phrases))
	}

	seen := make(map[uuid.UUID]bool)
	for _, p := range phrases {
		if p.Text == "" || p.Translation == "" || p.Category == "" {
			t.Errorf("incomplete phrase: %+v", p)
		}
		if !p.Difficulty.IsValid() {
			t.Errorf("invalid difficulty %q", p.Difficulty)
		}
		if p.Example == nil {
			t.Errorf("phrase %q has no example", p.Text)
		}
		if seen[p.ID] {
			t.Errorf("duplicate ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestFallbackPhrases_StableAndCopied(t *testing.T) {
	t.Parallel()

	a := FallbackPhrases()
	b := FallbackPhrases()
	if a[0].ID != b[0].ID {
		t.Error("fallback IDs should be stable across calls")
	}

	a[0].Text = "mutated"
	if FallbackPhrases()[0].Text == "mutated" {
		t.Error("FallbackPhrases should return a copy")
	}
}
