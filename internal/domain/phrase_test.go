package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDifficulty_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Difficulty
		want bool
	}{
		{DifficultyBeginner, true},
		{DifficultyElementary, true},
		{DifficultyIntermediate, true},
		{DifficultyUpperIntermediate, true},
		{DifficultyAdvanced, true},
		{Difficulty("beginner"), false},
		{Difficulty("Upper Intermediate"), false},
		{Difficulty("Expert"), false},
		{Difficulty(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			t.Parallel()
			if got := tt.d.IsValid(); got != tt.want {
				t.Errorf("Difficulty(%q).IsValid() = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestDifficultyOrDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Difficulty
	}{
		{"Beginner", DifficultyBeginner},
		{"Elementary", DifficultyElementary},
		{"Intermediate", DifficultyIntermediate},
		{"Upper-Intermediate", DifficultyUpperIntermediate},
		{"Advanced", DifficultyAdvanced},
		{"Expert", DifficultyBeginner},
		{"advanced", DifficultyBeginner},
		{" Advanced", DifficultyBeginner},
		{"", DifficultyBeginner},
	}
	for _, tt := range tests {
		if got := DifficultyOrDefault(tt.in); got != tt.want {
			t.Errorf("DifficultyOrDefault(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty_Unknown(t *testing.T) {
	t.Parallel()

	if d, ok := ParseDifficulty("Expert"); ok || d != "" {
		t.Errorf("ParseDifficulty(Expert) = (%q, %v), want (\"\", false)", d, ok)
	}
}

func TestAllDifficulties_Valid(t *testing.T) {
	t.Parallel()

	if len(AllDifficulties) != 5 {
		t.Fatalf("len(AllDifficulties) = %d, want 5", len(AllDifficulties))
	}
	for _, d := range AllDifficulties {
		if !d.IsValid() {
			t.Errorf("%q should be valid", d)
		}
	}
}

func TestNewPhrase(t *testing.T) {
	t.Parallel()

	p, err := NewPhrase("Break a leg!", "Boa sorte!", DifficultyBeginner, "Expressions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if p.Example != nil || p.AudioURL != nil {
		t.Error("expected optional fields to be absent")
	}

	other, _ := NewPhrase("Break a leg!", "Boa sorte!", DifficultyBeginner, "Expressions")
	if other.ID == p.ID {
		t.Error("expected distinct IDs for separately built phrases")
	}
}

func TestNewPhrase_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewPhrase("  ", "x", DifficultyBeginner, "c"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty text: got %v, want ErrValidation", err)
	}
	if _, err := NewPhrase("hi", "oi", Difficulty("Expert"), "c"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad difficulty: got %v, want ErrValidation", err)
	}
}

func TestPhrase_WithExample_DoesNotMutate(t *testing.T) {
	t.Parallel()

	p, _ := NewPhrase("Hello", "Olá", DifficultyBeginner, "Greetings")
	q := p.WithExample("Hello there!")

	if p.Example != nil {
		t.Error("original phrase should be unchanged")
	}
	if q.Example == nil || *q.Example != "Hello there!" {
		t.Errorf("Example = %v", q.Example)
	}
	if q.ID != p.ID {
		t.Error("WithExample should keep the ID")
	}
}
