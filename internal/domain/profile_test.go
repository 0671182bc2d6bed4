package domain

import (
	"errors"
	"testing"
)

func TestEnglishLevel_Description(t *testing.T) {
	t.Parallel()

	for _, l := range AllLevels {
		if !l.IsValid() {
			t.Errorf("%q should be valid", l)
		}
		if l.Description() == "" {
			t.Errorf("%q has no description", l)
		}
	}
	if EnglishLevel("Native").IsValid() {
		t.Error("Native should not be a valid level")
	}
}

func TestInterestAndObjective_IsValid(t *testing.T) {
	t.Parallel()

	if len(AllInterests) != 12 {
		t.Errorf("len(AllInterests) = %d, want 12", len(AllInterests))
	}
	if len(AllObjectives) != 10 {
		t.Errorf("len(AllObjectives) = %d, want 10", len(AllObjectives))
	}
	if !InterestGaming.IsValid() || Interest("Knitting").IsValid() {
		t.Error("Interest.IsValid mismatch")
	}
	if !ObjectiveWritingSkills.IsValid() || Objective("Sleep More").IsValid() {
		t.Error("Objective.IsValid mismatch")
	}
}

func TestDefaultPreferences(t *testing.T) {
	t.Parallel()

	p := DefaultPreferences()
	if p.Level != LevelIntermediate {
		t.Errorf("Level = %q", p.Level)
	}
	if got := p.InterestLabels(); len(got) != 2 || got[0] != "Technology" || got[1] != "Business" {
		t.Errorf("InterestLabels() = %v", got)
	}
	if got := p.ObjectiveLabels(); len(got) != 2 || got[0] != "Improve Speaking" || got[1] != "Expand Vocabulary" {
		t.Errorf("ObjectiveLabels() = %v", got)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestPreferences_Validate(t *testing.T) {
	t.Parallel()

	p := Preferences{
		Level:      EnglishLevel("Native"),
		Interests:  []Interest{InterestMusic, Interest("Knitting")},
		Objectives: []Objective{ObjectivePassExams},
	}
	err := p.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
}

func TestPreferences_EmptyLists(t *testing.T) {
	t.Parallel()

	p := Preferences{Level: LevelAdvanced}
	if err := p.Validate(); err != nil {
		t.Errorf("empty interests/objectives should be valid: %v", err)
	}
	if got := p.InterestLabels(); len(got) != 0 {
		t.Errorf("InterestLabels() = %v", got)
	}
}
