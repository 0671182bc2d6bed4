package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Difficulty classifies a phrase. The spellings are the wire values produced
// by the generation backend and are matched case-sensitively.
type Difficulty string

const (
	DifficultyBeginner          Difficulty = "Beginner"
	DifficultyElementary        Difficulty = "Elementary"
	DifficultyIntermediate      Difficulty = "Intermediate"
	DifficultyUpperIntermediate Difficulty = "Upper-Intermediate"
	DifficultyAdvanced          Difficulty = "Advanced"
)

// AllDifficulties lists the difficulty values in ascending order.
var AllDifficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyElementary,
	DifficultyIntermediate,
	DifficultyUpperIntermediate,
	DifficultyAdvanced,
}

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyElementary, DifficultyIntermediate,
		DifficultyUpperIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ParseDifficulty matches s exactly against the known spellings.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(s)
	if !d.IsValid() {
		return "", false
	}
	return d, true
}

// DifficultyOrDefault decodes s, substituting DifficultyBeginner for any
// value that is not one of the known spellings.
func DifficultyOrDefault(s string) Difficulty {
	if d, ok := ParseDifficulty(s); ok {
		return d
	}
	return DifficultyBeginner
}

// Phrase is a single learnable sentence with its translation and metadata.
// Phrases are immutable once constructed.
type Phrase struct {
	ID          uuid.UUID
	Text        string
	Translation string
	Difficulty  Difficulty
	Category    string
	Example     *string
	AudioURL    *string
}

// NewPhrase builds a Phrase with a freshly generated ID.
func NewPhrase(text, translation string, difficulty Difficulty, category string) (Phrase, error) {
	if strings.TrimSpace(text) == "" {
		return Phrase{}, NewValidationError("text", "required")
	}
	if !difficulty.IsValid() {
		return Phrase{}, NewValidationError("difficulty", "unknown value "+string(difficulty))
	}
	return Phrase{
		ID:          uuid.New(),
		Text:        text,
		Translation: translation,
		Difficulty:  difficulty,
		Category:    category,
	}, nil
}

// WithExample returns a copy of p carrying the given example sentence.
func (p Phrase) WithExample(example string) Phrase {
	p.Example = &example
	return p
}
