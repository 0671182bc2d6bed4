package domain

import "github.com/google/uuid"

// fallbackPhrases is the built-in set shown when the generation service is
// unreachable. IDs are fixed so saved-state survives between loads.
var fallbackPhrases = []Phrase{
	Phrase{
		ID:          uuid.MustParse("6f1d2c2e-6d3b-4a51-9f0a-0c1f6b5f0a01"),
		Text:        "How are you doing today?",
		Translation: "Como você está hoje?",
		Difficulty:  DifficultyBeginner,
		Category:    "Greetings",
	}.WithExample("A: How are you doing today? B: I'm doing great, thanks for asking!"),
	Phrase{
		ID:          uuid.MustParse("6f1d2c2e-6d3b-4a51-9f0a-0c1f6b5f0a02"),
		Text:        "I've been looking forward to this moment.",
		Translation: "Eu estava ansioso por este momento.",
		Difficulty:  DifficultyIntermediate,
		Category:    "Emotions",
	}.WithExample("I've been looking forward to this moment for weeks."),
	Phrase{
		ID:          uuid.MustParse("6f1d2c2e-6d3b-4a51-9f0a-0c1f6b5f0a03"),
		Text:        "Could you lend me a hand?",
		Translation: "Você poderia me dar uma mão?",
		Difficulty:  DifficultyElementary,
		Category:    "Requests",
	}.WithExample("Could you lend me a hand with this project?"),
	Phrase{
		ID:          uuid.MustParse("6f1d2c2e-6d3b-4a51-9f0a-0c1f6b5f0a04"),
		Text:        "The ball is in your court now.",
		Translation: "Agora é a sua vez.",
		Difficulty:  DifficultyIntermediate,
		Category:    "Idioms",
	}.WithExample("I've done my part, the ball is in your court now."),
	Phrase{
		ID:          uuid.MustParse("6f1d2c2e-6d3b-4a51-9f0a-0c1f6b5f0a05"),
		Text:        "Break a leg!",
		Translation: "Boa sorte!",
		Difficulty:  DifficultyBeginner,
		Category:    "Expressions",
	}.WithExample("You're going on stage? Break a leg!"),
}

// FallbackPhrases returns a copy of the built-in phrase set.
func FallbackPhrases() []Phrase {
	out := make([]Phrase, len(fallbackPhrases))
	copy(out, fallbackPhrases)
	return out
}
