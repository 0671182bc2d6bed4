package phrasegen

import (
	"fmt"
	"strings"
)

// buildPhrasesPrompt asks the model for a bare JSON array of phrase objects.
func buildPhrasesPrompt(level string, interests, objectives []string, count int) string {
	return fmt.Sprintf(`Generate %d English learning phrases for someone at %s level.

User Interests: %s
Learning Objectives: %s

For each phrase, provide:
1. The English phrase (natural and useful)
2. Portuguese translation
3. Category (e.g., "Greetings", "Business", "Daily Conversation")
4. Difficulty level (Beginner, Elementary, Intermediate, Upper-Intermediate, Advanced)

Format your response as a JSON array with objects containing EXACTLY these keys:
- "text": the English phrase
- "translation": the Portuguese translation (PT-BR)
- "category": the category
- "difficulty": the difficulty level

Return ONLY the JSON array, no other text, no markdown, no code fences.

Example format:
[
    {
        "text": "How are you doing today?",
        "translation": "Como você está hoje?",
        "category": "Greetings",
        "difficulty": "Beginner"
    }
]`, count, level, strings.Join(interests, ", "), strings.Join(objectives, ", "))
}

func buildFeedbackPrompt(phrase, userLevel string) string {
	return fmt.Sprintf(`The user is learning English at %s level.

They asked about this phrase: "%s"

Please provide:
1. A brief explanation of the phrase (2-3 sentences)
2. When and how to use it
3. Similar phrases they could use

Keep the explanation simple and appropriate for their level.`, userLevel, phrase)
}

func buildTranslatePrompt(phrase string) string {
	return "Translate this English phrase to Portuguese (Brazilian Portuguese). " +
		"Only provide the translation, nothing else:\n\n" + phrase
}
