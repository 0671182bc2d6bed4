package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPhrases is returned when a phrase batch is still malformed
// after the repair round.
var ErrInvalidPhrases = errors.New("provider returned invalid phrases JSON")

var phraseKeys = []string{"text", "translation", "category", "difficulty"}

const repairTemperature = 0.2

func repairPrompt(text string) string {
	return "Fix the following so it is ONLY a valid JSON array.\n" +
		"Each object must include EXACTLY these keys: " +
		"text, translation, category, difficulty.\n" +
		"No markdown, no code fences.\n\n" +
		"INPUT:\n" + text
}

// stripLeadingFence removes markdown fences only when the text opens with one.
func stripLeadingFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// validatePhrasesJSON checks that text is a JSON array of phrase objects and
// returns it re-encoded without fences or surrounding prose.
func validatePhrasesJSON(text string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(stripLeadingFence(text)))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return "", errors.New("unexpected data after JSON value")
	}

	items, ok := data.([]any)
	if !ok {
		return "", errors.New("expected a JSON array")
	}
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return "", fmt.Errorf("item %d: each item must be an object", i)
		}
		for _, key := range phraseKeys {
			v, ok := item[key].(string)
			if !ok || strings.TrimSpace(v) == "" {
				return "", fmt.Errorf("item %d: missing or invalid key: %s", i, key)
			}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
