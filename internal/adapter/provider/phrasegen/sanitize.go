package phrasegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lumenapp/lumen/internal/domain"
)

const (
	jsonFence  = "```json"
	plainFence = "```"
)

// stripFences removes markdown code-fence markers the model sometimes adds
// despite being told not to, then trims surrounding whitespace.
func stripFences(text string) string {
	switch {
	case strings.Contains(text, jsonFence):
		text = strings.ReplaceAll(text, jsonFence, "")
		text = strings.ReplaceAll(text, plainFence, "")
	case strings.Contains(text, plainFence):
		text = strings.ReplaceAll(text, plainFence, "")
	}
	return strings.TrimSpace(text)
}

// decodeRecords parses the sanitized text as a JSON array of phrase records.
// Keys are matched exactly: "Text" or "TEXT" does not count as "text".
func decodeRecords(text string) ([]phraseRecord, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))

	var objects []map[string]json.RawMessage
	if err := dec.Decode(&objects); err != nil {
		return nil, &DecodingError{Message: "response is not a JSON array of phrases", Err: err}
	}
	if dec.More() {
		return nil, &DecodingError{Message: "unexpected data after JSON array"}
	}
	if objects == nil {
		return nil, &DecodingError{Message: "response is not a JSON array of phrases"}
	}

	records := make([]phraseRecord, 0, len(objects))
	for i, obj := range objects {
		r, err := recordFromObject(obj)
		if err == nil {
			err = r.validate()
		}
		if err != nil {
			return nil, &DecodingError{Message: fmt.Sprintf("phrase %d", i), Err: err}
		}
		records = append(records, r)
	}
	return records, nil
}

func recordFromObject(obj map[string]json.RawMessage) (phraseRecord, error) {
	var (
		r   phraseRecord
		err error
	)
	fields := []struct {
		key string
		dst **string
	}{
		{"text", &r.Text},
		{"translation", &r.Translation},
		{"category", &r.Category},
		{"difficulty", &r.Difficulty},
	}
	for _, f := range fields {
		if *f.dst, err = stringField(obj, f.key); err != nil {
			return phraseRecord{}, err
		}
	}
	return r, nil
}

// stringField returns nil for an absent or null key.
func stringField(obj map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

func (r phraseRecord) validate() error {
	switch {
	case r.Text == nil:
		return fmt.Errorf("missing key %q", "text")
	case r.Translation == nil:
		return fmt.Errorf("missing key %q", "translation")
	case r.Category == nil:
		return fmt.Errorf("missing key %q", "category")
	case r.Difficulty == nil:
		return fmt.Errorf("missing key %q", "difficulty")
	case strings.TrimSpace(*r.Text) == "":
		return fmt.Errorf("empty %q", "text")
	}
	return nil
}

// toPhrase maps a validated record into a Phrase. An unrecognized difficulty
// is coerced to Beginner rather than rejected.
func (r phraseRecord) toPhrase() domain.Phrase {
	return domain.Phrase{
		ID:          uuid.New(),
		Text:        *r.Text,
		Translation: *r.Translation,
		Difficulty:  domain.DifficultyOrDefault(*r.Difficulty),
		Category:    *r.Category,
	}
}

// parsePhrases runs the full sanitize → decode → map pipeline.
func parsePhrases(text string) ([]domain.Phrase, error) {
	records, err := decodeRecords(stripFences(text))
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(r phraseRecord, _ int) domain.Phrase {
		return r.toPhrase()
	}), nil
}
