package domain

import "strings"

// Task tags a generation request with the operation that issued it.
// The gateway uses it to pick a provider chain.
type Task string

const (
	TaskGeneratePhrases Task = "generate_phrases"
	TaskExplainPhrase   Task = "explain_phrase"
	TaskTranslatePhrase Task = "translate_phrase"
	TaskAnswerDoubt     Task = "answer_doubt"
)

func (t Task) String() string { return string(t) }

func (t Task) IsValid() bool {
	switch t {
	case TaskGeneratePhrases, TaskExplainPhrase, TaskTranslatePhrase, TaskAnswerDoubt:
		return true
	}
	return false
}

// NormalizeTask lowercases and trims a task tag received over the wire.
func NormalizeTask(s string) Task {
	return Task(strings.ToLower(strings.TrimSpace(s)))
}
