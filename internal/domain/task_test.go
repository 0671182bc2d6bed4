package domain

import "testing"

func TestTask_IsValid(t *testing.T) {
	t.Parallel()

	for _, task := range []Task{TaskGeneratePhrases, TaskExplainPhrase, TaskTranslatePhrase, TaskAnswerDoubt} {
		if !task.IsValid() {
			t.Errorf("%q should be valid", task)
		}
	}
	if Task("summarize").IsValid() {
		t.Error("summarize should not be valid")
	}
}

func TestNormalizeTask(t *testing.T) {
	t.Parallel()

	if got := NormalizeTask("  Generate_Phrases "); got != TaskGeneratePhrases {
		t.Errorf("NormalizeTask = %q, want %q", got, TaskGeneratePhrases)
	}
	if got := NormalizeTask(""); got != "" {
		t.Errorf("NormalizeTask(\"\") = %q", got)
	}
}
